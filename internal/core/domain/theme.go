package domain

// DefaultSeriesColor is the neutral fallback for categories without a
// declared color (unknown contribution types, languages GitHub reports no
// color for).
const DefaultSeriesColor = "#999999"

// Theme holds the background color and per-type line colors for a graph.
type Theme struct {
	Name       string
	Background string

	typeColors map[ContributionType]string
}

var themePresets = map[string]Theme{
	"default": {
		Background: "transparent",
		typeColors: map[ContributionType]string{
			TypeCommit:      "#2da44e",
			TypeIssue:       "#cf222e",
			TypePullRequest: "#0969da",
			TypeReview:      "#d29922",
		},
	},
	"blue": {
		Background: "transparent",
		typeColors: map[ContributionType]string{
			TypeCommit:      "#1e40af",
			TypeIssue:       "#3b82f6",
			TypePullRequest: "#60a5fa",
			TypeReview:      "#93c5fd",
		},
	},
	"red": {
		Background: "transparent",
		typeColors: map[ContributionType]string{
			TypeCommit:      "#991b1b",
			TypeIssue:       "#dc2626",
			TypePullRequest: "#ef4444",
			TypeReview:      "#f87171",
		},
	},
	"green": {
		Background: "transparent",
		typeColors: map[ContributionType]string{
			TypeCommit:      "#166534",
			TypeIssue:       "#16a34a",
			TypePullRequest: "#22c55e",
			TypeReview:      "#4ade80",
		},
	},
	"purple": {
		Background: "transparent",
		typeColors: map[ContributionType]string{
			TypeCommit:      "#6b21a8",
			TypeIssue:       "#9333ea",
			TypePullRequest: "#a855f7",
			TypeReview:      "#c084fc",
		},
	},
	"orange": {
		Background: "transparent",
		typeColors: map[ContributionType]string{
			TypeCommit:      "#9a3412",
			TypeIssue:       "#ea580c",
			TypePullRequest: "#f97316",
			TypeReview:      "#fb923c",
		},
	},
	"pink": {
		Background: "transparent",
		typeColors: map[ContributionType]string{
			TypeCommit:      "#9f1239",
			TypeIssue:       "#e11d48",
			TypePullRequest: "#f43f5e",
			TypeReview:      "#fb7185",
		},
	},
	"dark": {
		Background: "#000000",
		typeColors: map[ContributionType]string{
			TypeCommit:      "#ffffff",
			TypeIssue:       "#d0d0d0",
			TypePullRequest: "#a0a0a0",
			TypeReview:      "#707070",
		},
	},
	"light": {
		Background: "#ffffff",
		typeColors: map[ContributionType]string{
			TypeCommit:      "#000000",
			TypeIssue:       "#404040",
			TypePullRequest: "#707070",
			TypeReview:      "#a0a0a0",
		},
	},
}

// NewTheme resolves a theme by name. Unknown names fall back to the default
// preset rather than failing.
func NewTheme(name string) Theme {
	key := name
	if _, ok := themePresets[key]; !ok {
		key = "default"
	}
	theme := themePresets[key]
	theme.Name = key
	return theme
}

// ColorForType returns the line color for a contribution type, falling back
// to the neutral color for unknown types.
func (t Theme) ColorForType(contributionType ContributionType) string {
	if color, ok := t.typeColors[contributionType]; ok {
		return color
	}
	return DefaultSeriesColor
}
