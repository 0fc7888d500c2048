package domain

// Size is the pixel dimensions of a rendered graph.
type Size struct {
	Width  int
	Height int
}

var sizePresets = map[string]Size{
	"small":  {Width: 600, Height: 300},
	"medium": {Width: 800, Height: 400},
	"large":  {Width: 1000, Height: 500},
}

// NewSize resolves a size preset by name. Unknown names fall back to medium.
func NewSize(name string) Size {
	if size, ok := sizePresets[name]; ok {
		return size
	}
	return sizePresets["medium"]
}
