package domain

// GraphSeries is one named, colored cumulative line. Values always has the
// same length as the owning GraphData's Labels.
type GraphSeries struct {
	Name   string
	Color  string
	Values []int
}

// GraphData is the label/series shape handed to the chart renderer.
type GraphData struct {
	Labels []string
	Series []GraphSeries
}
