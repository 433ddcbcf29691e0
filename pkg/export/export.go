package export

// Dataset is a tabular payload both exporters render.
type Dataset struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Exporter renders a dataset into a file format.
type Exporter interface {
	Export(ds Dataset) ([]byte, error)
	ContentType() string
	FileExtension() string
}
