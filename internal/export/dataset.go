package export

// Dataset defines tabular export content shared by the CSV and PDF writers.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}
