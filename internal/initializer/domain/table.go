package domain

// Row maps a header column name to the record's value in that column.
type Row map[string]string

// Table holds the rows parsed from one data file.
type Table struct {
	Path string
	Rows []Row
}

// Len returns the number of data rows (header excluded).
func (t Table) Len() int {
	return len(t.Rows)
}
