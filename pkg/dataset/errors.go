package dataset

import "fmt"

// FileTypeError reports an input file whose extension is not ".csv".
type FileTypeError struct {
	Ext string
}

func (e *FileTypeError) Error() string {
	return fmt.Sprintf("the input data file is not of the expected type: expected .csv but received %q", e.Ext)
}

// SchemaError reports an input file whose column names are not exactly
// {left, right}.
type SchemaError struct {
	Columns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("the input data does not have the expected column names: expected {left, right} but received %v", e.Columns)
}

// DataTypeError reports a column containing a value that does not parse as
// a 64-bit integer.
type DataTypeError struct {
	Column string
	Value  string
}

func (e *DataTypeError) Error() string {
	return fmt.Sprintf("the input data in column %s is not of the expected type: %q is not an integer", e.Column, e.Value)
}
