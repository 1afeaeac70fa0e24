// Package dataset loads tabular data files into the cell matrix the grid is
// constructed from.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	datagriderrors "github.com/quentinmace/datagrid/pkg/errors"
)

// Dataset is a parsed data file: a header row and the body cell matrix.
type Dataset struct {
	Headers []string
	Records [][]string
}

// LoadCSV reads a CSV file whose first record is the header row. Every body
// record must have the same number of fields as the header.
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, datagriderrors.NewParseError(path, 0, err)
	}
	defer file.Close()

	ds, err := ReadCSV(file)
	if err != nil {
		line := 0
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			line = csvErr.Line
		}
		return nil, datagriderrors.NewParseError(path, line, err)
	}
	return ds, nil
}

// ReadCSV parses CSV content from a reader. The csv reader enforces a
// consistent field count across records.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset is empty: missing header row")
	}
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return &Dataset{Headers: headers, Records: records}, nil
}
