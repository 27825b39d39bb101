// Package csvfile reads vocabulary exports and writes enriched copies.
//
// Input rows carry three unnamed columns (word, reading, meaning) and no
// header. Output rows append the example sentence as a fourth column with
// every field quoted.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/heartmarshall/jisho-examples/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Read opens the CSV file at path and returns all records.
func Read(path string) ([]domain.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvfile: open %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("csvfile: %s: %w", path, err)
	}
	return records, nil
}

// ReadRecords parses word,reading,meaning rows. Missing trailing columns are
// treated as empty and extra columns are ignored.
func ReadRecords(r io.Reader) ([]domain.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.LazyQuotes = true    // meanings like 32" screen TV

	var records []domain.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		records = append(records, domain.Record{
			Word:    field(row, 0),
			Reading: field(row, 1),
			Meaning: field(row, 2),
		})
	}

	return records, nil
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
