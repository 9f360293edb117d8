package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Row represents a single CSV row with column name to value mapping. Column
// names are lower-cased and values are trimmed.
type Row map[string]string

// LoadCSV reads a CSV file and returns rows as maps of column to value.
// The first row is treated as headers (column names). Files ending in .gz
// are decompressed on the fly.
func LoadCSV(path string) ([]Row, error) {
	f, err := Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	rows, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("csv: %s: %w", path, err)
	}
	return rows, nil
}

// ReadCSV parses CSV data with a header row.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("empty input (no header row)")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		row := make(Row, len(headers))
		for j, h := range headers {
			row[h] = strings.TrimSpace(record[j])
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Open opens path for reading, transparently un-gzipping .gz files. A path
// of "-" reads standard input.
func Open(path string) (io.ReadCloser, error) {
	var f *os.File
	if path == "-" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
	}

	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close() //nolint:errcheck
		return nil, fmt.Errorf("gzip: %w", err)
	}
	return &gzipReadCloser{Reader: zr, file: f}, nil
}

type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Close() error {
	zerr := g.Reader.Close()
	ferr := g.file.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
