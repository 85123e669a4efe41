package core

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// LoadDump reads one entity's dump file into name-keyed raw records.
func LoadDump(path string) ([]RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = sanitizeUTF8(data)
	return ReadRecords(bytes.NewReader(data))
}

// ReadRecords parses a delimited dump payload. The first row is the header;
// every following row becomes a RawRecord keyed by header name. Extra columns
// beyond the header are dropped, blank-named header columns are ignored, and
// fully empty rows are skipped. The schema, not this header, decides which
// fields are ultimately used.
func ReadRecords(r io.Reader) ([]RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty dump: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	var records []RawRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(records)+2, err)
		}
		if isEmptyRow(row) {
			continue
		}

		rec := make(RawRecord, len(header))
		for i, name := range header {
			if strings.TrimSpace(name) == "" {
				continue
			}
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

// sanitizeUTF8 replaces invalid byte sequences with the replacement rune so
// the csv reader never chokes on a half-broken dump.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
