package source

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"github.com/datastax/csv-projector/types"
	"io"
	"strconv"
)

const byteOrderMark = "\uFEFF"

// ReadTable decodes CSV content whose first record is the header. Short records are padded with empty cells,
// longer ones are rejected and repeated header names get a ".N" suffix.
func ReadTable(r io.Reader) (*types.Table, error) {
	reader := csv.NewReader(stripByteOrderMark(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("no columns to parse from source")
	}
	if err != nil {
		return nil, err
	}

	columns := uniqueColumns(header)
	rows := make([][]string, 0)
	for n := 2; ; n++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(record) > len(columns) {
			return nil, fmt.Errorf("expected %d fields in record %d, saw %d", len(columns), n, len(record))
		}
		for len(record) < len(columns) {
			record = append(record, "")
		}
		rows = append(rows, record)
	}

	return types.NewTable(columns, rows)
}

func stripByteOrderMark(r io.Reader) io.Reader {
	buffered := bufio.NewReader(r)
	if prefix, err := buffered.Peek(len(byteOrderMark)); err == nil && string(prefix) == byteOrderMark {
		_, _ = buffered.Discard(len(byteOrderMark))
	}
	return buffered
}

func uniqueColumns(header []string) []string {
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		seen[name] = true
	}

	counts := make(map[string]int, len(header))
	columns := make([]string, len(header))
	for i, name := range header {
		if counts[name] == 0 {
			counts[name] = 1
			columns[i] = name
			continue
		}

		candidate := name
		for seen[candidate] {
			candidate = name + "." + strconv.Itoa(counts[name])
			counts[name]++
		}
		seen[candidate] = true
		columns[i] = candidate
	}
	return columns
}
