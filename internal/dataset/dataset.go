package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"jeeval/internal/question"
)

// ErrMalformedDataset indicates a question bank CSV that cannot be read.
var ErrMalformedDataset = errors.New("malformed dataset")

var requiredColumns = []string{"num", "subject", "type", "text", "ans"}

var optionColumns = [4]string{"optA", "optB", "optC", "optD"}

// Row is one question of the bank.
type Row struct {
	Num     int
	Subject string
	Type    string
	Text    string
	Options [4]string
	Answer  string
}

// Label returns the short display name, e.g. "physics Q12".
func (r Row) Label() string {
	return fmt.Sprintf("%s Q%d", r.Subject, r.Num)
}

// Load reads a question bank CSV.
func Load(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()
	rows, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Parse reads a question bank from CSV with a header row. Columns may appear
// in any order; option columns are optional since numeric questions have none.
func Parse(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMalformedDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
	}
	index := map[string]int{}
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedDataset, column)
		}
	}

	var rows []Row
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
		}
		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		num, err := strconv.Atoi(field("num"))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: num %q is not an integer", ErrMalformedDataset, line, field("num"))
		}
		row := Row{
			Num:     num,
			Subject: field("subject"),
			Type:    field("type"),
			Text:    field("text"),
			Answer:  field("ans"),
		}
		for i, column := range optionColumns {
			row.Options[i] = field(column)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Find returns the row for a subject and question number.
func Find(rows []Row, subject question.Subject, num int) (Row, bool) {
	for _, row := range rows {
		if row.Num == num && row.Subject == string(subject) {
			return row, true
		}
	}
	return Row{}, false
}
