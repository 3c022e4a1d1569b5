package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Key identifies a question across the bank and results files.
type Key struct {
	Num     string
	Subject string
}

// AnswerKey maps each question to its gold answer. Later rows win.
func AnswerKey(rows []Row) map[Key]string {
	answers := make(map[Key]string, len(rows))
	for _, row := range rows {
		answers[Key{Num: strconv.Itoa(row.Num), Subject: row.Subject}] = row.Answer
	}
	return answers
}

// Repatch rewrites the ans field of every record in a results file whose
// (num, subject) appears in answers. Other fields are preserved; object keys
// come out sorted. It returns the number of records whose answer changed.
func Repatch(path string, answers map[Key]string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read results: %w", err)
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var records []map[string]any
	if err := decoder.Decode(&records); err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	changed := 0
	for _, record := range records {
		subject, _ := record["subject"].(string)
		key := Key{Num: numString(record["num"]), Subject: subject}
		answer, ok := answers[key]
		if !ok {
			continue
		}
		if current, _ := record["ans"].(string); current != answer {
			changed++
		}
		record["ans"] = answer
	}

	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return 0, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, bytes.TrimRight(out.Bytes(), "\n"), 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return changed, nil
}

func numString(value any) string {
	switch v := value.(type) {
	case json.Number:
		return v.String()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
