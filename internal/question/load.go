package question

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrMissingInputFile indicates the results file does not exist.
var ErrMissingInputFile = errors.New("input file not found")

// ErrMalformedInputDocument indicates the results file is not a valid record array.
var ErrMalformedInputDocument = errors.New("malformed input document")

//go:embed records.schema.json
var recordsSchemaJSON string

var (
	recordsSchemaOnce sync.Once
	recordsSchema     *jsonschema.Schema
	recordsSchemaErr  error
)

// LoadRecords reads and decodes a JSON array of answered questions.
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInputFile, path)
		}
		return nil, fmt.Errorf("read results: %w", err)
	}
	records, err := DecodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// DecodeRecords validates raw JSON against the record schema and decodes it.
func DecodeRecords(data []byte) ([]Record, error) {
	var document interface{}
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInputDocument, err)
	}
	schema, err := compiledRecordsSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInputDocument, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInputDocument, err)
	}
	return records, nil
}

func compiledRecordsSchema() (*jsonschema.Schema, error) {
	recordsSchemaOnce.Do(func() {
		recordsSchema, recordsSchemaErr = jsonschema.CompileString("records.schema.json", recordsSchemaJSON)
		if recordsSchemaErr != nil {
			recordsSchemaErr = fmt.Errorf("compile records schema: %w", recordsSchemaErr)
		}
	})
	return recordsSchema, recordsSchemaErr
}
