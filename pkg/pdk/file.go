package pdk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/iic-jku/klayout-pin-tool/pkg/errors"
)

// TableFileExt is the extension table files are discovered by.
const TableFileExt = ".json"

// =============================================================================
// Table Serialization API
// =============================================================================

// MarshalTable converts a table to pretty-printed JSON bytes.
// The output round-trips exactly: field values and list order are preserved.
func MarshalTable(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTableTo(t, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTableFile writes a table to a JSON file.
// The file is created with 0644 permissions.
func WriteTableFile(t *Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTableTo(t, f)
}

// WriteTable writes a table as JSON to an io.Writer.
// Use MarshalTable for in-memory serialization or WriteTableFile for files.
func WriteTable(t *Table, w io.Writer) error {
	return writeTableTo(t, w)
}

// ReadTableFile reads a JSON file and returns the validated table.
// Any failure (unreadable file, malformed JSON, violated table invariant)
// carries the MALFORMED_TABLE_FILE code so the registry can skip the file.
func ReadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedTableFile, err, "open %s", path)
	}
	defer f.Close()

	t, err := readTableFrom(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedTableFile, err, "parse %s", path)
	}
	return t, nil
}

// ReadTable decodes a JSON table from an io.Reader and validates it.
// Use ReadTableFile for files or pass bytes.NewReader for in-memory data.
func ReadTable(r io.Reader) (*Table, error) {
	return readTableFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTableTo(t *Table, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readTableFrom(r io.Reader) (*Table, error) {
	var t Table
	dec := json.NewDecoder(r)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}
