package persistence

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/qats/dataset"
)

// ReadQCJSON decodes a quantum-chemistry table from the upstream JSON
// format (an array of row objects with the canonical column names) and
// validates it.
func ReadQCJSON(r io.Reader) (dataset.QCTable, error) {
	var t dataset.QCTable
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	return t, nil
}

// WriteQCJSON encodes a quantum-chemistry table as the upstream JSON
// format, one row object per table row.
func WriteQCJSON(w io.Writer, t dataset.QCTable) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(t)
}

// ReadQATSJSON decodes an expansion table from the upstream JSON format
// and validates it.
func ReadQATSJSON(r io.Reader) (dataset.QATSTable, error) {
	var t dataset.QATSTable
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	return t, nil
}

// WriteQATSJSON encodes an expansion table as the upstream JSON format.
func WriteQATSJSON(w io.Writer, t dataset.QATSTable) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(t)
}
