package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jdziat/docdb-go"
)

// envelopeError reports a failed envelope that has already been printed.
type envelopeError struct {
	res *docdb.Result
}

func (e *envelopeError) Error() string {
	return fmt.Sprintf("status %d: %s", e.res.StatusCode, e.res.ErrorDescription)
}

func (e *envelopeError) Unwrap() error {
	return e.res.Err()
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeResult prints the envelope and converts a failure into an
// envelopeError.
func writeResult(w io.Writer, res *docdb.Result) error {
	if err := writeJSON(w, res); err != nil {
		return err
	}
	if !res.OK() {
		return &envelopeError{res: res}
	}
	return nil
}
