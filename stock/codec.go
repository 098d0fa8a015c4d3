// SPDX-License-Identifier: MIT

package stock

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// document is the on-disk shape: {"Stocks":[...]}.
type document struct {
	Stocks []Record `json:"Stocks"`
}

// Load decodes a {"Stocks":[...]} document and returns its records in order.
func Load(r io.Reader) ([]Record, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, ErrDecode) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if doc.Stocks == nil {
		doc.Stocks = []Record{}
	}

	return doc.Stocks, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("stock: LoadFile(%q): %w", path, err)
	}

	return records, nil
}

// Write encodes records as an indented {"Stocks":[...]} document.
func Write(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(document{Stocks: records})
}
