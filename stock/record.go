// SPDX-License-Identifier: MIT

package stock

import (
	"cmp"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/lvcoll/compare"
)

// Record is one price observation.
type Record struct {
	Ticker string    `json:"Ticker"`
	Name   string    `json:"Name"`
	Date   time.Time `json:"Date"`
	Price  float64   `json:"Price"`
}

// Compare orders records by Date, then Ticker, then Price.
func (r Record) Compare(o Record) int {
	if c := r.Date.Compare(o.Date); c != 0 {
		return c
	}
	if c := strings.Compare(r.Ticker, o.Ticker); c != 0 {
		return c
	}

	return cmp.Compare(r.Price, o.Price)
}

// String renders the record on one line.
func (r Record) String() string {
	return fmt.Sprintf("%s %s %.2f", r.Date.Format(time.DateOnly), r.Ticker, r.Price)
}

// Comparators for the individual fields.
var (
	ByDate   compare.Func[Record] = func(a, b Record) int { return a.Date.Compare(b.Date) }
	ByTicker compare.Func[Record] = func(a, b Record) int { return strings.Compare(a.Ticker, b.Ticker) }
	ByPrice  compare.Func[Record] = func(a, b Record) int { return cmp.Compare(a.Price, b.Price) }
	Natural                       = compare.Method[Record]()
)

// Same reports whether a and b are the same observation.
func Same(a, b Record) bool {
	return a.Ticker == b.Ticker && a.Date.Equal(b.Date) && a.Price == b.Price
}

// dateLayouts are tried in order when decoding Record.Date.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	time.DateOnly,
}

// UnmarshalJSON accepts dates with or without a zone; zone-less values are UTC.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		Ticker string  `json:"Ticker"`
		Name   string  `json:"Name"`
		Date   string  `json:"Date"`
		Price  float64 `json:"Price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d, err := parseDate(raw.Date)
	if err != nil {
		return err
	}
	*r = Record{Ticker: raw.Ticker, Name: raw.Name, Date: d, Price: raw.Price}

	return nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: unrecognised date %q", ErrDecode, s)
}
