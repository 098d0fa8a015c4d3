// SPDX-License-Identifier: MIT

package stock

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvcoll/compare"
	"github.com/katalvlaran/lvcoll/dynarray"
	"github.com/katalvlaran/lvcoll/hashmap"
	"github.com/katalvlaran/lvcoll/linkedlist"
	"github.com/katalvlaran/lvcoll/search"
	"github.com/katalvlaran/lvcoll/sorting"
)

// Book holds one record set in every container at once.
//
//	Array  - input order, sortable in place
//	List   - input order, searched by ticker
//	Latest - ticker → most recent record
type Book struct {
	Array  *dynarray.Array[Record]
	List   *linkedlist.List[Record]
	Latest *hashmap.Map[string, Record]
}

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{
		Array:  dynarray.New[Record](),
		List:   linkedlist.New[Record](),
		Latest: hashmap.New[string, Record](),
	}
}

// BuildBook returns a Book filled with records in order.
// It fails on the first record without a ticker; nothing is kept in that case.
func BuildBook(records []Record) (*Book, error) {
	b := NewBook()
	for i, r := range records {
		if err := b.Add(r); err != nil {
			return nil, fmt.Errorf("stock: BuildBook: record %d: %w", i, err)
		}
	}

	return b, nil
}

// Len returns the number of records held.
func (b *Book) Len() int { return b.Array.Len() }

// Add appends r to the array and the list and merges it into Latest:
// a ticker seen for the first time is added, an existing one is replaced only
// when r is strictly newer.
func (b *Book) Add(r Record) error {
	if r.Ticker == "" {
		return ErrEmptyTicker
	}

	b.Array.Add(r)
	b.List.Add(r)

	if cur, ok := b.Latest.Lookup(r.Ticker); ok {
		if r.Date.After(cur.Date) {
			b.Latest.Set(r.Ticker, r)
		}

		return nil
	}

	return b.Latest.Add(r.Ticker, r)
}

// Clear empties every container.
func (b *Book) Clear() {
	b.Array.Clear()
	b.List.Clear()
	b.Latest.Clear()
}

// Sort orders the array in place by c.
func (b *Book) Sort(c compare.Func[Record]) error {
	return sorting.QuicksortFunc[Record](b.Array, c)
}

// ByTicker returns every record for ticker in input order, walking the list.
// A ticker with no records yields search.ErrNotFound.
func (b *Book) ByTicker(ticker string) ([]Record, error) {
	return search.LinearList(b.List, Record{Ticker: ticker}, ByTicker)
}

// LatestFor returns the most recent record for ticker, or hashmap.ErrKeyNotFound.
func (b *Book) LatestFor(ticker string) (Record, error) {
	return b.Latest.Get(ticker)
}

// Tickers returns the distinct tickers in first-seen order.
func (b *Book) Tickers() []string {
	return b.Latest.Keys()
}

// byDateSorted returns a copy of the array sorted by date, leaving the array
// itself untouched.
func (b *Book) byDateSorted() (*dynarray.Array[Record], error) {
	sorted := b.Array.Clone()
	if err := sorting.QuicksortFunc[Record](sorted, ByDate); err != nil {
		return nil, err
	}

	return sorted, nil
}

// OnDate returns every record dated exactly d, ordered by date via a sorted
// copy and located with jump search. An empty result is not an error.
func (b *Book) OnDate(d time.Time) ([]Record, error) {
	sorted, err := b.byDateSorted()
	if err != nil {
		return nil, err
	}

	return search.JumpAll[Record](sorted, Record{Date: d}, ByDate)
}

// Between returns every record dated within [from, to], inclusive.
func (b *Book) Between(from, to time.Time) ([]Record, error) {
	sorted, err := b.byDateSorted()
	if err != nil {
		return nil, err
	}

	return search.JumpRange[Record](sorted, Record{Date: from}, Record{Date: to}, ByDate)
}
