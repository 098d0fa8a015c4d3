// SPDX-License-Identifier: MIT

// Package stock is the record layer that feeds price records into the lvcoll
// containers and routines.
//
// What lives here:
//
//   - Record: ticker, company name, date and price, with a natural order
//     (date, then ticker, then price) and per-field comparators ByDate,
//     ByTicker and ByPrice.
//   - Load / LoadFile / Write: the {"Stocks":[...]} JSON document, decoded with
//     goccy/go-json. Dates may be RFC 3339, zone-less "2006-01-02T15:04:05",
//     or a bare "2006-01-02".
//   - Book: one record set held three ways at once, a dynarray.Array in input
//     order, a linkedlist.List in input order, and a hashmap.Map from ticker
//     to its most recent record (newer dates replace older ones).
//   - Generate: deterministic synthetic daily series per ticker from a
//     discrete geometric Brownian motion, for fixtures and benchmarks.
//
// Errors:
//
//	ErrEmptyTicker - a record without a ticker was offered to a Book.
//	ErrBadSize     - Generate with days < 1 or no tickers.
//	ErrDecode      - the JSON document or a date inside it is malformed.
package stock
