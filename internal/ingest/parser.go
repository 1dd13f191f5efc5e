// Basketgraph - Bipartite Purchase Graph and Collaborative Filtering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketgraph

package ingest

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/tomtom215/basketgraph/internal/graph"
)

// fieldCount is the number of fields in a purchase line.
const fieldCount = 4

// Rejection reasons carried by ParseError.
var (
	ErrTooFewFields     = errors.New("too few fields")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidProductID = errors.New("invalid product id")
)

// ErrNegativeID is the cause attached to an id reason when the id parses but
// is below zero. Ids are non-negative everywhere, as over HTTP.
var ErrNegativeID = errors.New("id must not be negative")

// ParseError describes a rejected line.
type ParseError struct {
	// Line is the 1-based line number.
	Line int

	// Text is the trimmed line content.
	Text string

	// Reason is one of the Err* sentinels.
	Reason error

	// Err is the underlying conversion error, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %v: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Reason)
}

// Unwrap exposes both the reason and the conversion error to errors.Is/As.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

// ParseLine parses one purchase line. The line must not be blank.
func ParseLine(lineNo int, line string) (graph.Record, error) {
	text := strings.TrimSpace(line)
	parts := splitFields(text, fieldCount)
	if len(parts) < fieldCount {
		return graph.Record{}, &ParseError{Line: lineNo, Text: text, Reason: ErrTooFewFields}
	}

	userID, err := parseID(parts[0])
	if err != nil {
		return graph.Record{}, &ParseError{Line: lineNo, Text: text, Reason: ErrInvalidUserID, Err: err}
	}
	productID, err := parseID(parts[2])
	if err != nil {
		return graph.Record{}, &ParseError{Line: lineNo, Text: text, Reason: ErrInvalidProductID, Err: err}
	}

	return graph.Record{
		UserID:      userID,
		UserName:    parts[1],
		ProductID:   productID,
		ProductName: parts[3],
	}, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if id < 0 {
		return 0, ErrNegativeID
	}
	return id, nil
}

// splitFields splits s on runs of whitespace into at most n fields. The last
// field holds the remainder of s with its interior whitespace intact.
func splitFields(s string, n int) []string {
	fields := make([]string, 0, n)
	for len(fields) < n-1 {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		if s == "" {
			return fields
		}
		end := strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			return append(fields, s)
		}
		fields = append(fields, s[:end])
		s = s[end:]
	}
	if s = strings.TrimSpace(s); s != "" {
		fields = append(fields, s)
	}
	return fields
}
