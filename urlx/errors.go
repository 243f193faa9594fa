/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package urlx parses, validates, inspects, and modifies URI references
// according to RFC 3986.
package urlx

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why a grammar matcher or container operation failed.
type Kind int

const (
	// KindMismatch means the input does not begin with the expected production.
	KindMismatch Kind = iota
	// KindNeedMore means the input ended in the middle of a production.
	KindNeedMore
	// KindInvalid means a syntactic rule was violated (bad IPv4 octet, bad "::" count, ...).
	KindInvalid
	// KindBadPercentEscape means a '%' was not followed by two hex digits.
	KindBadPercentEscape
	// KindBadPort means the port is numeric but out of the 0..65535 range.
	KindBadPort
	// KindBadScheme means the first scheme character is not ALPHA, or the scheme is empty.
	KindBadScheme
	// KindBadHost means a bracketed host is not a valid IPv6 or IPvFuture literal.
	KindBadHost
)

func (k Kind) String() string {
	switch k {
	case KindMismatch:
		return "mismatch"
	case KindNeedMore:
		return "need more input"
	case KindInvalid:
		return "invalid"
	case KindBadPercentEscape:
		return "bad percent escape"
	case KindBadPort:
		return "bad port"
	case KindBadScheme:
		return "bad scheme"
	case KindBadHost:
		return "bad host"
	default:
		return "unknown"
	}
}

// kindError is the internal error type produced by grammar matchers.
// It never moves the cursor on failure, so callers can backtrack freely.
type kindError struct {
	kind    Kind
	message string
	offset  int
	char    rune
}

func (e *kindError) Error() string {
	msg := e.message
	if e.char != 0 {
		msg = fmt.Sprintf("%s '%c'", msg, e.char)
	}
	return fmt.Sprintf("%s at byte %d: %s", e.kind, e.offset, msg)
}

func newKindError(kind Kind, offset int, message string) *kindError {
	return &kindError{kind: kind, offset: offset, message: message}
}

func newKindErrorChar(kind Kind, offset int, message string, char rune) *kindError {
	return &kindError{kind: kind, offset: offset, message: message, char: char}
}

// ParseError is the public error type returned by parsing and mutating
// functions in this package. It reports the first failing byte offset and
// the kind of failure, and wraps the internal cause for errors.Is/As.
type ParseError struct {
	Kind    Kind
	Offset  int
	Message string
	cause   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("urlx: %s (offset %d): %s", e.Kind, e.Offset, e.Message)
}

func (e *ParseError) Unwrap() error { return e.cause }

// newParseError converts an internal matcher error into the public
// ParseError, annotating it with the offset at which parsing failed.
func newParseError(err error) *ParseError {
	if err == nil {
		return nil
	}
	var ke *kindError
	if ke2, ok := err.(*kindError); ok { //nolint:errorlint // internal sentinel type, not wrapped chains
		ke = ke2
	} else {
		return &ParseError{Kind: KindInvalid, Message: err.Error(), cause: errors.Wrap(err, "urlx parse")}
	}
	return &ParseError{
		Kind:    ke.kind,
		Offset:  ke.offset,
		Message: ke.Error(),
		cause:   errors.Wrapf(err, "urlx parse failed at byte %d", ke.offset),
	}
}
