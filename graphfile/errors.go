package graphfile

import (
	"errors"
	"fmt"
)

// Sentinel errors. FormatError and IntegrityError match ErrFormat and
// ErrNotSorted under errors.Is.
var (
	// ErrFormat classifies every malformed-file condition: bad magic,
	// unsupported version, truncated header or records.
	ErrFormat = errors.New("graphfile: malformed graph file")

	// ErrNotSorted indicates that binary search observed records out of order.
	ErrNotSorted = errors.New("graphfile: records are not sorted")

	// ErrClosed is returned by any operation on a closed Graph or Writer.
	ErrClosed = errors.New("graphfile: use of closed graph")

	// ErrNegativeIndex is returned by Seek and RecordAt for index < 0.
	ErrNegativeIndex = errors.New("graphfile: negative record index")

	// ErrIndexOutOfRange is returned when an index is past the last record.
	ErrIndexOutOfRange = errors.New("graphfile: record index out of range")

	// ErrKmerSize indicates a query k-mer whose length does not match the graph.
	ErrKmerSize = errors.New("graphfile: k-mer size does not match graph")

	// ErrHeaderNotSet is returned by Writer.Append before WriteHeader.
	ErrHeaderNotSet = errors.New("graphfile: header has not been written")

	// ErrHeaderAlreadySet is returned by a second Writer.WriteHeader.
	ErrHeaderAlreadySet = errors.New("graphfile: header already written")

	// ErrRecordShape indicates a record whose k-mer words or color count
	// disagree with the header.
	ErrRecordShape = errors.New("graphfile: record does not match header")

	// ErrInvalidHeader indicates a Header that violates its own invariants.
	ErrInvalidHeader = errors.New("graphfile: invalid header")

	// ErrOptionViolation is returned by Open when an invalid Option is supplied.
	ErrOptionViolation = errors.New("graphfile: invalid option supplied")
)

// FormatError reports a graph file that cannot be parsed.
type FormatError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("graphfile: %s: %s: %v", e.Path, e.Reason, e.Err)
	}

	return fmt.Sprintf("graphfile: %s: %s", e.Path, e.Reason)
}

// Unwrap returns the underlying cause, if any.
func (e *FormatError) Unwrap() error { return e.Err }

// Is makes every FormatError match ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// IntegrityError reports records found out of order during a lookup or an
// order check. It is never recoverable: lookups on that file cannot be trusted.
type IntegrityError struct {
	Path   string
	Index  int64
	Reason string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("graphfile: %s: file not sorted at record %d: %s", e.Path, e.Index, e.Reason)
}

// Is makes every IntegrityError match ErrNotSorted.
func (e *IntegrityError) Is(target error) bool { return target == ErrNotSorted }
