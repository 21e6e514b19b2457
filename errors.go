package wordsearch

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failures the engine reports.
type ErrorKind int

const (
	KindInvalidDimensions ErrorKind = iota + 1
	KindInvalidWord
	KindPlacement
	KindOutOfBounds
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidDimensions:
		return "invalid dimensions"
	case KindInvalidWord:
		return "invalid word"
	case KindPlacement:
		return "placement failed"
	case KindOutOfBounds:
		return "out of bounds"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for errors.Is. Any *Error matches the sentinel of its kind.
var (
	ErrInvalidDimensions = &Error{Kind: KindInvalidDimensions}
	ErrInvalidWord       = &Error{Kind: KindInvalidWord}
	ErrPlacement         = &Error{Kind: KindPlacement}
	ErrOutOfBounds       = &Error{Kind: KindOutOfBounds}
)

// Error is the engine's structured error value.
type Error struct {
	Kind ErrorKind

	Word     string
	Row, Col int
	Width    int
	Height   int

	// Set only when the attempt budget is exhausted.
	MaxAttempts int
	BankSize    int

	Reason string
}

func (e *Error) Error() string {
	var detail string
	switch e.Kind {
	case KindInvalidDimensions:
		detail = fmt.Sprintf("width %d, height %d", e.Width, e.Height)
	case KindInvalidWord:
		detail = fmt.Sprintf("word %q", e.Word)
	case KindOutOfBounds:
		detail = fmt.Sprintf("(%d, %d) outside %dx%d grid", e.Row, e.Col, e.Width, e.Height)
	case KindPlacement:
		if e.MaxAttempts > 0 {
			detail = fmt.Sprintf("no layout after %d attempts for %d words", e.MaxAttempts, e.BankSize)
		} else {
			detail = fmt.Sprintf("word %q at (%d, %d)", e.Word, e.Row, e.Col)
		}
	}
	msg := e.Kind.String()
	if detail != "" {
		msg += ": " + detail
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
