// Package dateformat converts between ISO calendar-date text (YYYY-MM-DD) and
// time.Time values at UTC midnight.
package dateformat

import (
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/userstore/internal/domain"
)

// Layout is the only accepted date pattern.
const Layout = "2006-01-02"

// ParseError reports text that is not a valid calendar date.
// It matches domain.ErrDateParse under errors.Is.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %q", domain.ErrDateParse, e.Text)
	}
	return fmt.Sprintf("%s: %q: %v", domain.ErrDateParse, e.Text, e.Err)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrDateParse}
	}
	return []error{domain.ErrDateParse, e.Err}
}

var errEmpty = errors.New("date is empty")

// Format parses text as YYYY-MM-DD. Out-of-range months and days are rejected,
// never normalised into a neighbouring date.
func Format(text string) (time.Time, error) {
	if text == "" {
		return time.Time{}, &ParseError{Text: text, Err: errEmpty}
	}
	if !hasLayoutShape(text) {
		return time.Time{}, &ParseError{Text: text}
	}
	t, err := time.Parse(Layout, text)
	if err != nil {
		return time.Time{}, &ParseError{Text: text, Err: err}
	}
	return t, nil
}

// hasLayoutShape reports whether text is exactly four digits, a dash, two
// digits, a dash and two digits. time.Parse alone would accept a signed year.
func hasLayoutShape(text string) bool {
	if len(text) != len(Layout) {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if i == 4 || i == 7 {
			if c != '-' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsValid reports whether Format would accept text.
func IsValid(text string) bool {
	_, err := Format(text)
	return err == nil
}

// String renders the calendar date of t as YYYY-MM-DD.
func String(t time.Time) string {
	return t.Format(Layout)
}
