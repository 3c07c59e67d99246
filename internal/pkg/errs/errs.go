package errs

import (
	"fmt"
	"strings"

	cockroach "github.com/cockroachdb/errors"
)

// New creates a sentinel error carrying a stack trace.
func New(msg string) error {
	return cockroach.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cockroach.Wrap(err, msg)
}

// Mark tags err with markErr so errors.Is(err, markErr) holds while the
// original cause stays inspectable.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cockroach.Mark(err, markErr)
}

// ExtractStackLines renders the error with its stack trace and returns at
// most maxLines lines, for structured log fields.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
