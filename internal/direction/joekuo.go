package direction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrMalformed is returned when a data line cannot be parsed.
	ErrMalformed = errors.New("malformed direction number line")
	// ErrInvalidEntry is returned when an entry violates the Sobol constraints.
	ErrInvalidEntry = errors.New("invalid direction number entry")
	// ErrNotEnoughEntries is returned when the input has fewer dimensions than requested.
	ErrNotEnoughEntries = errors.New("not enough direction number entries")
)

// SyntaxError reports the line where parsing failed.
type SyntaxError struct {
	Line  int
	Text  string
	cause error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.cause)
}

func (e *SyntaxError) Unwrap() error { return e.cause }

// Entry is one dimension of a Joe-Kuo direction number file.
//
// The polynomial has degree Degree; Poly encodes its inner coefficients
// a_1..a_{s-1} with a_1 as the most significant bit. M holds the initial
// direction numbers m_1..m_s.
type Entry struct {
	Dimension uint32
	Degree    uint32
	Poly      uint32
	M         []uint32
}

// Parse reads entries in the Joe-Kuo text format:
//
//	d s a m_1 m_2 ... m_s
//
// Blank lines, comment lines starting with '#' and lines with fewer than
// four fields (such as the column header) are skipped.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 4 {
			continue
		}
		// Column header.
		if _, err := strconv.ParseUint(fields[0], 10, 32); err != nil && len(entries) == 0 {
			continue
		}

		nums := make([]uint32, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseUint(f, 10, 32)
			if err != nil {
				return nil, &SyntaxError{Line: line, Text: text, cause: fmt.Errorf("%w: %w", ErrMalformed, err)}
			}
			nums[i] = uint32(v)
		}

		e := Entry{
			Dimension: nums[0],
			Degree:    nums[1],
			Poly:      nums[2],
			M:         nums[3:],
		}
		if int(e.Degree) != len(e.M) {
			return nil, &SyntaxError{
				Line:  line,
				Text:  text,
				cause: fmt.Errorf("%w: degree %d but %d initial numbers", ErrMalformed, e.Degree, len(e.M)),
			}
		}

		entries = append(entries, e)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read direction numbers: %w", err)
	}

	return entries, nil
}
