package lamda

import "strings"

// line is one physical line of the input paired with its 1-based
// number. Blank lines are counted like any other.
type line struct {
	number int
	text   string
}

// cursor enumerates a document line by line. Each Parse call owns an
// independent cursor; there is no shared state between parses.
type cursor struct {
	lines []string
	pos   int
}

func newCursor(input string) *cursor {
	return &cursor{lines: splitLines(input)}
}

// splitLines splits on newlines, dropping a single trailing empty line
// produced by a final newline and stripping carriage returns.
func splitLines(input string) []string {
	if input == "" {
		return nil
	}
	lines := strings.Split(input, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// next returns the next line, or NotEnoughInput carrying the number of
// the first line that is missing.
func (c *cursor) next() (line, *ParseError) {
	if c.pos >= len(c.lines) {
		return line{}, errNotEnoughInput(c.pos + 1)
	}
	l := line{number: c.pos + 1, text: c.lines[c.pos]}
	c.pos++
	return l, nil
}

func (c *cursor) more() bool {
	return c.pos < len(c.lines)
}

// collectN consumes exactly n lines, applying parse to each. It is the
// single bounded-repetition operation behind the level, transition, and
// rate-row sections: running out of input mid-sequence propagates
// NotEnoughInput at the correct line number, and the first per-item
// failure wins.
func collectN[T any](c *cursor, n int, parse func(line) (T, *ParseError)) ([]T, *ParseError) {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		l, err := c.next()
		if err != nil {
			return nil, err
		}
		v, err := parse(l)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
