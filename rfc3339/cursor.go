package rfc3339

import "fmt"

// input is the text a parse runs over.
type input interface {
	~string | ~[]byte
}

// cursor is the read position of a single parse call.
// errPos is the index at which the parse failed, or -1.
type cursor[T input] struct {
	in     T
	pos    int
	errPos int
}

func newCursor[T input](in T) *cursor[T] {
	return &cursor[T]{in: in, errPos: -1}
}

// fail records pos as the error position and returns a *ParseError wrapping category.
func (c *cursor[T]) fail(pos int, category error, format string, args ...any) error {
	c.errPos = pos
	return &ParseError{
		Input:  string(c.in),
		Column: pos + 1,
		Err:    fmt.Errorf("%w: %s", category, fmt.Sprintf(format, args...)),
	}
}

func (c *cursor[T]) remaining() int {
	return len(c.in) - c.pos
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// readInt reads exactly n ASCII digits as an unsigned decimal integer and advances past them.
func (c *cursor[T]) readInt(n int) (int, error) {
	end := c.pos + n
	if end > len(c.in) {
		return 0, c.fail(len(c.in), ErrStructural, "unexpected end of input, expected %d digits", n)
	}
	v := 0
	for i := c.pos; i < end; i++ {
		ch := c.in[i]
		if !isDigit(ch) {
			return 0, c.fail(i, ErrLexical, "character %q is not a digit", ch)
		}
		v = v*10 + int(ch-'0')
	}
	c.pos = end
	return v, nil
}

// readIntUnchecked is readInt for runs already known to be n digits.
func (c *cursor[T]) readIntUnchecked(n int) int {
	end := c.pos + n
	v := 0
	for i := c.pos; i < end; i++ {
		v = v*10 + int(c.in[i]-'0')
	}
	c.pos = end
	return v
}

// digitRun returns the index of the first non-digit at or after pos, or len(in).
func (c *cursor[T]) digitRun() int {
	i := c.pos
	for i < len(c.in) && isDigit(c.in[i]) {
		i++
	}
	return i
}

// consume advances past the expected character.
func (c *cursor[T]) consume(expected byte) error {
	if c.pos >= len(c.in) {
		return c.fail(c.pos, ErrStructural, "unexpected end of input, expected %q", expected)
	}
	if ch := c.in[c.pos]; ch != expected {
		return c.fail(c.pos, ErrStructural, "expected %q, got %q", expected, ch)
	}
	c.pos++
	return nil
}

// consumeOneOf advances past a character that is one of expected.
func (c *cursor[T]) consumeOneOf(expected string) error {
	if c.pos >= len(c.in) {
		return c.fail(c.pos, ErrStructural, "unexpected end of input, expected one of %q", expected)
	}
	ch := c.in[c.pos]
	for i := 0; i < len(expected); i++ {
		if ch == expected[i] {
			c.pos++
			return nil
		}
	}
	return c.fail(c.pos, ErrStructural, "expected one of %q, got %q", expected, ch)
}

// expectEnd fails if any input remains.
func (c *cursor[T]) expectEnd() error {
	if c.pos < len(c.in) {
		return c.fail(c.pos, ErrTrailing, "unexpected %q after timestamp", string(c.in)[c.pos:])
	}
	return nil
}
