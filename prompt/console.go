// Package prompt reads validated answers from an interactive text stream.
//
// Every read re-prompts on invalid input and only fails when the stream
// ends or cannot be read, in which case ErrEndOfInput is returned.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrEndOfInput is returned when the input stream is closed or unreadable.
var ErrEndOfInput = errors.New("end of input")

// Messages printed when an answer is rejected.
const (
	MsgInvalidInt = "Invalid input. Try again."
	MsgOutOfRange = "Value out of range [%d..%d]."
)

// Console couples an input stream with the writer prompts are shown on.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console reading from in and prompting on out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Printf writes formatted text to the console output.
func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// Write writes p to the console output, so a Console can be used as an io.Writer.
func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

// Println writes a line to the console output.
func (c *Console) Println(args ...any) {
	_, _ = fmt.Fprintln(c.out, args...)
}

// ReadLine shows prompt and returns the next line without its terminator.
// A final line lacking a newline is still returned.
func (c *Console) ReadLine(prompt string) (string, error) {
	c.Printf("%s", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrEndOfInput
		}
		return "", fmt.Errorf("%w: %v", ErrEndOfInput, err)
	}
	return trimEOL(line), nil
}

// ReadText prompts until an answer that is non-empty after truncation is
// entered. The answer is cut to maxBytes with truncate, and emptyMsg is
// shown for each answer that ends up blank.
func (c *Console) ReadText(prompt, emptyMsg string, maxBytes int, truncate func(string, int) string) (string, error) {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return "", err
		}
		line = truncate(line, maxBytes)
		if line == "" {
			c.Println(emptyMsg)
			continue
		}
		return line, nil
	}
}

// ReadInt prompts until an integer within [minV, maxV] is entered.
func (c *Console) ReadInt(prompt string, minV, maxV int) (int, error) {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		v, ok := ParseInt(line)
		if !ok {
			c.Println(MsgInvalidInt)
			continue
		}
		if v < minV || v > maxV {
			c.Println(fmt.Sprintf(MsgOutOfRange, minV, maxV))
			continue
		}
		return v, nil
	}
}

// ParseInt parses a decimal integer the way strtol does for a whole line:
// leading blanks and a sign are accepted, and nothing may follow the digits.
func ParseInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\v\f\r")
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
