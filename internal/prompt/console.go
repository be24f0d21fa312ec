package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console reads answers line by line from an input stream
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a console prompt. The question is written to out
// without a trailing newline.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask writes the question and reads one line. EOF or a read error yields
// the text read so far, usually "".
func (c *Console) Ask(question string) string {
	_, _ = fmt.Fprint(c.out, question)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		_, _ = fmt.Fprintln(c.out)
		return ""
	}
	return strings.TrimRight(line, "\r\n")
}
