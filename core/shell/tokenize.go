// Package shell splits command lines into argument lists.
//
// Only the space character separates arguments. There is no quoting,
// escaping or variable expansion: a tab, a quote or a dollar sign is part of
// the argument it appears in.
package shell

import (
	"errors"
	"strings"
)

// Delimiter separates arguments on a command line.
const Delimiter = ' '

// ErrTooManyTokens is returned when a line holds more arguments than allowed.
var ErrTooManyTokens = errors.New("too many arguments")

// ArgList is the command name followed by its arguments. The list ends after
// the last argument; it never contains empty entries.
type ArgList struct {
	argv []string
}

// NewArgList creates an argument list from already split arguments.
func NewArgList(argv ...string) ArgList {
	return ArgList{argv: append([]string(nil), argv...)}
}

// Len returns the number of arguments, including the command name.
func (a ArgList) Len() int {
	return len(a.argv)
}

// Name returns the command name or "" if the list is empty.
func (a ArgList) Name() string {
	if len(a.argv) == 0 {
		return ""
	}
	return a.argv[0]
}

// Argv returns a copy of the arguments in the form expected by exec.
func (a ArgList) Argv() []string {
	return append([]string(nil), a.argv...)
}

func (a ArgList) String() string {
	return strings.Join(a.argv, string(Delimiter))
}

// Tokenize splits line on runs of Delimiter. Leading, trailing and repeated
// delimiters don't produce empty arguments. If the line holds more than
// maxTokens arguments ErrTooManyTokens is returned along with the first
// maxTokens of them.
func Tokenize(line string, maxTokens int) (ArgList, error) {
	var out ArgList

	for {
		line = strings.TrimLeft(line, string(Delimiter))
		if line == "" {
			return out, nil
		}

		if len(out.argv) == maxTokens {
			return out, ErrTooManyTokens
		}

		end := strings.IndexByte(line, Delimiter)
		if end < 0 {
			end = len(line)
		}
		out.argv = append(out.argv, line[:end])
		line = line[end:]
	}
}
