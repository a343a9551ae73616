package core

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/josephlewis42/minish/core/config"
	"github.com/josephlewis42/minish/core/shell"
)

// Messages shown to the operator.
const (
	MsgEmptyLine   = "Provide an argument\n"
	MsgReadFailure = "Error while reading a line of input."
	MsgSpawnFailed = "Error"
	MsgLineTooLong = "Line too long, limit is %d characters\n"
	MsgTooManyArgs = "Too many arguments, limit is %d\n"
	MsgChildExited = "Child %d, exited with %d"
)

var (
	colorSuccess = color.New(color.FgGreen)
	colorFailure = color.New(color.FgRed, color.Bold)
)

// Dispatcher reads command lines and runs each one as a child process, one
// at a time.
type Dispatcher struct {
	cfg      *config.Configuration
	launcher Launcher
	logger   *log.Logger
}

// NewDispatcher creates a dispatcher, logger may be nil.
func NewDispatcher(cfg *config.Configuration, launcher Launcher, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Dispatcher{
		cfg:      cfg,
		launcher: launcher,
		logger:   logger,
	}
}

// Run the read, launch, report loop until the exit keyword is entered, which
// returns nil. Read and spawn failures end the loop with an error wrapping
// ErrRead or ErrSpawn.
func (d *Dispatcher) Run(stdio IO) error {
	out := stdio.Stdout()

	reader, err := NewLineReader(stdio.Stdin(), out, d.cfg.LineCapacity)
	if err != nil {
		return err
	}

	for {
		line, err := reader.ReadLine(d.cfg.Prompt)
		switch {
		case errors.Is(err, ErrLineTooLong):
			fmt.Fprintf(out, MsgLineTooLong, reader.Limit())
			continue
		case err != nil:
			fmt.Fprint(out, MsgReadFailure)
			return err
		}

		if line == d.cfg.ExitKeyword {
			d.logger.Debug("exit keyword entered")
			return nil
		}

		args, err := shell.Tokenize(line, d.cfg.MaxArgs())
		switch {
		case errors.Is(err, shell.ErrTooManyTokens):
			fmt.Fprintf(out, MsgTooManyArgs, d.cfg.MaxArgs())
			continue
		case args.Len() == 0:
			fmt.Fprint(out, MsgEmptyLine)
			continue
		}

		d.logger.Debug("launching", "command", args.Name(), "argc", args.Len())
		child, err := d.launcher.Launch(args, stdio)
		if err != nil {
			if errors.Is(err, ErrSpawn) {
				fmt.Fprint(out, MsgSpawnFailed)
			}
			return err
		}

		d.logger.Debug("child exited", "pid", child.Pid, "code", child.ExitCode)
		report(out, child)
	}
}

// report prints the child's status line, coloured as a whole on terminals.
func report(w io.Writer, child *Child) {
	c := colorSuccess
	if child.ExitCode != 0 {
		c = colorFailure
	}
	fmt.Fprintln(w, c.Sprintf(MsgChildExited, child.Pid, child.ExitCode))
}
