package bpvm

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/reusee/bp/logs"
	"github.com/reusee/bp/standards"
	"github.com/reusee/bp/tape"
)

type Options struct {
	Stdin  io.Reader // if nil, default to os.Stdin
	Stdout io.Writer // if nil, default to os.Stdout
	Logger logs.Logger
	Trace  bool // log every dispatched step at debug level
}

// Interpreter executes token streams against a tape it owns. The tape and
// the input reader survive between runs, so one program can leave data
// for the next.
type Interpreter struct {
	tape     *tape.Tape
	standard string

	stdin  *bufio.Reader
	stdout *bufio.Writer
	logger logs.Logger
	trace  bool

	steps int
}

func New(config tape.Config, opts Options) (*Interpreter, error) {
	t, err := tape.New(config)
	if err != nil {
		return nil, err
	}
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Interpreter{
		tape:   t,
		stdin:  bufio.NewReader(stdin),
		stdout: bufio.NewWriter(stdout),
		logger: logger,
		trace:  opts.Trace,
	}, nil
}

func NewStandard(std standards.Standard, opts Options) (*Interpreter, error) {
	i, err := New(std.Config, opts)
	if err != nil {
		return nil, err
	}
	i.standard = std.Name
	return i, nil
}

func (i *Interpreter) Tape() *tape.Tape {
	return i.tape
}

// Standard returns the name of the last applied standard, or "" after a
// direct configuration.
func (i *Interpreter) Standard() string {
	return i.standard
}

// SetStandard applies a named standard. Unknown names leave the current
// configuration untouched.
func (i *Interpreter) SetStandard(name string) error {
	std, ok := standards.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", standards.ErrUnknown, name)
	}
	if err := i.tape.SetConfig(std.Config); err != nil {
		return err
	}
	i.standard = std.Name
	return nil
}

// SetConfig applies a custom configuration.
func (i *Interpreter) SetConfig(config tape.Config) error {
	if err := i.tape.SetConfig(config); err != nil {
		return err
	}
	i.standard = ""
	return nil
}

type Stats struct {
	Steps   int
	LowOps  int
	HighOps int
}

func (i *Interpreter) Stats() Stats {
	return Stats{
		Steps:   i.steps,
		LowOps:  i.tape.LowOps(),
		HighOps: i.tape.HighOps(),
	}
}
