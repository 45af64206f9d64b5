package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/bp/debugs"
	"github.com/reusee/bp/standards"
	"github.com/reusee/bp/tape"
)

const prompt = "bp> "

type lineSource interface {
	Line() (string, error)
}

// replInput reads REPL lines and, as an io.Reader, program input.
type replInput struct {
	rl      *readline.Instance
	pending []byte
}

func newReplInput() (*replInput, error) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".bp_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		return nil, err
	}
	return &replInput{
		rl: rl,
	}, nil
}

func (r *replInput) Line() (string, error) {
	r.rl.SetPrompt(prompt)
	return r.rl.Readline()
}

func (r *replInput) Read(p []byte) (int, error) {
	if len(r.pending) == 0 {
		r.rl.SetPrompt("? ")
		line, err := r.rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			return 0, io.EOF
		}
		r.pending = []byte(line + "\n")
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

func (r *replInput) Close() error {
	return r.rl.Close()
}

var errQuit = errors.New("quit")

func (s *session) repl(ctx context.Context, lines lineSource) {
	for {
		if ctx.Err() != nil {
			return
		}
		line, err := lines.Line()
		if err != nil { // Ctrl-C or Ctrl-D
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ":") {
			if err := s.command(line); errors.Is(err, errQuit) {
				return
			} else if err != nil {
				fmt.Fprintf(s.stderr, "error: %v\n", err)
			}
			continue
		}

		if err := s.runProgram(ctx, program{
			name: "repl",
			text: line,
		}); err != nil {
			s.fatal(err)
			continue
		}
		s.stdout.EndLine()
	}
}

func (s *session) command(line string) error {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch name {

	case ":q", ":quit":
		return errQuit

	case ":std":
		if arg == "" {
			fmt.Fprintln(s.stdout, s.interpreter.Standard())
			return nil
		}
		if err := s.interpreter.SetStandard(arg); err != nil {
			return fmt.Errorf("%w, known: %s", err, strings.Join(standards.Names(), " "))
		}

	case ":stats":
		s.printStats()

	case ":tape":
		if arg == "" {
			arg = "cells"
		}
		value, err := debugs.Eval(arg, debugs.TapeGlobals(s.interpreter.Tape()))
		if err != nil {
			return err
		}
		fmt.Fprintln(s.stdout, value.String())

	case ":reset":
		t := s.interpreter.Tape()
		config := t.Config()
		return t.Restore(tape.State{
			Config: config,
			Cells:  make([]int64, config.Length),
		})

	default:
		return fmt.Errorf("unknown command %s, expecting :std :stats :tape :reset :quit", name)
	}
	return nil
}
