package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/reusee/bp/bplang"
	"github.com/reusee/bp/bpvm"
	"github.com/reusee/bp/faults"
	"github.com/reusee/bp/logs"
	"github.com/reusee/bp/procs"
	"github.com/reusee/bp/tapefile"
)

type program struct {
	path string
	name string
	text string
}

func (p program) load() (*bplang.Source, error) {
	if p.path != "" {
		return bplang.LoadFile(p.path)
	}
	return bplang.NewSource(p.name, p.text), nil
}

// session runs programs one after another on a single interpreter.
type session struct {
	interpreter *bpvm.Interpreter
	stdout      *lineWriter
	stderr      io.Writer
	logger      logs.Logger
	newSpan     logs.NewSpan
	dump        bool

	file   *tapefile.File
	record *tapefile.Record
}

func (s *session) run(ctx context.Context, programs []program, lines lineSource) (status int) {
	if s.file != nil {
		unlock, err := s.file.Lock()
		if err != nil {
			s.fatal(err)
			return 1
		}
		defer unlock()
		if err := s.loadTape(); err != nil {
			s.fatal(err)
			return 1
		}
		defer func() {
			if err := s.saveTape(); err != nil {
				s.logger.Error("save tape", "path", s.file.Path, "error", err)
				status = 1
			}
		}()
	}

	var list procs.Procs[context.Context]
	for _, p := range programs {
		list = append(list, procs.Once(func(ctx context.Context) error {
			return s.runProgram(ctx, p)
		}))
	}
	if err := procs.Drain[context.Context](ctx, list); err != nil {
		s.fatal(err)
		return 1
	}

	if lines != nil {
		s.repl(ctx, lines)
	}
	return 0
}

func (s *session) runProgram(ctx context.Context, p program) error {
	src, err := p.load()
	if err != nil {
		return err
	}
	tokens, err := src.Tokenize()
	if err != nil {
		return err
	}
	if s.dump {
		_, err := fmt.Fprintln(s.stdout, bplang.Format(tokens))
		return err
	}

	ctx, _ = s.newSpan(ctx, "")
	before := s.interpreter.Stats()
	err = s.interpreter.Exec(ctx, tokens)
	s.addRun(src.Name, before, err)
	if err != nil {
		err = logs.WrapSpan(ctx, err)
		s.logger.InfoContext(ctx, "program failed",
			"name", src.Name,
			"error", err,
		)
		return err
	}
	return nil
}

func (s *session) addRun(name string, before bpvm.Stats, err error) {
	if s.record == nil {
		return
	}
	after := s.interpreter.Stats()
	run := tapefile.Run{
		Time:    time.Now(),
		Name:    name,
		Status:  tapefile.StatusDone,
		Steps:   after.Steps - before.Steps,
		LowOps:  after.LowOps - before.LowOps,
		HighOps: after.HighOps - before.HighOps,
	}
	if err != nil {
		run.Status = tapefile.StatusFailed
		run.Error = errorMessage(err)
	}
	s.record.AddRun(run)
}

func (s *session) loadTape() error {
	record, err := s.file.Load()
	if errors.Is(err, os.ErrNotExist) {
		s.record = new(tapefile.Record)
		return nil
	}
	if err != nil {
		return err
	}
	if len(record.State.Cells) > 0 {
		if err := s.interpreter.Tape().Restore(record.State); err != nil {
			return fmt.Errorf("restore %s: %w", s.file.Path, err)
		}
	}
	s.record = record
	return nil
}

func (s *session) saveTape() error {
	s.record.State = s.interpreter.Tape().Snapshot()
	return s.file.Save(s.record)
}

func (s *session) printStats() {
	stats := s.interpreter.Stats()
	fmt.Fprintf(s.stderr, "steps=%d low_ops=%d high_ops=%d\n",
		stats.Steps, stats.LowOps, stats.HighOps,
	)
}

// fatal reports err as a single [ERROR] line on stdout.
func (s *session) fatal(err error) {
	s.stdout.EndLine()
	fmt.Fprintf(s.stdout, "[ERROR]: %s\n", errorMessage(err))
	var posErr bplang.PosError
	if errors.As(err, &posErr) {
		io.WriteString(s.stderr, posErr.Snippet())
	}
}

func errorMessage(err error) string {
	var posErr bplang.PosError
	if errors.As(err, &posErr) {
		return posErr.Error()
	}
	var fault *faults.Error
	if errors.As(err, &fault) {
		return fault.Error()
	}
	return err.Error()
}

// lineWriter remembers whether the last write ended a line.
type lineWriter struct {
	w       io.Writer
	pending bool
}

func (l *lineWriter) Write(p []byte) (int, error) {
	n, err := l.w.Write(p)
	if n > 0 {
		l.pending = p[n-1] != '\n'
	}
	return n, err
}

func (l *lineWriter) EndLine() {
	if l.pending {
		l.Write([]byte("\n"))
	}
}
