package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/reusee/bp/bpvm"
	"github.com/reusee/bp/cmds"
	"github.com/reusee/bp/debugs"
	"github.com/reusee/bp/logs"
	"github.com/reusee/bp/modes"
	"github.com/reusee/bp/tapefile"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

// programs in command line order
var programs []program

var (
	tapeFlag  = cmds.Var[string]("-tape")
	traceFlag = cmds.Switch("-trace")
	statsFlag = cmds.Switch("-stats")
	dumpFlag  = cmds.Switch("-dump")
	tapFlag   = cmds.Switch("-tap")
	replFlag  = cmds.Switch("-repl")
)

func init() {
	cmds.Define("-file", cmds.Func(func(path string) {
		programs = append(programs, program{
			path: path,
		})
	}).Desc("run a .bp program file; repeatable"))
	cmds.Define("-e", cmds.Func(func(text string) {
		programs = append(programs, program{
			name: fmt.Sprintf("-e#%d", len(programs)+1),
			text: text,
		})
	}).Desc("run program text; repeatable"))
}

func main() {
	cmds.Execute(os.Args[1:])

	if *traceFlag {
		logs.SetLevel(slog.LevelDebug)
	}

	interactive := *replFlag ||
		len(programs) == 0 && term.IsTerminal(int(os.Stdin.Fd()))
	if len(programs) == 0 && !interactive {
		cmds.GlobalExecutor.WriteUsage(os.Stderr)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(bpvm.Module),
		modes.ForProduction(),
	)

	var status int
	scope.Call(func(
		newInterpreter bpvm.NewInterpreter,
		newSpan logs.NewSpan,
		logger logs.Logger,
		tap debugs.Tap,
		open tapefile.Open,
	) {
		s := &session{
			stdout: &lineWriter{
				w: os.Stdout,
			},
			stderr:  os.Stderr,
			logger:  logger,
			newSpan: newSpan,
			dump:    *dumpFlag,
		}
		if *tapeFlag != "" {
			s.file = open(*tapeFlag)
		}

		opts := bpvm.Options{
			Stdout: s.stdout,
			Trace:  *traceFlag,
		}
		var lines lineSource
		if interactive {
			input, err := newReplInput()
			if err != nil {
				s.fatal(err)
				status = 1
				return
			}
			defer input.Close()
			opts.Stdin = input
			lines = input
		}

		var err error
		s.interpreter, err = newInterpreter(opts)
		if err != nil {
			s.fatal(err)
			status = 1
			return
		}

		status = s.run(ctx, programs, lines)

		if *statsFlag {
			s.printStats()
		}
		if *tapFlag {
			tap(ctx, "tape", debugs.TapeGlobals(s.interpreter.Tape()))
		}
	})
	os.Exit(status)
}
