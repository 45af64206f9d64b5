package bpvm

import (
	"github.com/reusee/bp/bpconfigs"
	"github.com/reusee/bp/debugs"
	"github.com/reusee/bp/logs"
	"github.com/reusee/bp/modes"
	"github.com/reusee/bp/standards"
	"github.com/reusee/bp/tape"
	"github.com/reusee/bp/tapefile"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs     logs.Module
	Configs  bpconfigs.Module
	Debugs   debugs.Module
	TapeFile tapefile.Module
}

// NewInterpreter builds an interpreter from the configured tape. Options
// left zero take the scope's logger and the process stdio.
type NewInterpreter func(opts Options) (*Interpreter, error)

func (Module) NewInterpreter(
	logger logs.Logger,
	config tape.Config,
	name bpconfigs.StandardName,
	mode modes.Mode,
) NewInterpreter {
	return func(opts Options) (*Interpreter, error) {
		if opts.Logger == nil {
			opts.Logger = logger
		}
		if mode == modes.ModeDevelopment {
			opts.Trace = true
		}
		i, err := New(config, opts)
		if err != nil {
			return nil, err
		}
		if std, ok := standards.Lookup(string(name)); ok && std.Config == config {
			i.standard = std.Name
		}
		return i, nil
	}
}
