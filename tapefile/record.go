package tapefile

import (
	"time"

	"github.com/reusee/bp/tape"
)

// MaxRuns is the number of run entries kept in a record.
const MaxRuns = 500

const (
	StatusDone   = "done"
	StatusFailed = "failed"
)

type Run struct {
	Time    time.Time `json:"time" yaml:"time"`
	Name    string    `json:"name" yaml:"name"`
	Status  string    `json:"status" yaml:"status"`
	Error   string    `json:"error,omitempty" yaml:"error,omitempty"`
	Steps   int       `json:"steps" yaml:"steps"`
	LowOps  int       `json:"low_ops" yaml:"low_ops"`
	HighOps int       `json:"high_ops" yaml:"high_ops"`
}

// Record is the persisted form of a tape between sessions.
type Record struct {
	State tape.State `json:"state" yaml:"state"`
	Runs  []Run      `json:"runs,omitempty" yaml:"runs,omitempty"`
}

func (r *Record) AddRun(run Run) {
	r.Runs = append(r.Runs, run)
	r.prune()
}

func (r *Record) prune() {
	if len(r.Runs) > MaxRuns {
		r.Runs = append([]Run(nil), r.Runs[len(r.Runs)-MaxRuns:]...)
	}
}
