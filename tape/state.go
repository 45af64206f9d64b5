package tape

import "fmt"

type State struct {
	Config  Config  `json:"config" yaml:"config"`
	Pointer int     `json:"pointer" yaml:"pointer"`
	Cells   []int64 `json:"cells" yaml:"cells"`
}

func (t *Tape) Snapshot() State {
	t.highOps++
	return State{
		Config:  t.config,
		Pointer: t.pointer,
		Cells:   append([]int64(nil), t.cells...),
	}
}

func (t *Tape) Restore(state State) error {
	t.highOps++
	config := state.Config
	if len(state.Cells) > 0 {
		config.Length = len(state.Cells)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if state.Pointer < 0 || state.Pointer >= config.Length {
		return fmt.Errorf("pointer %d out of tape of length %d", state.Pointer, config.Length)
	}
	cells := make([]int64, config.Length)
	copy(cells, state.Cells)
	t.config = config
	t.cells = cells
	t.pointer = state.Pointer
	return nil
}
