package tape

import (
	"github.com/reusee/bp/faults"
)

type Tape struct {
	config  Config
	cells   []int64
	pointer int

	lowOps  int
	highOps int
}

func New(config Config) (*Tape, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Tape{
		config: config,
		cells:  make([]int64, config.Length),
	}, nil
}

func (t *Tape) Read() int64 {
	t.lowOps++
	return t.cells[t.pointer]
}

func (t *Tape) Write(value int64) error {
	t.lowOps++
	if t.config.WrapCells {
		value = t.reflect(value)
	} else if t.config.StrictCells && (value < t.config.CellMin || value > t.config.CellMax) {
		return faults.New(faults.KindBounds,
			"The cell value is out of range: %d not in [%d, %d]",
			value, t.config.CellMin, t.config.CellMax,
		)
	}
	t.cells[t.pointer] = value
	return nil
}

// reflect folds an out-of-range value back by a single step. Values more than
// one range width away stay out of range.
func (t *Tape) reflect(value int64) int64 {
	switch {
	case value > t.config.CellMax:
		return t.config.CellMin + (value - t.config.CellMax - 1)
	case value < t.config.CellMin:
		return t.config.CellMax - (t.config.CellMin - value - 1)
	}
	return value
}

func (t *Tape) Move(delta int) error {
	t.lowOps++
	return t.setPointer(t.pointer + delta)
}

func (t *Tape) MovePointerTo(pos int) error {
	t.lowOps += abs(pos - t.pointer)
	return t.setPointer(pos)
}

func (t *Tape) setPointer(pos int) error {
	if pos >= 0 && pos < len(t.cells) {
		t.pointer = pos
		return nil
	}
	if !t.config.WrapPointer {
		return faults.New(faults.KindBounds, "The pointer is in an invalid position: %d", pos)
	}
	if pos < 0 {
		t.pointer = len(t.cells) - 1
	} else {
		t.pointer = 0
	}
	return nil
}

func (t *Tape) Pointer() int {
	return t.pointer
}

func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) LowOps() int {
	return t.lowOps
}

func (t *Tape) HighOps() int {
	return t.highOps
}

func (t *Tape) ResetCounters() {
	t.lowOps = 0
	t.highOps = 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
