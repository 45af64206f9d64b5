package tape

import (
	"fmt"
)

// Resize keeps the first min(old, new) cells and zero fills the rest.
func (t *Tape) Resize(length int) error {
	t.highOps++
	if length <= 0 {
		return fmt.Errorf("tape length must be positive, got %d", length)
	}
	if length == len(t.cells) {
		return nil
	}
	cells := make([]int64, length)
	copy(cells, t.cells)
	t.cells = cells
	t.config.Length = length
	if t.pointer >= length {
		t.pointer = length - 1
	}
	return nil
}

func (t *Tape) Grow(delta int) error {
	return t.Resize(len(t.cells) + delta)
}

// Replace installs a copy of values as the new tape.
func (t *Tape) Replace(values []int64) error {
	t.highOps++
	if len(values) == 0 {
		return fmt.Errorf("replacement tape is empty")
	}
	t.cells = append([]int64(nil), values...)
	t.config.Length = len(t.cells)
	if t.pointer >= len(t.cells) {
		t.pointer = len(t.cells) - 1
	}
	return nil
}

// Cells returns the live backing slice. Writes through it are visible to the
// tape; use Snapshot for an independent copy.
func (t *Tape) Cells() []int64 {
	t.highOps++
	return t.cells
}

func (t *Tape) Config() Config {
	return t.config
}

// SetConfig applies bounds and wrap flags and resizes to config.Length,
// keeping existing cells.
func (t *Tape) SetConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := t.Resize(config.Length); err != nil {
		return err
	}
	t.config = config
	return nil
}

func (t *Tape) SetLength(length int) error {
	return t.Resize(length)
}

func (t *Tape) SetCellBounds(cellMin, cellMax int64) error {
	if cellMin > cellMax {
		return fmt.Errorf("cell min %d is greater than cell max %d", cellMin, cellMax)
	}
	t.config.CellMin = cellMin
	t.config.CellMax = cellMax
	return nil
}

func (t *Tape) SetWrapCells(wrap bool) {
	t.config.WrapCells = wrap
}

func (t *Tape) SetWrapPointer(wrap bool) {
	t.config.WrapPointer = wrap
}
