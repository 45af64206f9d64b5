package tape

import "fmt"

type Config struct {
	Length      int   `json:"length" yaml:"length"`
	CellMin     int64 `json:"cell_min" yaml:"cell_min"`
	CellMax     int64 `json:"cell_max" yaml:"cell_max"`
	WrapCells   bool  `json:"wrap_cells" yaml:"wrap_cells"`
	WrapPointer bool  `json:"wrap_pointer" yaml:"wrap_pointer"`
	// StrictCells turns out-of-range writes into bounds faults when WrapCells is off.
	StrictCells bool `json:"strict_cells,omitempty" yaml:"strict_cells,omitempty"`
}

func (c Config) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("tape length must be positive, got %d", c.Length)
	}
	if c.CellMin > c.CellMax {
		return fmt.Errorf("cell min %d is greater than cell max %d", c.CellMin, c.CellMax)
	}
	return nil
}
