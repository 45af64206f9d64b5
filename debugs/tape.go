package debugs

import (
	"fmt"

	"github.com/reusee/bp/tape"
	"go.starlark.net/starlark"
)

// TapeGlobals exposes tape state to starlark. cells stops at the last
// non-zero cell; peek reads any cell; nonzero lists the set positions.
func TapeGlobals(t *tape.Tape) map[string]any {
	lowOps, highOps := t.LowOps(), t.HighOps()
	state := t.Snapshot()
	used := len(state.Cells)
	for used > 0 && state.Cells[used-1] == 0 {
		used--
	}

	peek := starlark.NewBuiltin("peek", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var i int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &i); err != nil {
			return nil, err
		}
		if i < 0 || i >= len(state.Cells) {
			return nil, fmt.Errorf("%s: cell %d out of range [0, %d)", fn.Name(), i, len(state.Cells))
		}
		return starlark.MakeInt64(state.Cells[i]), nil
	})

	return map[string]any{
		"pointer":  state.Pointer,
		"length":   len(state.Cells),
		"cells":    state.Cells[:used],
		"config":   state.Config,
		"low_ops":  lowOps,
		"high_ops": highOps,
		"peek":     peek,
		"nonzero": func() []int {
			var ret []int
			for i, v := range state.Cells[:used] {
				if v != 0 {
					ret = append(ret, i)
				}
			}
			return ret
		},
	}
}
