package standards

import (
	"errors"
	"math"
	"strings"

	"github.com/reusee/bp/tape"
	"golang.org/x/text/cases"
)

var ErrUnknown = errors.New("unknown language standard")

// Standard is a named bundle of tape length, cell bounds and wrap policy.
type Standard struct {
	Name   string
	Config tape.Config
}

func TacoBell() Standard {
	return Standard{
		Name: "tacobell",
		Config: tape.Config{
			Length:      30000,
			CellMin:     0,
			CellMax:     255,
			WrapCells:   true,
			WrapPointer: true,
		},
	}
}

func BP() Standard {
	return Standard{
		Name: "bp",
		Config: tape.Config{
			Length:      50000,
			CellMin:     0,
			CellMax:     math.MaxInt32,
			WrapCells:   true,
			WrapPointer: true,
		},
	}
}

func ExtBP() Standard {
	return Standard{
		Name: "extbp",
		Config: tape.Config{
			Length:      100000,
			CellMin:     math.MinInt64,
			CellMax:     math.MaxInt64,
			WrapCells:   true,
			WrapPointer: true,
		},
	}
}

func Default() Standard {
	return TacoBell()
}

var all = []func() Standard{
	TacoBell,
	BP,
	ExtBP,
}

// Lookup matches name against the known standards, ignoring case and
// surrounding whitespace.
func Lookup(name string) (Standard, bool) {
	name = cases.Fold().String(strings.TrimSpace(name))
	for _, fn := range all {
		if std := fn(); std.Name == name {
			return std, true
		}
	}
	return Standard{}, false
}

func Names() []string {
	ret := make([]string, 0, len(all))
	for _, fn := range all {
		ret = append(ret, fn().Name)
	}
	return ret
}
