package bpconfigs

import (
	"github.com/reusee/bp/cmds"
	"github.com/reusee/bp/configs"
	"github.com/reusee/bp/logs"
	"github.com/reusee/bp/standards"
	"github.com/reusee/bp/tape"
	"github.com/reusee/bp/vars"
)

// overrides set on the command line; nil means not given
var (
	tapeLengthFlag  = cmds.Var[int]("-tape-length")
	cellMinFlag     *int64
	cellMaxFlag     *int64
	wrapCellsFlag   *bool
	wrapPointerFlag *bool
	strictCellsFlag *bool
)

func init() {
	cmds.Define("-cell-min", cmds.Func(func(v int64) {
		cellMinFlag = &v
	}).Desc("lowest cell value"))
	cmds.Define("-cell-max", cmds.Func(func(v int64) {
		cellMaxFlag = &v
	}).Desc("highest cell value"))
	boolFlag := func(name, desc string, target **bool) {
		cmds.Define(name, cmds.Func(func(v string) {
			b := vars.StrToBool(v)
			*target = &b
		}).Desc(desc))
	}
	boolFlag("-wrap-cells", "reflect out of range cell values: on or off", &wrapCellsFlag)
	boolFlag("-wrap-pointer", "wrap the pointer around the tape ends: on or off", &wrapPointerFlag)
	boolFlag("-strict-cells", "fault on out of range cell values when not wrapping: on or off", &strictCellsFlag)
}

// TapeConfig is the starting tape configuration: command line flags over
// config files over the selected standard.
func (Module) TapeConfig(
	name StandardName,
	loader configs.Loader,
	logger logs.Logger,
) tape.Config {
	std, ok := standards.Lookup(string(name))
	if !ok {
		std = standards.Default()
	}
	config := std.Config

	config.Length = vars.FirstNonZero(
		*tapeLengthFlag,
		configs.First[int](loader, "tape_length"),
		config.Length,
	)

	override(&config.CellMin, cellMinFlag, loader, "cell_min")
	override(&config.CellMax, cellMaxFlag, loader, "cell_max")
	override(&config.WrapCells, wrapCellsFlag, loader, "wrap_cells")
	override(&config.WrapPointer, wrapPointerFlag, loader, "wrap_pointer")
	override(&config.StrictCells, strictCellsFlag, loader, "strict_cells")

	if config != std.Config {
		logger.Info("tape config",
			"standard", std.Name,
			"length", config.Length,
			"cell_min", config.CellMin,
			"cell_max", config.CellMax,
			"wrap_cells", config.WrapCells,
			"wrap_pointer", config.WrapPointer,
			"strict_cells", config.StrictCells,
		)
	}

	return config
}

func override[T any](target *T, flag *T, loader configs.Loader, path string) {
	if flag != nil {
		*target = *flag
		return
	}
	if loader.Has(path) {
		*target = configs.First[T](loader, path)
	}
}
