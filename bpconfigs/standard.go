package bpconfigs

import (
	"github.com/reusee/bp/cmds"
	"github.com/reusee/bp/configs"
	"github.com/reusee/bp/logs"
	"github.com/reusee/bp/standards"
)

// StandardName is the canonical name of the selected language standard.
type StandardName string

var standardFlag string

func init() {
	cmds.Define("-std", cmds.Func(func(name string) {
		standardFlag = name
	}).Desc("language standard: tacobell, bp or extbp"))
}

func (Module) StandardName(
	loader configs.Loader,
	logger logs.Logger,
) StandardName {
	for _, name := range []string{
		standardFlag,
		configs.First[string](loader, "standard"),
	} {
		if name == "" {
			continue
		}
		std, ok := standards.Lookup(name)
		if !ok {
			logger.Warn("unknown language standard",
				"name", name,
				"known", standards.Names(),
			)
			continue
		}
		return StandardName(std.Name)
	}
	return StandardName(standards.Default().Name)
}
