package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForProduction is for binaries: steps are traced only when asked.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}
