package tapefile

import (
	"github.com/reusee/bp/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type Open func(path string) *File

func (Module) Open(
	logger logs.Logger,
) Open {
	return func(path string) *File {
		return &File{
			Path:   path,
			Logger: logger,
		}
	}
}
