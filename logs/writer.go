package logs

import (
	"io"
	"os"
)

// Writer receives terminal log output. Stdout belongs to the program.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
