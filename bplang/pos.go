package bplang

import (
	"fmt"
	"strings"
)

type Pos struct {
	Source *Source
	Offset int // bytes
	Line   int
	Column int
}

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil || p.Pos.Source.Name == "" {
		return p.Err.Error()
	}
	return fmt.Sprintf("%s at %s:%d:%d", p.Err.Error(), p.Pos.Source.Name, p.Pos.Line, p.Pos.Column)
}

func (p PosError) Unwrap() error {
	return p.Err
}

// Snippet renders the offending line with a caret under the column.
func (p PosError) Snippet() string {
	if p.Pos.Source == nil {
		return ""
	}
	lines := p.Pos.Source.Lines
	idx := p.Pos.Line - 1
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	line := lines[idx]
	var sb strings.Builder
	sb.WriteString(line)
	sb.WriteString("\n")
	col := p.Pos.Column - 1
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("^\n")
	return sb.String()
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}
