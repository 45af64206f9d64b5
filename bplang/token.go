package bplang

import "strconv"

type Token struct {
	Kind   OpKind
	Value  int64
	Quoted bool // operand was a quoted character literal
	Text   string
	Offset int
}

type OpKind uint8

const (
	OpInvalid OpKind = iota
	OpEOF
	OpIncrement
	OpDecrement
	OpSetValue
	OpMoveRight
	OpMoveLeft
	OpGotoCell
	OpLoopStart
	OpLoopEnd
	OpInput
	OpOutput
	OpValue
)

var opChars = map[rune]OpKind{
	'+': OpIncrement,
	'-': OpDecrement,
	'=': OpSetValue,
	'>': OpMoveRight,
	'<': OpMoveLeft,
	'^': OpGotoCell,
	'[': OpLoopStart,
	']': OpLoopEnd,
	',': OpInput,
	'.': OpOutput,
}

func (k OpKind) String() string {
	switch k {
	case OpIncrement:
		return "+"
	case OpDecrement:
		return "-"
	case OpSetValue:
		return "="
	case OpMoveRight:
		return ">"
	case OpMoveLeft:
		return "<"
	case OpGotoCell:
		return "^"
	case OpLoopStart:
		return "["
	case OpLoopEnd:
		return "]"
	case OpInput:
		return ","
	case OpOutput:
		return "."
	case OpValue:
		return "value"
	case OpEOF:
		return "EOF"
	}
	return "invalid"
}

// DefaultOperand is used when no operand follows the opcode.
// Set and goto default to the character '0', not to zero.
func (k OpKind) DefaultOperand() int64 {
	switch k {
	case OpIncrement, OpDecrement, OpMoveRight, OpMoveLeft:
		return 1
	case OpSetValue, OpGotoCell:
		return '0'
	}
	return 0
}

// CharMode reports whether an operand selects character input or output.
// Only the quoted literal 'c' does; the number 99 does not.
func (t Token) CharMode() bool {
	return t.Kind == OpValue && t.Quoted && t.Value == 'c'
}

func (t Token) String() string {
	if t.Kind != OpValue {
		return t.Kind.String()
	}
	if t.Quoted {
		return "{'" + string(rune(t.Value)) + "'}"
	}
	return "{" + strconv.FormatInt(t.Value, 10) + "}"
}
