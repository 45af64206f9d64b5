package bpvm

import (
	"context"
	"iter"
	"time"

	"github.com/reusee/bp/bplang"
	"github.com/reusee/bp/faults"
)

type Step struct {
	PC      int
	Token   bplang.Token
	Operand bplang.Token
	// Jump is the loop start position a loop end jumped back to, or -1.
	Jump int
}

func (i *Interpreter) Run(ctx context.Context, program string) error {
	tokens, err := bplang.Tokenize(program)
	if err != nil {
		return err
	}
	return i.Exec(ctx, tokens)
}

func (i *Interpreter) RunSource(ctx context.Context, src *bplang.Source) error {
	tokens, err := src.Tokenize()
	if err != nil {
		return err
	}
	return i.Exec(ctx, tokens)
}

const ctxCheckInterval = 1024

func (i *Interpreter) Exec(ctx context.Context, tokens []bplang.Token) (err error) {
	defer func() {
		if e := i.stdout.Flush(); e != nil && err == nil {
			err = faults.Wrap(faults.KindIO, e, "write output")
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	stepsBefore := i.steps
	i.logger.InfoContext(ctx, "run",
		"tokens", len(tokens),
		"standard", i.standard,
	)

	for step, err := range i.Steps(tokens) {
		if err != nil {
			i.logger.InfoContext(ctx, "run halted",
				"pc", step.PC,
				"op", step.Token.Kind.String(),
				"error", err,
			)
			return err
		}
		if i.trace {
			i.logger.DebugContext(ctx, "step",
				"pc", step.PC,
				"op", step.Token.Kind.String(),
				"operand", step.Operand.Value,
				"pointer", i.tape.Pointer(),
				"jump", step.Jump,
			)
		}
		if (i.steps-stepsBefore)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}

	i.logger.InfoContext(ctx, "run done",
		"steps", i.steps-stepsBefore,
		"low_ops", i.tape.LowOps(),
		"high_ops", i.tape.HighOps(),
		"duration", time.Since(start),
	)
	return nil
}

// Steps dispatches tokens one by one, yielding each executed opcode. The
// first fault is yielded with its step and ends the sequence.
func (i *Interpreter) Steps(tokens []bplang.Token) iter.Seq2[*Step, error] {
	return func(yield func(*Step, error) bool) {
		var loops []int

		next := func(pc int) int {
			if pc+1 < len(tokens) && tokens[pc+1].Kind == bplang.OpValue {
				return pc + 2
			}
			return pc + 1
		}

		for pc := 0; pc < len(tokens); {
			token := tokens[pc]
			if token.Kind == bplang.OpValue {
				// operand without an opcode
				pc++
				continue
			}

			step := &Step{
				PC:    pc,
				Token: token,
				Operand: bplang.Token{
					Kind:  bplang.OpValue,
					Value: token.Kind.DefaultOperand(),
				},
				Jump: -1,
			}
			if pc+1 < len(tokens) && tokens[pc+1].Kind == bplang.OpValue {
				step.Operand = tokens[pc+1]
			}
			i.steps++

			var err error
			switch token.Kind {

			case bplang.OpLoopStart:
				loops = append(loops, pc)

			case bplang.OpLoopEnd:
				if len(loops) == 0 {
					err = faults.New(faults.KindStructure,
						"Found ending block without matching starting block.",
					).At(token.Offset)
					break
				}
				if i.tape.Read() > 0 {
					step.Jump = loops[len(loops)-1]
				} else {
					loops = loops[:len(loops)-1]
				}

			default:
				err = i.dispatch(token.Kind, step.Operand)
			}

			if err != nil {
				yield(step, err)
				return
			}
			if !yield(step, nil) {
				return
			}

			if step.Jump >= 0 {
				pc = next(step.Jump)
			} else {
				pc = next(pc)
			}
		}
	}
}

func (i *Interpreter) dispatch(kind bplang.OpKind, operand bplang.Token) error {
	t := i.tape
	value := operand.Value
	switch kind {
	case bplang.OpIncrement:
		return t.Write(t.Read() + value)
	case bplang.OpDecrement:
		return t.Write(t.Read() - value)
	case bplang.OpSetValue:
		return t.Write(value)
	case bplang.OpMoveRight:
		return t.Move(int(value))
	case bplang.OpMoveLeft:
		return t.Move(-int(value))
	case bplang.OpGotoCell:
		return t.MovePointerTo(int(value))
	case bplang.OpInput:
		return i.input(operand.CharMode())
	case bplang.OpOutput:
		return i.output(operand.CharMode())
	}
	return nil
}
