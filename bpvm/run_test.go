package bpvm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/reusee/bp/bplang"
	"github.com/reusee/bp/faults"
	"github.com/reusee/bp/standards"
	"github.com/reusee/bp/tape"
)

func newTestInterpreter(t *testing.T, std standards.Standard, input string) (*Interpreter, *strings.Builder) {
	out := new(strings.Builder)
	i, err := NewStandard(std, Options{
		Stdin:  strings.NewReader(input),
		Stdout: out,
	})
	if err != nil {
		t.Fatal(err)
	}
	return i, out
}

func TestRun(t *testing.T) {
	tests := []struct {
		program string
		input   string
		output  string
	}{
		{"={'h'}.{'c'}", "", "h"},
		{"={72}.{}", "", "72"},
		{"={72}.", "", "72"},
		{"={3}>={4}^{0}[>+<-]>.", "", "7"},
		{"={255}+.", "", "0"},
		{"-.", "", "255"},
		{"+{300}.", "", "44"},
		{"=.", "", "48"},
		{"^>={1}.", "", "1"},
		{"{5}+.", "", "1"},
		{"+{2}[-]. comment text", "", "0"},
		{"={'A'}+{2}.{'c'}", "", "C"},
		{",{'c'}.{}>,.", "x 42", "12042"},
		{",.", "\n  \t7", "7"},
		{",{'c'}.{'c'}", "héllo", "h"},
		{"+{3}[>+{2}[>+<-]<-]>>.", "", "6"},
	}
	for _, test := range tests {
		t.Run(test.program, func(t *testing.T) {
			i, out := newTestInterpreter(t, standards.TacoBell(), test.input)
			if err := i.Run(t.Context(), test.program); err != nil {
				t.Fatal(err)
			}
			if got := out.String(); got != test.output {
				t.Fatalf("got %q", got)
			}
		})
	}
}

func TestCharacterOutputModulo(t *testing.T) {
	i, out := newTestInterpreter(t, standards.ExtBP(), "")
	// 255 + 'A' prints as 'A'
	if err := i.Run(t.Context(), "={320}.{'c'}={-190}.{'c'}"); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "AA" {
		t.Fatalf("got %q", got)
	}
}

func TestWrapRange(t *testing.T) {
	i, out := newTestInterpreter(t, standards.ExtBP(), "")
	if err := i.Run(t.Context(), "={255}+.>-."); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "256-1" {
		t.Fatalf("got %q", got)
	}
}

func TestUnmatchedLoopEnd(t *testing.T) {
	i, out := newTestInterpreter(t, standards.TacoBell(), "")
	err := i.Run(t.Context(), "]={65}.")
	if !faults.Is(err, faults.KindStructure) {
		t.Fatalf("got %v", err)
	}
	if err.Error() != "Found ending block without matching starting block." {
		t.Fatalf("got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("got %q", out.String())
	}

	// output before the fault is kept
	i, out = newTestInterpreter(t, standards.TacoBell(), "")
	err = i.Run(t.Context(), "={65}.[-]]")
	if !faults.Is(err, faults.KindStructure) {
		t.Fatalf("got %v", err)
	}
	var fault *faults.Error
	if !errors.As(err, &fault) || fault.Offset != 9 {
		t.Fatalf("got %v", err)
	}
	if out.String() != "65" {
		t.Fatalf("got %q", out.String())
	}
}

func TestParseFault(t *testing.T) {
	i, out := newTestInterpreter(t, standards.TacoBell(), "")
	err := i.Run(t.Context(), ".+{x}")
	if !faults.Is(err, faults.KindParse) {
		t.Fatalf("got %v", err)
	}
	if out.Len() != 0 {
		t.Fatal("nothing runs when parsing fails")
	}
	if i.Stats().Steps != 0 {
		t.Fatal()
	}
}

func TestPointerBounds(t *testing.T) {
	config := standards.TacoBell().Config
	config.WrapPointer = false
	i, err := New(config, Options{
		Stdin:  strings.NewReader(""),
		Stdout: new(strings.Builder),
	})
	if err != nil {
		t.Fatal(err)
	}
	err = i.Run(t.Context(), ">>{2}<{4}")
	if !faults.Is(err, faults.KindBounds) {
		t.Fatalf("got %v", err)
	}
	if err.Error() != "The pointer is in an invalid position: -1" {
		t.Fatalf("got %v", err)
	}
	if i.Tape().Pointer() != 3 {
		t.Fatalf("got %d", i.Tape().Pointer())
	}

	// wrapping
	i, out := newTestInterpreter(t, standards.TacoBell(), "")
	if err := i.Run(t.Context(), "<={9}^{29999}.>."); err != nil {
		t.Fatal(err)
	}
	if out.String() != "90" {
		t.Fatalf("got %q", out.String())
	}
}

func TestStrictCells(t *testing.T) {
	config := standards.TacoBell().Config
	config.WrapCells = false
	config.StrictCells = true
	i, err := New(config, Options{
		Stdin:  strings.NewReader(""),
		Stdout: new(strings.Builder),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := i.Run(t.Context(), "-"); !faults.Is(err, faults.KindBounds) {
		t.Fatalf("got %v", err)
	}

	// without strict cells values pass through
	config.StrictCells = false
	if err := i.SetConfig(config); err != nil {
		t.Fatal(err)
	}
	if err := i.Run(t.Context(), "-"); err != nil {
		t.Fatal(err)
	}
	if v := i.Tape().Read(); v != -1 {
		t.Fatalf("got %d", v)
	}
}

func TestInputFaults(t *testing.T) {
	for input, program := range map[string]string{
		"":    ",",
		"  ":  ",{'c'}",
		"abc": ",",
		"1.5": ",",
	} {
		i, _ := newTestInterpreter(t, standards.TacoBell(), input)
		if err := i.Run(t.Context(), program); !faults.Is(err, faults.KindIO) {
			t.Fatalf("%q: got %v", input, err)
		}
	}
}

type flushRecorder struct {
	strings.Builder
	flushedBeforeRead string
}

type probeReader struct {
	out  *flushRecorder
	data *strings.Reader
}

func (p *probeReader) Read(buf []byte) (int, error) {
	p.out.flushedBeforeRead = p.out.String()
	return p.data.Read(buf)
}

func TestFlushBeforeInput(t *testing.T) {
	out := new(flushRecorder)
	i, err := NewStandard(standards.TacoBell(), Options{
		Stdin: &probeReader{
			out:  out,
			data: strings.NewReader("5"),
		},
		Stdout: out,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := i.Run(t.Context(), "={63}.{'c'},."); err != nil {
		t.Fatal(err)
	}
	if out.flushedBeforeRead != "?" {
		t.Fatalf("got %q", out.flushedBeforeRead)
	}
	if out.String() != "?5" {
		t.Fatalf("got %q", out.String())
	}
}

func TestTapePersistsAcrossRuns(t *testing.T) {
	i, out := newTestInterpreter(t, standards.TacoBell(), "")
	if err := i.Run(t.Context(), "={7}>={8}"); err != nil {
		t.Fatal(err)
	}
	if err := i.Run(t.Context(), ".<."); err != nil {
		t.Fatal(err)
	}
	if out.String() != "87" {
		t.Fatalf("got %q", out.String())
	}

	// loop stack does not survive a failed run
	if err := i.Run(t.Context(), "+["); err != nil {
		t.Fatal(err)
	}
	if err := i.Run(t.Context(), "]"); !faults.Is(err, faults.KindStructure) {
		t.Fatalf("got %v", err)
	}
}

func TestSaveRestoreBetweenRuns(t *testing.T) {
	i, out := newTestInterpreter(t, standards.TacoBell(), "")
	if err := i.Run(t.Context(), "={1}>={2}"); err != nil {
		t.Fatal(err)
	}
	saved := i.Tape().Snapshot()

	if err := i.Tape().Replace([]int64{40, 41, 42}); err != nil {
		t.Fatal(err)
	}
	if err := i.Run(t.Context(), "^{0}.>.>."); err != nil {
		t.Fatal(err)
	}

	if err := i.Tape().Restore(saved); err != nil {
		t.Fatal(err)
	}
	if err := i.Run(t.Context(), ".<."); err != nil {
		t.Fatal(err)
	}
	if out.String() != "40414221" {
		t.Fatalf("got %q", out.String())
	}

	// live cells alias the tape
	i.Tape().Cells()[0] = 9
	if err := i.Run(t.Context(), "."); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out.String(), "9") {
		t.Fatalf("got %q", out.String())
	}
}

func TestSteps(t *testing.T) {
	i, _ := newTestInterpreter(t, standards.TacoBell(), "")
	tokens, err := bplang.Tokenize("+{2}[-]+[->+{3}[-]<]")
	if err != nil {
		t.Fatal(err)
	}

	var pcs []int
	var open []int
	for step, err := range i.Steps(tokens) {
		if err != nil {
			t.Fatal(err)
		}
		pcs = append(pcs, step.PC)
		switch step.Token.Kind {
		case bplang.OpLoopStart:
			open = append(open, step.PC)
		case bplang.OpLoopEnd:
			if step.Jump < 0 {
				open = open[:len(open)-1]
				continue
			}
			if i.tape.Read() <= 0 {
				t.Fatalf("jump at pc %d with zero cell", step.PC)
			}
			if step.Jump != open[len(open)-1] {
				t.Fatalf("jump to %d, innermost open loop is %d", step.Jump, open[len(open)-1])
			}
		}
	}
	for n := 1; n < len(pcs); n++ {
		if pcs[n] < pcs[n-1] && tokens[pcs[n-1]].Kind != bplang.OpLoopEnd {
			t.Fatalf("pc went back after %v", tokens[pcs[n-1]].Kind)
		}
	}
	if len(open) != 0 {
		t.Fatalf("got %v", open)
	}

	// the first loop body runs twice
	if str := fmt.Sprint(pcs[:6]); str != "[0 2 3 4 3 4]" {
		t.Fatalf("got %s", str)
	}
}

func TestContext(t *testing.T) {
	i, _ := newTestInterpreter(t, standards.TacoBell(), "")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	if err := i.Run(ctx, "+"); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	if i.Stats().Steps != 0 {
		t.Fatal()
	}

	ctx, cancel = context.WithTimeout(t.Context(), time.Millisecond*50)
	defer cancel()
	if err := i.Run(ctx, "+[]"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v", err)
	}
}

func TestStats(t *testing.T) {
	i, _ := newTestInterpreter(t, standards.TacoBell(), "")
	if err := i.Run(t.Context(), "+++>^{0}"); err != nil {
		t.Fatal(err)
	}
	stats := i.Stats()
	if stats.Steps != 5 {
		t.Fatalf("got %d", stats.Steps)
	}
	// three read+write pairs, one move, one goto across one cell
	if stats.LowOps != 8 {
		t.Fatalf("got %d", stats.LowOps)
	}
	if stats.HighOps != 0 {
		t.Fatalf("got %d", stats.HighOps)
	}
}

func TestCustomConfig(t *testing.T) {
	i, err := New(tape.Config{
		Length:      3,
		CellMin:     -2,
		CellMax:     2,
		WrapCells:   true,
		WrapPointer: true,
	}, Options{
		Stdin:  strings.NewReader(""),
		Stdout: new(strings.Builder),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := i.Run(t.Context(), "+{3}>-{3}>>"); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprint(i.Tape().Snapshot().Cells); str != "[-2 2 0]" {
		t.Fatalf("got %s", str)
	}
	if i.Tape().Pointer() != 0 {
		t.Fatalf("got %d", i.Tape().Pointer())
	}

	if _, err := New(tape.Config{Length: 0}, Options{}); err == nil {
		t.Fatal("should error")
	}
}
