package bpvm

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/reusee/bp/faults"
)

// readWord returns the next whitespace delimited word of input.
func (i *Interpreter) readWord() (string, error) {
	var sb strings.Builder
	for {
		r, _, err := i.stdin.ReadRune()
		if errors.Is(err, io.EOF) {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", faults.New(faults.KindIO, "unexpected end of input")
		}
		if err != nil {
			return "", faults.Wrap(faults.KindIO, err, "read input")
		}
		if unicode.IsSpace(r) {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			continue
		}
		sb.WriteRune(r)
	}
}

func (i *Interpreter) input(charMode bool) error {
	if err := i.stdout.Flush(); err != nil {
		return faults.Wrap(faults.KindIO, err, "write output")
	}
	word, err := i.readWord()
	if err != nil {
		return err
	}
	if charMode {
		r := []rune(word)[0]
		return i.tape.Write(int64(r))
	}
	n, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		return faults.New(faults.KindIO, "expected an integer input but found %s", word)
	}
	return i.tape.Write(n)
}

func (i *Interpreter) output(charMode bool) error {
	value := i.tape.Read()
	var err error
	if charMode {
		c := value % 255
		if c < 0 {
			c += 255
		}
		_, err = i.stdout.WriteRune(rune(c))
	} else {
		_, err = i.stdout.WriteString(strconv.FormatInt(value, 10))
	}
	if err != nil {
		return faults.Wrap(faults.KindIO, err, "write output")
	}
	return nil
}
