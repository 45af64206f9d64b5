package bplang

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/reusee/bp/faults"
)

type Tokenizer struct {
	source  *bufio.Reader
	src     *Source
	current *Token

	currPos Pos
	prevPos Pos
}

func NewTokenizer(source io.Reader) *Tokenizer {
	return &Tokenizer{
		source: bufio.NewReader(source),
		currPos: Pos{
			Line:   1,
			Column: 1,
		},
	}
}

func Tokenize(program string) ([]Token, error) {
	return drain(NewTokenizer(strings.NewReader(program)))
}

func drain(t *Tokenizer) ([]Token, error) {
	var tokens []Token
	for {
		token, err := t.Current()
		if err != nil {
			return nil, err
		}
		if token.Kind == OpEOF {
			return tokens, nil
		}
		tokens = append(tokens, *token)
		t.Consume()
	}
}

func (t *Tokenizer) readRune() (rune, error) {
	r, size, err := t.source.ReadRune()
	if err != nil {
		return 0, err
	}

	t.prevPos = t.currPos
	t.currPos.Offset += size
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, nil
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.parseNext()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	t.current = nil
}

func (t *Tokenizer) parseNext() (*Token, error) {
	for {
		startPos := t.currPos

		r, err := t.readRune()
		if err == io.EOF {
			return &Token{Kind: OpEOF, Offset: startPos.Offset}, nil
		}
		if err != nil {
			return nil, faults.Wrap(faults.KindIO, err, "read program")
		}

		if kind, ok := opChars[r]; ok {
			return &Token{
				Kind:   kind,
				Text:   string(r),
				Offset: startPos.Offset,
			}, nil
		}

		if r == '{' {
			token, err := t.parseOperand(startPos)
			if err != nil {
				return nil, err
			}
			if token == nil {
				// {} carries no operand
				continue
			}
			return token, nil
		}

		// anything else is commentary
	}
}

func (t *Tokenizer) parseOperand(startPos Pos) (*Token, error) {
	var buf strings.Builder
	for {
		r, err := t.readRune()
		if err == io.EOF {
			return nil, WithPos(
				faults.New(faults.KindParse,
					"unterminated value {%s at position %d", buf.String(), startPos.Offset,
				).At(startPos.Offset),
				startPos,
			)
		}
		if err != nil {
			return nil, faults.Wrap(faults.KindIO, err, "read program")
		}
		if r == '}' {
			break
		}
		buf.WriteRune(r)
	}

	content := buf.String()
	if content == "" {
		return nil, nil
	}
	token := &Token{
		Kind:   OpValue,
		Text:   "{" + content + "}",
		Offset: startPos.Offset,
	}

	if utf8.RuneCountInString(content) == 3 &&
		content[0] == '\'' &&
		content[len(content)-1] == '\'' {
		r, _ := utf8.DecodeRuneInString(content[1:])
		token.Value = int64(r)
		token.Quoted = true
		return token, nil
	}

	n, err := strconv.ParseInt(content, 10, 64)
	if err != nil {
		return nil, WithPos(
			faults.New(faults.KindParse,
				"expected a character literal {'a'} or a number {123} but found %s instead at position %d",
				content, startPos.Offset,
			).At(startPos.Offset),
			startPos,
		)
	}
	token.Value = n
	return token, nil
}
