package bplang

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

func (s *Source) Tokenizer() *Tokenizer {
	t := NewTokenizer(strings.NewReader(s.Content))
	t.src = s
	t.currPos.Source = s
	return t
}

func (s *Source) Tokenize() ([]Token, error) {
	return drain(s.Tokenizer())
}
