package quote

import (
	"fmt"
	"go/format"
	"strings"
)

// ToTokens is implemented by values that can append an expression
// rebuilding themselves to a Stream.
type ToTokens interface {
	ToTokens(tokens *Stream)
}

// Func adapts an ordinary function to ToTokens.
type Func func(tokens *Stream)

// ToTokens calls f(tokens).
func (f Func) ToTokens(tokens *Stream) {
	f(tokens)
}

// Stream is an ordered sequence of tokens. The zero value is an empty stream.
type Stream []Token

// Tokenize returns the tokens appended by v.
func Tokenize(v ToTokens) Stream {
	var s Stream
	v.ToTokens(&s)

	return s
}

// Render returns the canonical text of the expression appended by v.
func Render(v ToTokens) string {
	s := Tokenize(v)

	return s.String()
}

// AppendIdent appends an identifier.
func (s *Stream) AppendIdent(name string) {
	*s = append(*s, Ident(name))
}

// AppendLiteral appends a literal.
func (s *Stream) AppendLiteral(text string) {
	*s = append(*s, Literal(text))
}

// AppendPunct appends a punctuation token.
func (s *Stream) AppendPunct(text string) {
	*s = append(*s, Punct(text))
}

// AppendToken appends t as is.
func (s *Stream) AppendToken(t Token) {
	*s = append(*s, t)
}

// AppendGroup appends a group delimited by d whose contents are produced by fill.
func (s *Stream) AppendGroup(d Delimiter, fill func(inner *Stream)) {
	var inner Stream
	if fill != nil {
		fill(&inner)
	}

	*s = append(*s, Group(d, inner))
}

// Append appends the expressions of every item in order.
func (s *Stream) Append(items ...ToTokens) {
	for _, item := range items {
		item.ToTokens(s)
	}
}

// Len returns the number of top-level tokens.
func (s Stream) Len() int {
	return len(s)
}

// IsNil reports whether the stream is exactly the identifier nil.
func (s Stream) IsNil() bool {
	return len(s) == 1 && s[0].Kind == KindIdent && s[0].Text == "nil"
}

// String renders the stream with a single space between adjacent words and
// no other whitespace.
func (s Stream) String() string {
	var w writer
	w.stream(s)

	return w.sb.String()
}

// Format renders the stream and runs the result through gofmt.
func (s Stream) Format() (string, error) {
	out, err := format.Source([]byte(s.String()))
	if err != nil {
		return "", fmt.Errorf("formatting expression: %w", err)
	}

	return string(out), nil
}

type writer struct {
	sb       strings.Builder
	lastWord bool
}

func (w *writer) stream(s Stream) {
	for _, t := range s {
		w.token(t)
	}
}

func (w *writer) token(t Token) {
	switch t.Kind {
	case KindGroup:
		if open := t.Delim.open(); open != "" {
			w.punct(open)
		}

		w.stream(t.Inner)

		if closing := t.Delim.close(); closing != "" {
			w.punct(closing)
		}
	case KindPunct:
		w.punct(t.Text)
	default:
		w.word(t.Text)
	}
}

func (w *writer) word(text string) {
	if w.lastWord {
		w.sb.WriteByte(' ')
	}

	w.sb.WriteString(text)
	w.lastWord = true
}

func (w *writer) punct(text string) {
	w.sb.WriteString(text)
	w.lastWord = false
}
