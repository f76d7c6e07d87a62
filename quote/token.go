package quote

import (
	"unicode"
	"unicode/utf8"
)

// Kind is the lexical class of a Token.
type Kind int

const (
	KindIdent   Kind = iota // identifiers and keywords
	KindLiteral             // numbers, strings and runes
	KindPunct               // operators and separators
	KindGroup               // a delimited sub-stream
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindIdent:
		return "ident"
	case KindLiteral:
		return "literal"
	case KindPunct:
		return "punct"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Delimiter encloses the contents of a group.
type Delimiter int

const (
	// DelimNone groups tokens without printing delimiters. The generated
	// constructor call is wrapped in such a group so that it stays a single
	// tree when interpolated into a larger expression.
	DelimNone Delimiter = iota
	DelimParen
	DelimBrace
	DelimBracket
)

func (d Delimiter) open() string {
	switch d {
	case DelimParen:
		return "("
	case DelimBrace:
		return "{"
	case DelimBracket:
		return "["
	default:
		return ""
	}
}

func (d Delimiter) close() string {
	switch d {
	case DelimParen:
		return ")"
	case DelimBrace:
		return "}"
	case DelimBracket:
		return "]"
	default:
		return ""
	}
}

// Token is a single lexical element. Groups carry their contents in Inner.
type Token struct {
	Kind  Kind
	Text  string
	Delim Delimiter
	Inner Stream
}

// Ident returns an identifier token.
func Ident(name string) Token {
	return Token{Kind: KindIdent, Text: name}
}

// Literal returns a literal token; text must already be valid Go syntax.
func Literal(text string) Token {
	return Token{Kind: KindLiteral, Text: text}
}

// Punct returns a punctuation token.
func Punct(text string) Token {
	return Token{Kind: KindPunct, Text: text}
}

// Group returns a group token enclosing inner with d.
func Group(d Delimiter, inner Stream) Token {
	return Token{Kind: KindGroup, Delim: d, Inner: inner}
}

// appendType appends the tokens of a type spelling such as "[]int64",
// "map[string]struct{}" or "pkg.Name[int]".
func appendType(tokens *Stream, typ string) {
	for i := 0; i < len(typ); {
		r, size := utf8.DecodeRuneInString(typ[i:])

		switch {
		case r == ' ':
			i += size
		case unicode.IsLetter(r) || r == '_':
			j := i + size
			for j < len(typ) {
				next, nsize := utf8.DecodeRuneInString(typ[j:])
				if !unicode.IsLetter(next) && !unicode.IsDigit(next) && next != '_' {
					break
				}
				j += nsize
			}
			tokens.AppendIdent(typ[i:j])
			i = j
		case unicode.IsDigit(r):
			j := i + size
			for j < len(typ) && typ[j] >= '0' && typ[j] <= '9' {
				j++
			}
			tokens.AppendLiteral(typ[i:j])
			i = j
		default:
			tokens.AppendPunct(string(r))
			i += size
		}
	}
}
