package quote

import (
	"cmp"
	"slices"
)

// Slice renders typ{e0,e1,...}. A nil slice renders typ(nil) so that the
// distinction between nil and empty survives the round trip.
func Slice[E any](typ string, s []E, elem func(E) ToTokens) ToTokens {
	if s == nil {
		return typedNil(typ)
	}

	return Array(typ, s, elem)
}

// Array renders typ{e0,e1,...}. Callers pass arrays as a[:].
func Array[E any](typ string, s []E, elem func(E) ToTokens) ToTokens {
	return Func(func(tokens *Stream) {
		appendType(tokens, typ)
		tokens.AppendGroup(DelimBrace, func(inner *Stream) {
			for i, e := range s {
				if i > 0 {
					inner.AppendPunct(",")
				}

				elem(e).ToTokens(inner)
			}
		})
	})
}

type entry struct {
	key, val Stream
	keyText  string
	valText  string
}

// Map renders typ{k0:v0,k1:v1,...} with entries ordered by the rendered key.
// A nil map renders typ(nil).
func Map[K comparable, V any](typ string, m map[K]V, key func(K) ToTokens, val func(V) ToTokens) ToTokens {
	if m == nil {
		return typedNil(typ)
	}

	entries := make([]entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, newEntry(key(k), val(v)))
	}

	return mapLiteral(typ, entries)
}

// Set renders a map[K]struct{} as typ{k0:{},k1:{},...}, ordered by the
// rendered key. A nil set renders typ(nil).
func Set[K comparable](typ string, m map[K]struct{}, key func(K) ToTokens) ToTokens {
	if m == nil {
		return typedNil(typ)
	}

	empty := Func(func(tokens *Stream) {
		tokens.AppendGroup(DelimBrace, nil)
	})

	entries := make([]entry, 0, len(m))
	for k := range m {
		entries = append(entries, newEntry(key(k), empty))
	}

	return mapLiteral(typ, entries)
}

func newEntry(k, v ToTokens) entry {
	e := entry{key: Tokenize(k), val: Tokenize(v)}
	e.keyText = e.key.String()
	e.valText = e.val.String()

	return e
}

func mapLiteral(typ string, entries []entry) ToTokens {
	// Values break ties between keys that render alike, such as NaN.
	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(a.keyText, b.keyText); c != 0 {
			return c
		}

		return cmp.Compare(a.valText, b.valText)
	})

	return Func(func(tokens *Stream) {
		appendType(tokens, typ)
		tokens.AppendGroup(DelimBrace, func(inner *Stream) {
			for i, e := range entries {
				if i > 0 {
					inner.AppendPunct(",")
				}

				*inner = append(*inner, e.key...)
				inner.AppendPunct(":")
				*inner = append(*inner, e.val...)
			}
		})
	})
}

// Ptr renders a pointer as an optional value: nil for a nil pointer and
// quote.Ref(<elem>) otherwise. When the pointee itself renders as a bare nil
// the element type is spelled out, as in quote.Ref[*int64](nil).
//
// The pointee is rendered by value. Two pointers to the same value become two
// independent quote.Ref calls, and a value that reaches itself through
// pointers never finishes rendering. Such values must be broken up before
// they are tokenized.
func Ptr[E any](elemType string, p *E, elem func(E) ToTokens) ToTokens {
	if p == nil {
		return Func(func(tokens *Stream) {
			tokens.AppendIdent("nil")
		})
	}

	return qualifiedCall("Ref", elemType, elem(*p))
}

// Ref returns a pointer to a copy of v.
func Ref[T any](v T) *T {
	return &v
}

func typedNil(typ string) ToTokens {
	return Func(func(tokens *Stream) {
		appendType(tokens, typ)
		tokens.AppendGroup(DelimParen, func(inner *Stream) {
			inner.AppendIdent("nil")
		})
	})
}

// qualifiedCall renders quote.fn(arg), adding [typeArg] when arg is a bare
// nil that would otherwise leave the type parameter uninferable.
func qualifiedCall(fn, typeArg string, arg ToTokens) ToTokens {
	return Func(func(tokens *Stream) {
		inner := Tokenize(arg)

		tokens.AppendIdent("quote")
		tokens.AppendPunct(".")
		tokens.AppendIdent(fn)

		if inner.IsNil() {
			tokens.AppendGroup(DelimBracket, func(args *Stream) {
				appendType(args, typeArg)
			})
		}

		tokens.AppendGroup(DelimParen, func(args *Stream) {
			*args = append(*args, inner...)
		})
	})
}
