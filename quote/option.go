package quote

import "fmt"

// Option holds either a value of type T or nothing. The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether there is one.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// OptionOf renders quote.Some(<elem>) or quote.None[typ]().
func OptionOf[T any](typ string, o Option[T], elem func(T) ToTokens) ToTokens {
	v, ok := o.Get()
	if !ok {
		return Func(func(tokens *Stream) {
			tokens.AppendIdent("quote")
			tokens.AppendPunct(".")
			tokens.AppendIdent("None")
			tokens.AppendGroup(DelimBracket, func(args *Stream) {
				appendType(args, typ)
			})
			tokens.AppendGroup(DelimParen, nil)
		})
	}

	return qualifiedCall("Some", typ, elem(v))
}

// Result holds either a success value of type T or a failure value of type E.
// The zero value is Ok with the zero T.
type Result[T, E any] struct {
	value  T
	err    E
	failed bool
}

// Ok returns a successful Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// Err returns a failed Result.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e, failed: true}
}

// Get returns the success value and whether r is Ok.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, !r.failed
}

// GetErr returns the failure value and whether r is Err.
func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, r.failed
}

// IsOk reports whether r holds a success value.
func (r Result[T, E]) IsOk() bool {
	return !r.failed
}

func (r Result[T, E]) String() string {
	if r.failed {
		return fmt.Sprintf("Err(%v)", r.err)
	}

	return fmt.Sprintf("Ok(%v)", r.value)
}

// ResultOf renders quote.Ok[okType,errType](<ok>) or
// quote.Err[okType,errType](<err>). Both type arguments are always spelled
// since only one of them can be inferred from the argument.
func ResultOf[T, E any](okType, errType string, r Result[T, E], ok func(T) ToTokens, err func(E) ToTokens) ToTokens {
	fn, arg := "Ok", ToTokens(nil)
	if v, isOk := r.Get(); isOk {
		arg = ok(v)
	} else {
		e, _ := r.GetErr()
		fn, arg = "Err", err(e)
	}

	return Func(func(tokens *Stream) {
		tokens.AppendIdent("quote")
		tokens.AppendPunct(".")
		tokens.AppendIdent(fn)
		tokens.AppendGroup(DelimBracket, func(args *Stream) {
			appendType(args, okType)
			args.AppendPunct(",")
			appendType(args, errType)
		})
		tokens.AppendGroup(DelimParen, func(args *Stream) {
			arg.ToTokens(args)
		})
	})
}
