package quote

import (
	"math"
	"strconv"
)

// conversion renders typ(text), the Go spelling of a typed constant.
func conversion(typ string, text string) ToTokens {
	return Func(func(tokens *Stream) {
		tokens.AppendIdent(typ)
		tokens.AppendGroup(DelimParen, func(inner *Stream) {
			inner.AppendLiteral(text)
		})
	})
}

// Bool renders true or false.
func Bool(v bool) ToTokens {
	return Func(func(tokens *Stream) {
		tokens.AppendIdent(strconv.FormatBool(v))
	})
}

// String renders a double-quoted string literal. Invalid UTF-8 is kept byte
// for byte through \x escapes.
func String(v string) ToTokens {
	return Func(func(tokens *Stream) {
		tokens.AppendLiteral(strconv.Quote(v))
	})
}

func Int(v int) ToTokens     { return conversion("int", strconv.FormatInt(int64(v), 10)) }
func Int8(v int8) ToTokens   { return conversion("int8", strconv.FormatInt(int64(v), 10)) }
func Int16(v int16) ToTokens { return conversion("int16", strconv.FormatInt(int64(v), 10)) }
func Int32(v int32) ToTokens { return conversion("int32", strconv.FormatInt(int64(v), 10)) }
func Int64(v int64) ToTokens { return conversion("int64", strconv.FormatInt(v, 10)) }

func Uint(v uint) ToTokens       { return conversion("uint", strconv.FormatUint(uint64(v), 10)) }
func Uint8(v uint8) ToTokens     { return conversion("uint8", strconv.FormatUint(uint64(v), 10)) }
func Uint16(v uint16) ToTokens   { return conversion("uint16", strconv.FormatUint(uint64(v), 10)) }
func Uint32(v uint32) ToTokens   { return conversion("uint32", strconv.FormatUint(uint64(v), 10)) }
func Uint64(v uint64) ToTokens   { return conversion("uint64", strconv.FormatUint(v, 10)) }
func Uintptr(v uintptr) ToTokens { return conversion("uintptr", strconv.FormatUint(uint64(v), 10)) }

// Float32 renders float32(v). See Float64 for special values.
func Float32(v float32) ToTokens {
	return float("float32", float64(v), 32)
}

// Float64 renders float64(v). NaN, infinities and negative zero have no
// constant spelling and are rendered through the math package.
func Float64(v float64) ToTokens {
	return float("float64", v, 64)
}

func float(typ string, v float64, bits int) ToTokens {
	return Func(func(tokens *Stream) {
		tokens.AppendIdent(typ)
		tokens.AppendGroup(DelimParen, func(inner *Stream) {
			appendFloat(inner, v, bits)
		})
	})
}

func appendFloat(tokens *Stream, v float64, bits int) {
	switch {
	case math.IsNaN(v):
		appendMathCall(tokens, "NaN")
	case math.IsInf(v, 1):
		appendMathCall(tokens, "Inf", "1")
	case math.IsInf(v, -1):
		appendMathCall(tokens, "Inf", "-1")
	case v == 0 && math.Signbit(v):
		appendMathCall(tokens, "Copysign", "0", "-1")
	default:
		tokens.AppendLiteral(strconv.FormatFloat(v, 'g', -1, bits))
	}
}

func appendMathCall(tokens *Stream, fn string, args ...string) {
	tokens.AppendIdent("math")
	tokens.AppendPunct(".")
	tokens.AppendIdent(fn)
	tokens.AppendGroup(DelimParen, func(inner *Stream) {
		for i, arg := range args {
			if i > 0 {
				inner.AppendPunct(",")
			}

			inner.AppendLiteral(arg)
		}
	})
}

// Complex64 renders complex(float32(re),float32(im)).
func Complex64(v complex64) ToTokens {
	return complexLit("float32", float64(real(v)), float64(imag(v)), 32)
}

// Complex128 renders complex(float64(re),float64(im)).
func Complex128(v complex128) ToTokens {
	return complexLit("float64", real(v), imag(v), 64)
}

func complexLit(typ string, re, im float64, bits int) ToTokens {
	return Func(func(tokens *Stream) {
		tokens.AppendIdent("complex")
		tokens.AppendGroup(DelimParen, func(inner *Stream) {
			float(typ, re, bits).ToTokens(inner)
			inner.AppendPunct(",")
			float(typ, im, bits).ToTokens(inner)
		})
	})
}

// Conv renders typ(inner). It re-types the literal of a named scalar type,
// for example Conv("Celsius", Float64(21.5)) renders Celsius(float64(21.5)).
func Conv(typ string, inner ToTokens) ToTokens {
	return Func(func(tokens *Stream) {
		appendType(tokens, typ)
		tokens.AppendGroup(DelimParen, func(args *Stream) {
			inner.ToTokens(args)
		})
	})
}
