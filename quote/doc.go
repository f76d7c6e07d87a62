// Package quote is the runtime half of quote-generator.
//
// It defines a small token model for Go expressions and the helpers that
// generated ToTokens methods call to re-express field values as literal
// construction expressions.
//
// Key types:
//   - Stream: an ordered sequence of tokens (identifiers, literals,
//     punctuation and delimited groups)
//   - ToTokens: the capability "append an expression that rebuilds me"
//   - Option, Result: value containers understood by the generator
//
// For a type declared as
//
//	//quote:derive
//	type Pair struct {
//		int32
//		int64
//	}
//
// the generator writes NewPair and a ToTokens method, so that
//
//	quote.Render(Pair{1, -1})
//
// yields the text
//
//	NewPair(int32(1),int64(-1))
//
// Code that evaluates emitted expressions must import this package under the
// name quote: pointers and optional values are rebuilt with quote.Ref,
// quote.Some, quote.None, quote.Ok and quote.Err.
package quote
