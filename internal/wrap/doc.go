// Package wrap turns field types into Go expressions that tokenize field
// values through the quote runtime package.
//
// The mapping is decided by the shape of the type alone:
//   - types with their own ToTokens method, and types derived in the same
//     run, are used as they are
//   - quote.Option and quote.Result use quote.OptionOf and quote.ResultOf
//   - basic types use the matching quote helper; named basic types are
//     additionally wrapped in quote.Conv
//   - pointers, slices, arrays, maps and sets recurse into their elements
//     through func(T) quote.ToTokens closures
//
// Everything else is reported as an *UnsupportedTypeError.
package wrap
