package quote

// Call renders qualifier.name(a0,a1,...) inside an undelimited group, or
// name(...) when qualifier is empty. Generated ToTokens methods end with a
// single Call to the type's constructor.
func Call(qualifier, name string, args ...ToTokens) ToTokens {
	return Func(func(tokens *Stream) {
		tokens.AppendGroup(DelimNone, func(call *Stream) {
			if qualifier != "" {
				call.AppendIdent(qualifier)
				call.AppendPunct(".")
			}

			call.AppendIdent(name)
			call.AppendGroup(DelimParen, func(inner *Stream) {
				for i, arg := range args {
					if i > 0 {
						inner.AppendPunct(",")
					}

					arg.ToTokens(inner)
				}
			})
		})
	})
}
