package methodclash

import "quote-generator/quote"

//quote:derive
type Label struct {
	Text string
}

func (l Label) ToTokens(tokens *quote.Stream) {
	tokens.Append(quote.String(l.Text))
}
