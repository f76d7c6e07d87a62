package crossb

import "quote-generator/internal/gen/testdata/crossa"

//quote:derive
type Outer struct {
	In   crossa.Inner
	Many []crossa.Inner
}
