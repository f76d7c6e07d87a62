package wrapcases

import (
	"time"

	"quote-generator/quote"
)

type Celsius float64

type Bytes []uint8

type Grid [2][2]int8

type Lookup map[string]int

type IntPtr *int

type Self struct{ N int }

func (s Self) ToTokens(tokens *quote.Stream) {
	quote.Int(s.N).ToTokens(tokens)
}

type PtrSelf struct{ N int }

func (s *PtrSelf) ToTokens(tokens *quote.Stream) {
	quote.Int(s.N).ToTokens(tokens)
}

type Plain struct{ N int }

// Outer only has the method promoted from Self.
type Outer struct{ Self }

type Fields struct {
	Int     int
	Str     string
	Temp    Celsius
	Raw     Bytes
	Grid    Grid
	Lookup  Lookup
	Ptr     *int
	PtrPtr  **string
	Named   IntPtr
	Self    Self
	PtrSelf PtrSelf
	Opt     quote.Option[[]string]
	Res     quote.Result[int32, Celsius]
	Set     map[string]struct{}
	Nested  map[string][]*Self
	Dur     time.Duration
	Months  []time.Month
	Ratio   complex64
	Flag    bool

	When  time.Time
	Ch    chan int
	Fn    func()
	Any   any
	Plain Plain
	Outer Outer
	Anon  struct{ X int }
	Deep  map[string][]chan int
}
