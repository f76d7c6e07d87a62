package crossa

//quote:derive
type Inner struct {
	Code string
}

// Plain is only derived when a config entry selects it.
type Plain struct {
	N int
}
