package ctorclash

//quote:derive
type Point struct {
	X, Y int
}

func NewPoint() Point { return Point{} }
