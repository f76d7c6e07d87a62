package unsupported

//quote:derive
type Pipe struct {
	Name  string
	Queue chan int
}
