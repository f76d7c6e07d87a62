package importclash

var quote = "taken"

//quote:derive
type Tag struct {
	Name string
}
