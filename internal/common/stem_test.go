package common_test

import (
	"fmt"

	"quote-generator/internal/common"
)

func ExampleStem() {
	st := common.NewStem("field", nil)
	fmt.Println(st.Next(), st.Next(), st.Next())

	st = common.NewStem("map", map[string]struct{}{"map": {}, "map1": {}})
	fmt.Println(st.Claim(), st.Claim())

	st = common.NewStem("basic", nil)
	fmt.Println(st.Claim(), st.Claim())

	// Output:
	// field1 field2 field3
	// map2 map3
	// basic basic1
}
