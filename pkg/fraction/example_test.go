package fraction_test

import (
	"fmt"

	"github.com/matzehuels/balustrade/pkg/fraction"
)

func ExampleParse() {
	for _, s := range []string{"1½", "1 1/2", "¾", "2,125", "1 1½"} {
		v, _ := fraction.Parse(s)
		fmt.Println(v)
	}
	// Output:
	// 1.5
	// 1.5
	// 0.75
	// 2.125
	// 2.5
}

func ExampleFormat() {
	fmt.Println(fraction.Format(1.5))
	fmt.Println(fraction.Format(0.75))
	fmt.Println(fraction.Format(3.1875))
	fmt.Println(fraction.Format(4))
	// Output:
	// 1 ½
	// ¾
	// 3 3/16
	// 4
}
