package compose_test

import (
	"fmt"
	"strings"

	"github.com/everxy/redux/compose"
)

func ExampleCompose() {
	add := func(n int) func(int) int {
		return func(v int) int {
			return v + n
		}
	}
	// add(1) runs first, add(3) last.
	fn := compose.Compose(add(3), add(2), add(1))
	fmt.Println(fn(0))
	// Output: 6
}

func ExampleFrom() {
	// The rightmost stage receives every argument, the others one value each.
	fn := compose.From(func(parts ...string) string {
		return strings.Join(parts, " ")
	}, strings.ToUpper)
	fmt.Println(fn("hello", "world"))
	// Output: HELLO WORLD
}

func ExampleAny() {
	inc := func(n int) int { return n + 1 }
	double := func(n int) int { return n * 2 }

	// Values that are not functions are skipped.
	fn := compose.Any(double, nil, inc, 42).(func(int) int)
	fmt.Println(fn(3))
	// Output: 8
}
