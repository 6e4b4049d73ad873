package digitize_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/unkn0wn-root/digitize"
)

func ExampleToDigits() {
	fmt.Println(digitize.ToDigits(uint8(12)))
	fmt.Println(digitize.ToDigits(-56))
	fmt.Println(len(digitize.ToDigits(0)))
	// Output:
	// [1 2]
	// [-5 -6]
	// 0
}

func ExampleFromDigits() {
	fmt.Println(digitize.FromDigits([]int8{1, 2, 3, 4, 5}))
	fmt.Println(digitize.FromDigits([]int8{-1, -2, -3, -4, -5}))
	// Output:
	// 12345
	// -12345
}

func ExampleFromDigitsAs() {
	d := digitize.ToDigits(uint64(math.MaxUint64))
	fmt.Println(digitize.FromDigitsAs[uint64](d))
	// Output: 18446744073709551615
}

func ExampleFromDigitsChecked() {
	_, err := digitize.FromDigitsChecked[int8]([]int8{1, 2, 8})
	fmt.Println(errors.Is(err, digitize.ErrOverflow))
	fmt.Println(err)
	// Output:
	// true
	// digitize: overflow at index 2 (digit 8)
}
