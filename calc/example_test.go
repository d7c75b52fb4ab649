package calc_test

import (
	"fmt"

	"github.com/Kirill20202/matrix-multiplication/calc"
)

func ExampleEval() {
	out, _ := calc.Eval(calc.OpMultiply, "[[1,2],[3,4]]", "[[5,6],[7,8]]")
	fmt.Println(out)
	// Output:
	// 19 22
	// 43 50
	//
	// [
	//   [19, 22],
	//   [43, 50]
	// ]
}

func ExampleEval_scalar() {
	out, _ := calc.Eval(calc.OpMultiply, "1 2\n3 4", "10")
	fmt.Println(out)
	// Output:
	// 10 20
	// 30 40
	//
	// [
	//   [10, 20],
	//   [30, 40]
	// ]
}
