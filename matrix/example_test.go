package matrix_test

import (
	"fmt"

	"github.com/Kirill20202/matrix-multiplication/matrix"
)

func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})

	c, _ := matrix.Mul(a, b)
	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}

func ExampleDet() {
	m, _ := matrix.NewDenseFromRows([][]float64{{4, 7}, {2, 6}})

	d, _ := matrix.Det(m)
	fmt.Println(d)
	// Output: 10
}

func ExampleRank() {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	r, _ := matrix.Rank(m)
	fmt.Println(r)
	// Output: 2
}
