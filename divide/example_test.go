package divide_test

import (
	"fmt"

	"github.com/katalvlaran/knightour/board"
	"github.com/katalvlaran/knightour/divide"
)

func ExampleSolve() {
	res, err := divide.Solve(board.NewSize(48, 48))
	if err != nil {
		fmt.Println(err)
		return
	}

	b := res.Graph.ToBoard()
	fmt.Println(b.Visited())
	fmt.Println(len(b.Unvisited()))
	// Output:
	// 2304
	// 0
}

func ExamplePartition() {
	for _, sec := range divide.Partition(board.NewSize(16, 8)) {
		fmt.Println(sec.Offset, sec.Size, sec.Dir)
	}
	// Output:
	// A-1 8x8 vertical
	// I-1 4x8 horizontal
	// M-1 4x8 horizontal
}
