package sequential_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exascience/pareduce"
	"github.com/exascience/pareduce/randx"
	"github.com/exascience/pareduce/sequential"
)

func ExampleReduce() {
	xs := []int{3, 7, 2, 9, 4, 1}

	sum, _ := sequential.Reduce(xs, pareduce.Sum[int]{})
	fmt.Println(sum)

	max, _ := sequential.Reduce(xs, pareduce.Max[int]{})
	fmt.Println(max)

	// Output:
	// 26
	// 9
}

func TestWorkersOrder(t *testing.T) {
	var order []int
	sequential.Workers(5, func(worker int) {
		order = append(order, worker)
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
	assert.Panics(t, func() { sequential.Workers(0, func(int) {}) })
}

func TestPartitionedReduce(t *testing.T) {
	xs := randx.Array(777, -100, 100, randx.NewSysRand(11))
	sum, _ := sequential.Reduce(xs, pareduce.Sum[int]{})
	max, _ := sequential.Reduce(xs, pareduce.Max[int]{})
	for workers := 1; workers <= 800; workers++ {
		got, _ := sequential.PartitionedReduce(xs, workers, pareduce.Sum[int]{})
		assert.Equal(t, sum, got, "workers %v", workers)
		got, _ = sequential.PartitionedReduce(xs, workers, pareduce.Max[int]{})
		assert.Equal(t, max, got, "workers %v", workers)
	}
}

func TestReducePanics(t *testing.T) {
	assert.PanicsWithValue(t,
		pareduce.InvariantViolation{Msg: "reduction over an empty array"},
		func() { sequential.Reduce([]int32{}, pareduce.Max[int32]{}) })
	assert.PanicsWithValue(t,
		pareduce.InvariantViolation{Msg: "invalid number of workers: -1"},
		func() { sequential.PartitionedReduce([]int{1}, -1, pareduce.Max[int]{}) })
}
