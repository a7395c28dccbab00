package pairwise_test

import (
	"fmt"

	"github.com/katalvlaran/distmat/pairwise"
)

// ExampleBuild constructs a Manhattan distance store from three
// feature rows and reads one pair back out.
func ExampleBuild() {
	labels := []string{"s1", "s2", "s3"}
	rows := [][]float64{
		{0, 0},
		{1, 2},
		{4, 0},
	}

	d, err := pairwise.Build(labels, rows, pairwise.Manhattan{})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	v, _ := d.Distance("s2", "s3")
	fmt.Println(d.Labels())
	fmt.Println(v)
	// Output:
	// [s1 s2 s3]
	// 5
}

// ExampleBuild_workers shows the worker-pool strategy; the result is
// identical to a sequential build.
func ExampleBuild_workers() {
	labels := []string{"p", "q", "r", "s"}
	rows := [][]float64{{0}, {1}, {3}, {6}}

	d, err := pairwise.Build(labels, rows, pairwise.Euclidean{},
		pairwise.WithWorkers(4))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(d.Values())
	// Output:
	// [1 3 6 2 5 3]
}
