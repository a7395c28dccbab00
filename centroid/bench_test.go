package centroid_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/distmat/centroid"
	"github.com/katalvlaran/distmat/dist"
)

// benchFixture builds an n-item store of collinear points 0..n−1 and a
// round-robin assignment into groups groups.
func benchFixture(b *testing.B, n, groups int) (*dist.Dist, map[string]string) {
	b.Helper()
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("p%04d", i)
	}
	values := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			values = append(values, float64(j-i))
		}
	}
	d, err := dist.New(labels, values)
	if err != nil {
		b.Fatalf("benchFixture: %v", err)
	}
	assignment := make(map[string]string, n)
	for i, l := range labels {
		assignment[l] = fmt.Sprintf("g%d", i%groups)
	}

	return d, assignment
}

// BenchmarkToCentroids measures 300 items in 5 groups.
func BenchmarkToCentroids(b *testing.B) {
	d, assignment := benchFixture(b, 300, 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := centroid.ToCentroids(d, assignment); err != nil {
			b.Fatalf("ToCentroids failed: %v", err)
		}
	}
}

// BenchmarkAllCentroids measures the full 5×5 centroid matrix of the
// same fixture.
func BenchmarkAllCentroids(b *testing.B) {
	d, assignment := benchFixture(b, 300, 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := centroid.AllCentroids(d, assignment); err != nil {
			b.Fatalf("AllCentroids failed: %v", err)
		}
	}
}
