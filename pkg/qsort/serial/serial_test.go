package serial

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ib-77/qsort3/pkg/qsort/pivot"
)

func intLess(a, b int) bool { return a < b }

func TestSortScenarios(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		in, want []int
	}{
		{"mixed", []int{5, 3, 1, 2, 5, 6, 7, 8, 12, 4, 2, 3, 5, 1, 3, 5, 0},
			[]int{0, 1, 1, 2, 2, 3, 3, 3, 4, 5, 5, 5, 5, 6, 7, 8, 12}},
		{"empty", []int{}, []int{}},
		{"singleton", []int{7}, []int{7}},
		{"reversed", []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"three values", []int{1, 2, 0, 1, 0, 0, 2, 2, 1}, []int{0, 0, 0, 1, 1, 1, 2, 2, 2}},
		{"all equal", []int{4, 4, 4, 4}, []int{4, 4, 4, 4}},
		{"already sorted", []int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}},
	}

	for _, c := range cases {
		for _, pick := range []pivot.Picker{pivot.NewRandom(), pivot.Midpoint()} {
			xs := slices.Clone(c.in)
			Sort(xs, pick, intLess, 0)
			if !slices.Equal(xs, c.want) {
				t.Fatalf("%s: got %v, want %v", c.name, xs, c.want)
			}
		}
	}
}

func TestSortRandomAgainstReference(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(17, 29))
	for _, n := range []int{10, 100, 1000} {
		xs := make([]int, n)
		for i := range xs {
			xs[i] = r.IntN(n / 2)
		}
		want := slices.Clone(xs)
		slices.Sort(want)

		Sort(xs, pivot.NewRandomSeeded(1, 2), intLess, 0)
		if !slices.Equal(xs, want) {
			t.Fatalf("n=%d: got %v, want %v", n, xs, want)
		}
	}
}

func TestSortWithCustomOrdering(t *testing.T) {
	t.Parallel()
	xs := []int{3, 1, 4, 1, 5, 9, 2, 6}
	Sort(xs, pivot.NewRandom(), func(a, b int) bool { return a > b }, 0)
	want := []int{9, 6, 5, 4, 3, 2, 1, 1}
	if !slices.Equal(xs, want) {
		t.Fatalf("descending sort: got %v, want %v", xs, want)
	}
}

func TestSortWithFallbackEnabled(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(5, 13))
	xs := make([]int, 500)
	for i := range xs {
		xs[i] = r.IntN(100)
	}
	want := slices.Clone(xs)
	slices.Sort(want)

	Sort(xs, pivot.Midpoint(), intLess, 16)
	if !slices.Equal(xs, want) {
		t.Fatalf("fallback path: got %v, want %v", xs, want)
	}
}

func TestSortAdversarialAlreadySortedMidpoint(t *testing.T) {
	t.Parallel()
	// sorted input with the midpoint policy still terminates and stays sorted
	xs := make([]int, 4096)
	for i := range xs {
		xs[i] = i
	}
	want := slices.Clone(xs)
	Sort(xs, pivot.Midpoint(), intLess, 0)
	if !slices.Equal(xs, want) {
		t.Fatalf("sorted input changed")
	}
}
