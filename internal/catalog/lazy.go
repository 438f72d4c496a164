package catalog

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"maps"
	"math"
	"slices"

	"goidioms/internal/ux"
)

// FilterSeq yields the elements of seq for which keep is true.
func FilterSeq[E any](seq iter.Seq[E], keep func(E) bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range seq {
			if keep(e) && !yield(e) {
				return
			}
		}
	}
}

// MapSeq transforms lazily; nothing runs until the pipeline is consumed.
func MapSeq[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for e := range seq {
			if !yield(fn(e)) {
				return
			}
		}
	}
}

// Take stops the upstream after n elements.
func Take[E any](seq iter.Seq[E], n int) iter.Seq[E] {
	return func(yield func(E) bool) {
		if n <= 0 {
			return
		}
		left := n
		for e := range seq {
			if !yield(e) {
				return
			}
			left--
			if left == 0 {
				return
			}
		}
	}
}

// Enumerate numbers a sequence from zero.
func Enumerate[E any](seq iter.Seq[E]) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		i := 0
		for e := range seq {
			if !yield(i, e) {
				return
			}
			i++
		}
	}
}

// Zip pairs two sequences positionally, stopping at the shorter. One side
// is ranged, the other pulled; iter.Pull bridges the two shapes.
func Zip[A, B any](as iter.Seq[A], bs iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		next, stop := iter.Pull(bs)
		defer stop()
		for a := range as {
			b, ok := next()
			if !ok {
				return
			}
			if !yield(a, b) {
				return
			}
		}
	}
}

// Slide yields every w-wide window of s. Windows alias s's backing array.
func Slide[E any](s []E, w int) iter.Seq[[]E] {
	return func(yield func([]E) bool) {
		if w <= 0 || w > len(s) {
			return
		}
		for i := 0; i+w <= len(s); i++ {
			if !yield(s[i : i+w : i+w]) {
				return
			}
		}
	}
}

// ChunkBy yields maximal runs of adjacent elements whose keys are equal.
// Runs alias s's backing array.
func ChunkBy[E any, K comparable](s []E, key func(E) K) iter.Seq2[K, []E] {
	return func(yield func(K, []E) bool) {
		for start := 0; start < len(s); {
			end := start + 1
			for end < len(s) && key(s[end]) == key(s[start]) {
				end++
			}
			if !yield(key(s[start]), s[start:end:end]) {
				return
			}
			start = end
		}
	}
}

func saleTagsLazy(products []Product) []string {
	return slices.Collect(MapSeq(
		FilterSeq(slices.Values(products), func(prod Product) bool { return prod.Price > expensiveThreshold }),
		func(prod Product) string { return PriceTag(prod.Name, Discount(prod.Price, saleDiscount)) },
	))
}

func runLazy(ctx context.Context, p *ux.Printer) error {
	products := Catalog()

	p.Stepf("the pipeline one last time, as a lazy sequence:")
	tags := saleTagsLazy(products)
	for _, tag := range tags {
		p.Bulletf("%s", tag)
	}
	if len(tags) != 4 {
		return fmt.Errorf("expected 4 sale tags, got %d", len(tags))
	}

	p.Stepf("top electronics by stock value, capped at 3 without a sort:")
	for prod := range Take(FilterSeq(slices.Values(products),
		func(prod Product) bool { return prod.Category == "Electronics" }), 3) {
		p.Bulletf("%s: $%.2f", prod.Name, prod.Price*float64(prod.Stock))
	}

	p.Stepf("Zip couples independent sequences:")
	ids := []int{101, 102, 103, 104, 105}
	for id, prod := range Zip(slices.Values(ids), slices.Values(products)) {
		p.Bulletf("ID %d: %s", id, prod.Name)
	}

	rates := []float64{0.10, 0.15, 0.20, 0.05, 0.25}
	p.Stepf("and pairs each product with its own discount rate:")
	for prod, rate := range Zip(slices.Values(products), slices.Values(rates)) {
		p.Bulletf("%s: $%.2f (%d%% off)", prod.Name, Discount(prod.Price, rate), int(rate*100))
	}

	p.Stepf("inventory in groups of 3 via slices.Chunk:")
	for chunk := range slices.Chunk(products, 3) {
		names := make([]string, len(chunk))
		for i, prod := range chunk {
			names[i] = prod.Name
		}
		p.Bulletf("group: %v", names)
	}

	p.Stepf("neighboring price comparisons (2-wide windows):")
	prices := slices.Collect(MapSeq(slices.Values(products), func(prod Product) float64 { return prod.Price }))
	windows := 0
	for w := range Slide(prices, 2) {
		p.Bulletf("$%.2f -> $%.2f (diff $%.2f)", w[0], w[1], math.Abs(w[1]-w[0]))
		windows++
	}
	if windows != len(products)-1 {
		return fmt.Errorf("expected %d windows, got %d", len(products)-1, windows)
	}

	p.Stepf("consecutive category runs after a stable sort by category:")
	byCat := slices.Clone(products)
	slices.SortStableFunc(byCat, func(a, b Product) int { return cmp.Compare(a.Category, b.Category) })
	for cat, group := range ChunkBy(byCat, func(prod Product) string { return prod.Category }) {
		names := slices.Collect(MapSeq(slices.Values(group), func(prod Product) string { return prod.Name }))
		p.Bulletf("%s: %v", cat, names)
	}
	p.Stepf("categories present: %v", slices.Sorted(maps.Keys(countByCategory(products))))

	p.Stepf("expensive items ranked via Enumerate:")
	for i, prod := range Enumerate(FilterSeq(slices.Values(products),
		func(prod Product) bool { return prod.Price > expensiveThreshold })) {
		p.Bulletf("#%d: %s", i+1, PriceTag(prod.Name, prod.Price))
	}

	// The payoff: ask for three matches and watch how few products the
	// source has to surface.
	examined := 0
	var counted iter.Seq[Product] = func(yield func(Product) bool) {
		for _, prod := range products {
			examined++
			if !yield(prod) {
				return
			}
		}
	}
	firstThree := slices.Collect(Take(
		FilterSeq(counted, func(prod Product) bool { return prod.Price > expensiveThreshold }), 3))
	if len(firstThree) != 3 || examined != 5 {
		return fmt.Errorf("laziness proof broke: %d matches after examining %d products", len(firstThree), examined)
	}
	p.Resultf("asked for 3 expensive products; the source only surfaced %d of %d", examined, len(products))

	p.Blank()
	p.Notef("Sequences compose without intermediate slices and stop early for")
	p.Notef("free. The price is that a pipeline is opaque until consumed, and")
	p.Notef("debugging steps through yield closures instead of slices.")
	return nil
}
