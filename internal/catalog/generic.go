package catalog

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"

	"goidioms/internal/ux"
)

// The vocabulary that type parameters finally made writable once, not once
// per element type.

// Filter returns the elements of s for which keep is true.
func Filter[E any](s []E, keep func(E) bool) []E {
	var out []E
	for _, e := range s {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// Transform maps every element of s through fn.
func Transform[T, U any](s []T, fn func(T) U) []U {
	out := make([]U, len(s))
	for i, e := range s {
		out[i] = fn(e)
	}
	return out
}

// Reduce folds s left to right.
func Reduce[T, A any](s []T, init A, fn func(A, T) A) A {
	acc := init
	for _, e := range s {
		acc = fn(acc, e)
	}
	return acc
}

func saleTagsGeneric(products []Product) []string {
	return Transform(
		Filter(products, func(p Product) bool { return p.Price > expensiveThreshold }),
		func(p Product) string { return PriceTag(p.Name, Discount(p.Price, saleDiscount)) },
	)
}

func electronicsValueGeneric(products []Product) float64 {
	return Reduce(products, 0.0, func(sum float64, p Product) float64 {
		if p.Category == "Electronics" {
			return sum + p.Price*float64(p.Stock)
		}
		return sum
	})
}

// cheapestFirstTags sorts a copy by price, finds the expensive tail with a
// binary search, and tags it. Same products as the other renditions, just
// in ascending price order.
func cheapestFirstTags(products []Product) []string {
	byPrice := slices.Clone(products)
	slices.SortFunc(byPrice, func(a, b Product) int {
		return cmp.Compare(a.Price, b.Price)
	})

	start, found := slices.BinarySearchFunc(byPrice, expensiveThreshold,
		func(p Product, threshold float64) int { return cmp.Compare(p.Price, threshold) })
	if found {
		// The threshold is exclusive; a product at exactly the
		// threshold is not expensive.
		start++
	}

	tags := make([]string, 0, len(byPrice)-start)
	for _, p := range byPrice[start:] {
		tags = append(tags, PriceTag(p.Name, Discount(p.Price, saleDiscount)))
	}
	return tags
}

func countByCategory(products []Product) map[string]int {
	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}
	return counts
}

func runGeneric(ctx context.Context, p *ux.Printer) error {
	products := Catalog()

	p.Stepf("the same pipeline as one Filter+Transform expression:")
	tags := saleTagsGeneric(products)
	for _, tag := range tags {
		p.Bulletf("%s", tag)
	}
	if len(tags) != 4 {
		return fmt.Errorf("expected 4 sale tags, got %d", len(tags))
	}

	p.Resultf("electronics stock value via Reduce: $%.2f", electronicsValueGeneric(products))

	affordable := Transform(
		Filter(products, func(p Product) bool { return p.Category == "Furniture" && p.Price < 300 }),
		func(p Product) string { return p.Name },
	)
	p.Stepf("affordable furniture: %v", affordable)

	p.Stepf("three releases later the same vocabulary moved into the stdlib:")
	p.Stepf("cheapest first via slices.SortFunc + BinarySearchFunc:")
	for _, tag := range cheapestFirstTags(products) {
		p.Bulletf("%s", tag)
	}

	byPrice := func(a, b Product) int { return cmp.Compare(a.Price, b.Price) }
	priciest := slices.MaxFunc(products, byPrice)
	cheapest := slices.MinFunc(products, byPrice)
	p.Resultf("price range: %s up to %s", PriceTag(cheapest.Name, cheapest.Price), PriceTag(priciest.Name, priciest.Price))

	counts := countByCategory(products)
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	p.Stepf("category counts from a map group-by:")
	for _, k := range keys {
		p.Bulletf("%s: %d", k, counts[k])
	}

	snapshot := maps.Clone(counts)
	maps.DeleteFunc(counts, func(_ string, n int) bool { return n < 2 })
	p.Stepf("after dropping one-product categories: %d of %d remain", len(counts), len(snapshot))
	if maps.Equal(snapshot, counts) {
		return fmt.Errorf("DeleteFunc should have removed a category")
	}

	if i := slices.IndexFunc(products, func(p Product) bool { return p.Category == "Furniture" }); i >= 0 {
		p.Stepf("first furniture entry sits at index %d: %s", i, products[i].Name)
	}

	p.Blank()
	p.Notef("Filter, Transform and Reduce are written once and composed at")
	p.Notef("the call site; Go 1.21 then folded sorting, searching, min/max")
	p.Notef("and map surgery into slices and maps. Each stage still allocates")
	p.Notef("its slice eagerly, and deep nesting reads inside-out.")
	return nil
}
