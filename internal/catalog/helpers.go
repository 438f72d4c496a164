package catalog

import (
	"context"
	"fmt"
	"sort"

	"goidioms/internal/ux"
)

// filterProducts keeps the products for which keep is true. Before type
// parameters this had to be written once per element type.
func filterProducts(products []Product, keep func(Product) bool) []Product {
	var out []Product
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// mapToLabels renders each product through label. Same story: a []User or
// []Order version meant another copy of this loop.
func mapToLabels(products []Product, label func(Product) string) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = label(p)
	}
	return out
}

func saleTagsHelpers(products []Product) []string {
	return mapToLabels(
		filterProducts(products, func(p Product) bool { return p.Price > expensiveThreshold }),
		func(p Product) string { return PriceTag(p.Name, Discount(p.Price, saleDiscount)) },
	)
}

// sortedSaleTagsHelpers tags the sale rack cheapest first: sort.Slice a
// copy, then reuse the same two helpers.
func sortedSaleTagsHelpers(products []Product) []string {
	byPrice := append([]Product(nil), products...)
	sort.Slice(byPrice, func(i, j int) bool { return byPrice[i].Price < byPrice[j].Price })
	return saleTagsHelpers(byPrice)
}

func electronicsValueHelpers(products []Product) float64 {
	total := 0.0
	for _, prod := range filterProducts(products, func(p Product) bool { return p.Category == "Electronics" }) {
		total += prod.Price * float64(prod.Stock)
	}
	return total
}

func runHelpers(ctx context.Context, p *ux.Printer) error {
	products := Catalog()

	p.Stepf("the pipeline through named helpers taking funcs:")
	tags := saleTagsHelpers(products)
	for _, tag := range tags {
		p.Bulletf("%s", tag)
	}
	if len(tags) != 4 {
		return fmt.Errorf("expected 4 sale tags, got %d", len(tags))
	}

	p.Resultf("electronics stock value via filter + loop: $%.2f", electronicsValueHelpers(products))

	p.Stepf("sort.Slice orders a copy by price, so the sale rack reads cheapest first:")
	for _, tag := range sortedSaleTagsHelpers(products) {
		p.Bulletf("%s", tag)
	}

	p.Blank()
	p.Notef("Funcs as arguments pulled the predicates out of the loops, and")
	p.Notef("sort.Slice killed the per-type sort.Interface boilerplate. But")
	p.Notef("filterProducts works for []Product only; every other element")
	p.Notef("type needs its own copy, and sort.Slice swaps through reflection.")
	return nil
}
