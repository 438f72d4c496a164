package catalog

import (
	"context"
	"fmt"

	"goidioms/internal/ux"
)

// saleTagsClassic is the original shape: one loop per stage, temporaries
// carried by hand.
func saleTagsClassic(products []Product) []string {
	var expensive []Product
	for _, p := range products {
		if p.Price > expensiveThreshold {
			expensive = append(expensive, p)
		}
	}

	var tags []string
	for _, p := range expensive {
		tags = append(tags, PriceTag(p.Name, Discount(p.Price, saleDiscount)))
	}
	return tags
}

// electronicsValueClassic totals price times stock with an accumulator
// variable.
func electronicsValueClassic(products []Product) float64 {
	total := 0.0
	for _, p := range products {
		if p.Category == "Electronics" {
			total += p.Price * float64(p.Stock)
		}
	}
	return total
}

func runClassic(ctx context.Context, p *ux.Printer) error {
	products := Catalog()

	p.Stepf("products over $%.0f with %d%% off, one loop per stage:", expensiveThreshold, int(saleDiscount*100))
	tags := saleTagsClassic(products)
	for _, tag := range tags {
		p.Bulletf("%s", tag)
	}
	if len(tags) != 4 {
		return fmt.Errorf("expected 4 sale tags, got %d", len(tags))
	}

	p.Resultf("electronics stock value: $%.2f", electronicsValueClassic(products))

	p.Blank()
	p.Notef("Plain loops are obvious and fast, but every stage needs its own")
	p.Notef("temporary slice and the intent hides inside the iteration")
	p.Notef("boilerplate.")
	return nil
}
