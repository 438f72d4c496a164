// Package catalog demonstrates collection processing across Go releases:
// bare loops, pre-generics helper functions, the generic vocabulary with
// the slices/maps packages, and lazy iter.Seq pipelines.
package catalog

import "fmt"

// Product is one inventory entry.
type Product struct {
	Name     string
	Price    float64
	Category string
	Stock    int
}

// Catalog returns the demo inventory. Every rendition processes this same
// ten-product slice.
func Catalog() []Product {
	return []Product{
		{Name: "Laptop", Price: 999.99, Category: "Electronics", Stock: 5},
		{Name: "Mouse", Price: 25.50, Category: "Electronics", Stock: 50},
		{Name: "Keyboard", Price: 75.00, Category: "Electronics", Stock: 30},
		{Name: "Monitor", Price: 299.99, Category: "Electronics", Stock: 15},
		{Name: "Desk", Price: 450.00, Category: "Furniture", Stock: 10},
		{Name: "Chair", Price: 199.99, Category: "Furniture", Stock: 20},
		{Name: "Lamp", Price: 45.00, Category: "Furniture", Stock: 40},
		{Name: "Notebook", Price: 5.99, Category: "Stationery", Stock: 100},
		{Name: "Pen", Price: 2.50, Category: "Stationery", Stock: 200},
		{Name: "Coffee Mug", Price: 12.99, Category: "Kitchen", Stock: 60},
	}
}

// The shared task: tag products above the threshold with the sale discount
// applied.
const (
	expensiveThreshold = 100.0
	saleDiscount       = 0.10
)

// Discount applies a fractional discount to a price.
func Discount(price, fraction float64) float64 {
	return price * (1 - fraction)
}

// PriceTag renders the label every pipeline ends with.
func PriceTag(name string, price float64) string {
	return fmt.Sprintf("%s ($%.2f)", name, price)
}
