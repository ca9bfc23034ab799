package domain

import "github.com/shopspring/decimal"

// Product is one catalog entry. The catalog is read-only; a Product never
// changes within a request.
type Product struct {
	ID          FlexString      `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Description string          `json:"description"`
	Size        string          `json:"size"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
}

// MatchesID reports whether the product's id stringifies equal to the given
// value. Comparison is by string equality, never numeric: "7" matches 7,
// "07" does not.
func (p Product) MatchesID(id string) bool {
	return string(p.ID) == id
}
