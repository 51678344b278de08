package cart

import "fmt"

// DefaultTaxRate is the original storefront's flat 8% example rate.
const DefaultTaxRate = 0.08

// Totals carries the derived cart amounts. Values are unrounded;
// rounding happens only when formatting for display so repeated
// derivations never compound rounding error.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// FormatUSD renders an amount the way the storefront displays money,
// rounded to cents.
func FormatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
