package models

// Product is one entry in the storefront catalog. The catalog is
// read-only; the cart copies the fields it needs at add time.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// CartItem is a single cart line: one product plus a quantity.
// Quantity is always at least 1; a line leaves the cart through
// removal, never by reaching zero.
type CartItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// NewCartItem builds a quantity-1 line from a catalog product.
func NewCartItem(p *Product) *CartItem {
	return &CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: 1,
	}
}

// LineTotal is the unrounded price of the whole line.
func (ci CartItem) LineTotal() float64 {
	return ci.Price * float64(ci.Quantity)
}
