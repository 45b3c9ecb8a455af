package models

// SubItem is a component reference inside a composite "meal" product.
// Values are snapshots taken at meal-creation time; later edits to the
// source product do not propagate.
type SubItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
}

type Product struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Price    float64   `json:"price"`
	Unit     string    `json:"unit"`
	Image    string    `json:"image,omitempty"`
	Stock    float64   `json:"stock"`
	IsFresh  bool      `json:"is_fresh"`
	SubItems []SubItem `json:"sub_items,omitempty"`
}

// IsMeal reports whether the product is a bundle-priced composite.
func (p *Product) IsMeal() bool {
	return len(p.SubItems) > 0
}
