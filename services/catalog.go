package services

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mohamedabdelbaset2026-cyber/POS/models"
)

// CategoryAll is the sentinel that bypasses the category filter.
const CategoryAll = "all"

// Catalog holds products, category names and unit tags in memory. Products
// are immutable once added; there is no edit or delete path.
type Catalog struct {
	mu         sync.RWMutex
	products   []models.Product
	categories []string
	units      []string
}

func NewCatalog() *Catalog {
	return &Catalog{
		categories: []string{CategoryAll},
		units:      []string{UnitGram},
	}
}

// ListAll returns a copy of the product list.
func (c *Catalog) ListAll() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Filter matches a case-insensitive substring of the product name AND the
// exact category. CategoryAll bypasses the category predicate.
func (c *Catalog) Filter(search, category string) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	search = strings.ToLower(search)
	out := make([]models.Product, 0)
	for _, p := range c.products {
		if !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if category != CategoryAll && category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Get looks up a product by id.
func (c *Catalog) Get(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Add appends a product, assigning a fresh id when none is set. There is no
// duplicate-name check.
func (c *Catalog) Add(product models.Product) models.Product {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, product)
	return product
}

// MealComponent selects a source product and a quantity for BuildMeal.
type MealComponent struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// BuildMeal creates a bundle-priced composite product from snapshots of the
// referenced products. Sub-items are informational, not separately priced,
// and a meal cannot contain another meal.
func (c *Catalog) BuildMeal(name, category string, price float64, components []MealComponent) (models.Product, bool) {
	subItems := make([]models.SubItem, 0, len(components))
	for _, comp := range components {
		src, ok := c.Get(comp.ProductID)
		if !ok || src.IsMeal() {
			return models.Product{}, false
		}
		qty := comp.Quantity
		if qty <= 0 {
			// Default portion: 250g for weighed products, one unit otherwise.
			if src.Unit == UnitGram {
				qty = 250
			} else {
				qty = 1
			}
		}
		subItems = append(subItems, models.SubItem{
			ProductID: src.ID,
			Name:      src.Name,
			Quantity:  qty,
			Unit:      src.Unit,
		})
	}
	if name == "" || price <= 0 || len(subItems) == 0 {
		return models.Product{}, false
	}

	meal := models.Product{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
		Price:    price,
		Unit:     "plate",
		Stock:    100,
		IsFresh:  true,
		SubItems: subItems,
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, meal)
	return meal, true
}

func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// AddCategory is a no-op when the name is already present.
func (c *Catalog) AddCategory(name string) {
	if name == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.categories {
		if existing == name {
			return
		}
	}
	c.categories = append(c.categories, name)
}

func (c *Catalog) Units() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.units))
	copy(out, c.units)
	return out
}

// AddUnit registers a unit tag, set semantics.
func (c *Catalog) AddUnit(name string) {
	if name == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.units {
		if existing == name {
			return
		}
	}
	c.units = append(c.units, name)
}

// RemoveUnit drops a unit tag. The reserved weight unit cannot be removed;
// any other unit can, even while products still reference it — display
// simply falls back to showing the raw tag.
func (c *Catalog) RemoveUnit(name string) {
	if name == UnitGram {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.units {
		if existing == name {
			c.units = append(c.units[:i], c.units[i+1:]...)
			return
		}
	}
}
