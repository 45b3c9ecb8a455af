package database

import (
	"github.com/mohamedabdelbaset2026-cyber/POS/models"
	"github.com/mohamedabdelbaset2026-cyber/POS/services"
	"github.com/mohamedabdelbaset2026-cyber/POS/utils"
)

// Seed loads the demo catalog and customer directory for a fresh session.
// The data lives in memory only and is reloaded on every start.
func Seed(catalog *services.Catalog, customers *services.CustomerDirectory) {
	for _, category := range []string{"Fish", "Shellfish", "Supplies", "Meals", "Trays"} {
		catalog.AddCategory(category)
	}
	for _, unit := range []string{"piece", "plate", "kg", "liter", "box"} {
		catalog.AddUnit(unit)
	}

	products := []models.Product{
		{ID: "1", Name: "Atlantic Salmon", Category: "Fish", Price: 340.50, Unit: services.UnitGram, Stock: 50, IsFresh: true},
		{ID: "2", Name: "Sea Bream", Category: "Fish", Price: 180.00, Unit: services.UnitGram, Stock: 35, IsFresh: true},
		{ID: "3", Name: "Jumbo Shrimp", Category: "Shellfish", Price: 450.00, Unit: services.UnitGram, Stock: 20, IsFresh: false},
		{ID: "4", Name: "Calamari Rings", Category: "Shellfish", Price: 150.00, Unit: "plate", Stock: 100, IsFresh: false},
		{ID: "5", Name: "Lobster", Category: "Shellfish", Price: 850.00, Unit: services.UnitGram, Stock: 10, IsFresh: true},
		{ID: "6", Name: "Tilapia Fillet", Category: "Fish", Price: 120.00, Unit: services.UnitGram, Stock: 40, IsFresh: true},
		{ID: "7", Name: "Blue Crab", Category: "Shellfish", Price: 280.00, Unit: services.UnitGram, Stock: 15, IsFresh: true},
		{ID: "8", Name: "Fish Seasoning", Category: "Supplies", Price: 25.00, Unit: "piece", Stock: 200, IsFresh: true},
	}
	for _, p := range products {
		catalog.Add(p)
	}

	customers.Seed(models.Customer{
		ID: "c1", Name: "Ahmed Ali", Phone: "0501234567",
		Address: "5 Seaside St.", Points: 120, Visits: 5, LastVisit: "2023-10-01",
	})
	customers.Seed(models.Customer{
		ID: "c2", Name: "Sara Samir", Phone: "0559876543",
		Address: "12 Flowers District", Points: 45, Visits: 2, LastVisit: "2023-10-05",
	})

	utils.InfoLogger.Printf("Seeded %d products and %d customers", len(products), 2)
}
