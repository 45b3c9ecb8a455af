package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mohamedabdelbaset2026-cyber/POS/models"
)

// CustomerDirectory holds the known customers in memory. Records are created
// here and assigned to orders; points/visit accrual on checkout is out of
// scope.
type CustomerDirectory struct {
	mu        sync.RWMutex
	customers []models.Customer
}

func NewCustomerDirectory() *CustomerDirectory {
	return &CustomerDirectory{}
}

func (d *CustomerDirectory) ListAll() []models.Customer {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Customer, len(d.customers))
	copy(out, d.customers)
	return out
}

// Search matches a substring of name, phone or address. Matching is
// case-sensitive.
func (d *CustomerDirectory) Search(text string) []models.Customer {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Customer, 0)
	for _, c := range d.customers {
		if strings.Contains(c.Name, text) ||
			strings.Contains(c.Phone, text) ||
			strings.Contains(c.Address, text) {
			out = append(out, c)
		}
	}
	return out
}

func (d *CustomerDirectory) Get(id string) (models.Customer, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// Add registers a new customer with a fresh id, zero loyalty counters and
// today as the last visit.
func (d *CustomerDirectory) Add(name, phone, address string) models.Customer {
	customer := models.Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     phone,
		Address:   address,
		Points:    0,
		Visits:    0,
		LastVisit: time.Now().Format("2006-01-02"),
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customers = append(d.customers, customer)
	return customer
}

// Seed inserts a pre-built record as-is, keeping its id and counters. Used
// by the demo data loader.
func (d *CustomerDirectory) Seed(customer models.Customer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customers = append(d.customers, customer)
}
