package models

type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address,omitempty"`
	Points    int    `json:"points"`
	Visits    int    `json:"visits"`
	LastVisit string `json:"last_visit"`
}
