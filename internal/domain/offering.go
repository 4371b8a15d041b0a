package domain

// ServiceOffering is a service the studio sells. Price and duration are
// display strings ("Mulai dari Rp 10.000.000", "2-4 bulan"), not amounts.
type ServiceOffering struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          string `json:"price"`
	Duration       string `json:"duration"`
	IsActive       bool   `json:"isActive"`
	ShowOnHomepage bool   `json:"showOnHomepage"`
}
