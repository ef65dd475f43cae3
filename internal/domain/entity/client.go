package entity

import "time"

// Client representa un cliente comprador (facturación).
type Client struct {
	ID        string
	CompanyID string
	Name      string
	TaxID     string // NIT o Cédula
	Email     string
	Phone     string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
