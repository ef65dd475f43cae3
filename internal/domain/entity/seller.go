package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seller representa un vendedor de la fuerza de ventas.
// CommissionRate es el porcentaje por defecto; cada línea de factura puede
// registrar un porcentaje propio que prevalece sobre este.
type Seller struct {
	ID             string
	CompanyID      string
	Name           string
	Email          string
	Phone          string
	CommissionRate decimal.Decimal // porcentaje [0,100]
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
