package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Price es el precio de venta unitario de referencia: las líneas antiguas que
// no registraron cantidades se infieren dividiendo el monto entre este precio.
// CommissionRate es el porcentaje de comisión por defecto del producto.
type Product struct {
	ID             string
	CompanyID      string
	SKU            string // código único por empresa
	Name           string
	Description    string
	Price          decimal.Decimal // precio de venta unitario
	CommissionRate decimal.Decimal // porcentaje [0,100]
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
