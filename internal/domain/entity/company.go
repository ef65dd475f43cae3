package entity

import "time"

// Módulos activables por empresa (features de pago).
const (
	ModuleBilling = "billing"
	ModuleReports = "reports"
)

// Company representa una empresa (tenant) del sistema.
// Modules controla qué funcionalidades de pago tiene activas.
type Company struct {
	ID        string
	Name      string
	TaxID     string // NIT o Cédula
	Email     string
	Phone     string
	Modules   []string // billing, reports
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasModule indica si la empresa tiene activo el módulo dado.
func (c *Company) HasModule(name string) bool {
	for _, m := range c.Modules {
		if m == name {
			return true
		}
	}
	return false
}
