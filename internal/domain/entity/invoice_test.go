package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventapro/comisiona-api/internal/domain"
	"github.com/ventapro/comisiona-api/internal/domain/entity"
)

func lineaValida() entity.InvoiceLine {
	return entity.InvoiceLine{
		ProductName: "Crema",
		Amount:      decimal.NewNullDecimal(decimal.NewFromInt(500)),
		Commission:  decimal.NewFromInt(75),
		Percentage:  decimal.NewFromInt(15),
	}
}

func facturaValida() entity.Invoice {
	return entity.Invoice{
		ID:        "inv-001",
		CompanyID: "comp-001",
		Number:    "F-001",
		Date:      time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Lines:     []entity.InvoiceLine{lineaValida()},
	}
}

func TestInvoiceValidate_FacturaValidaPasa(t *testing.T) {
	inv := facturaValida()
	require.NoError(t, inv.Validate())
}

func TestInvoiceValidate_RechazaContratosInvalidos(t *testing.T) {
	tests := []struct {
		nombre string
		mutar  func(*entity.Invoice)
	}{
		{"sin company_id", func(i *entity.Invoice) { i.CompanyID = "" }},
		{"sin fecha", func(i *entity.Invoice) { i.Date = time.Time{} }},
		{"sin líneas", func(i *entity.Invoice) { i.Lines = nil }},
		{"monto negativo", func(i *entity.Invoice) {
			i.Lines[0].Amount = decimal.NewNullDecimal(decimal.NewFromInt(-1))
		}},
		{"comisión negativa", func(i *entity.Invoice) {
			i.Lines[0].Commission = decimal.NewFromInt(-10)
		}},
		{"porcentaje mayor a 100", func(i *entity.Invoice) {
			i.Lines[0].Percentage = decimal.NewFromInt(101)
		}},
	}
	for _, tc := range tests {
		t.Run(tc.nombre, func(t *testing.T) {
			inv := facturaValida()
			tc.mutar(&inv)
			err := inv.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// La ausencia de campos opcionales no es un error de validación: la línea se
// filtra después, durante la normalización.
func TestInvoiceValidate_LineaVaciaEsValida(t *testing.T) {
	inv := facturaValida()
	inv.Lines = []entity.InvoiceLine{{ProductName: "Sin datos"}}
	assert.NoError(t, inv.Validate())
}
