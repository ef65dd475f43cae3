package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ventapro/comisiona-api/internal/application/dto"
	"github.com/ventapro/comisiona-api/internal/domain/engine"
)

var hundred = decimal.NewFromInt(100)

func sellerRow(a engine.Aggregate, name string, th engine.Thresholds) dto.SellerReportRow {
	return dto.SellerReportRow{
		SellerID:          a.Key,
		SellerName:        name,
		SoldUnits:         a.SoldUnits.Round(2),
		GiftedUnits:       a.GiftedUnits.Round(2),
		NetRevenue:        a.NetRevenue.Round(2),
		GiftValue:         a.GiftValue.Round(2),
		CommissionPaid:    a.CommissionPaid.Round(2),
		CommissionCorrect: a.CommissionCorrect.Round(2),
		CommissionDiff:    a.CommissionDiff.Round(2),
		InvoiceCount:      a.InvoiceCount,
		GiftRatioPct:      a.GiftRatio().Mul(hundred).Round(1),
		Status:            string(engine.ClassifySeller(a, th)),
	}
}

// sortClientRows ordena por ingreso actual descendente, empates por id para
// que el listado sea determinista.
func sortClientRows(rows []dto.ClientReportRow) {
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CurrentRevenue.Equal(rows[j].CurrentRevenue) {
			return rows[i].CurrentRevenue.GreaterThan(rows[j].CurrentRevenue)
		}
		return rows[i].ClientID < rows[j].ClientID
	})
}
