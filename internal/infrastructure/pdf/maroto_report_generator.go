// Package pdf implementa la generación del cierre de comisiones en PDF con
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  "Cierre de comisiones" + período        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Pagado / Calculado / Diferencia (+ bandera)        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Vendedor | Pagada | Calculada | Diferencia           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HALLAZGOS del período                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ventapro/comisiona-api/internal/application/dto"
	"github.com/ventapro/comisiona-api/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// Asegura que MarotoReportGenerator implementa el puerto de la capa de aplicación.
var _ reports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// ReconciliationPDF genera el cierre de comisiones y devuelve sus bytes.
func (g *MarotoReportGenerator) ReconciliationPDF(companyName string, recon *dto.ReconciliationDTO, insights []string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cierre de comisiones", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName, recon))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(recon))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range sellerRows(recon.BySeller) {
		m.AddRows(r)
	}

	if len(insights) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		for _, r := range insightRows(insights) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y título + período (der).
func headerRow(companyName string, recon *dto.ReconciliationDTO) core.Row {
	periodo := fmt.Sprintf("%s a %s", recon.Period.StartDate, recon.Period.EndDate)
	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("CIERRE DE COMISIONES", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+periodo, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales del período con la bandera de revisión.
func summaryRow(recon *dto.ReconciliationDTO) core.Row {
	diffColor := colorPrimary
	nota := "Diferencia dentro del umbral."
	if recon.RequiresReview {
		diffColor = colorDanger
		nota = "REQUIERE REVISIÓN: la diferencia supera el umbral configurado."
	}
	return row.New(22).Add(
		col.New(4).Add(
			text.New("Comisión pagada", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
			text.New("$"+recon.TotalPaid.StringFixed(2), props.Text{Size: 11, Top: 7}),
		),
		col.New(4).Add(
			text.New("Comisión calculada", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
			text.New("$"+recon.TotalCorrect.StringFixed(2), props.Text{Size: 11, Top: 7}),
		),
		col.New(4).Add(
			text.New("Diferencia", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
			text.New("$"+recon.Diff.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 7, Color: diffColor,
			}),
			text.New(nota, props.Text{Size: 6.5, Top: 16, Color: diffColor}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla por vendedor.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Vendedor", 5, align.Left),
		h("Pagada", 2, align.Right),
		h("Calculada", 2, align.Right),
		h("Diferencia", 3, align.Right),
	)
}

// sellerRows: una fila por vendedor, lo más desviado primero.
func sellerRows(rows []dto.SellerReconciliationRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		name := r.SellerName
		if name == "" {
			name = r.SellerID
		}
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(name, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New("$"+r.CommissionPaid.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New("$"+r.CommissionOK.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(3).Add(text.New("$"+r.CommissionDiff.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// insightRows: hallazgos del período como lista.
func insightRows(insights []string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("HALLAZGOS DEL PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, ins := range insights {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("• "+ins, props.Text{Size: 8, Top: 1, Left: 2, Color: colorGray}),
		)))
	}
	return rows
}
