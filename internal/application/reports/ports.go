package reports

import "github.com/ventapro/comisiona-api/internal/application/dto"

// ReportPDFGenerator genera el reporte de comisiones y obsequios en PDF.
// La implementación (maroto) vive en infraestructura.
type ReportPDFGenerator interface {
	ReconciliationPDF(companyName string, recon *dto.ReconciliationDTO, insights []string) ([]byte, error)
}
