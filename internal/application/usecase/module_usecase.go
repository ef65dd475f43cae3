package usecase

import (
	"github.com/ventapro/comisiona-api/internal/domain"
	"github.com/ventapro/comisiona-api/internal/domain/repository"
)

// ModuleService verifica si una empresa tiene activo un módulo de pago
// (billing, reports). Lo usa el middleware HTTP para cerrar endpoints.
type ModuleService struct {
	companyRepo repository.CompanyRepository
}

// NewModuleService construye el servicio.
func NewModuleService(companyRepo repository.CompanyRepository) *ModuleService {
	return &ModuleService{companyRepo: companyRepo}
}

// CheckModule devuelve nil si la empresa tiene el módulo activo;
// ErrForbidden si no lo tiene y ErrNotFound si la empresa no existe.
func (s *ModuleService) CheckModule(companyID, module string) error {
	company, err := s.companyRepo.GetByID(companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if !company.HasModule(module) {
		return domain.ErrForbidden
	}
	return nil
}
