package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ventapro/comisiona-api/internal/application/dto"
	"github.com/ventapro/comisiona-api/internal/domain"
)

// moduleChecker es el contrato mínimo que necesita el middleware para
// verificar módulos. Lo implementa *usecase.ModuleService; el uso de interfaz
// evita el import circular.
type moduleChecker interface {
	CheckModule(companyID, module string) error
}

// RequireModule devuelve un middleware Fiber que verifica si la empresa del
// token JWT tiene el módulo activo. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 403 Forbidden → módulo no contratado.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - Sin company_id en el contexto, 401.
func RequireModule(moduleName string, checker moduleChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companyID := GetCompanyID(c)
		if companyID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "company_id no encontrado en el token",
			})
		}

		err := checker.CheckModule(companyID, moduleName)
		switch {
		case err == nil:
			return c.Next()
		case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MODULE_DISABLED",
				Message: "el módulo '" + moduleName + "' no está activo para esta empresa",
			})
		default:
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "MODULE_CHECK_FAILED",
				Message: "no se pudo verificar el módulo, intente más tarde",
			})
		}
	}
}
