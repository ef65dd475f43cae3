package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ventapro/comisiona-api/internal/domain"
	"github.com/ventapro/comisiona-api/internal/domain/entity"
	"github.com/ventapro/comisiona-api/internal/domain/repository"
)

// ── Vendedores ────────────────────────────────────────────────────────────────

// SellerUseCase CRUD básico de vendedores.
type SellerUseCase struct {
	sellerRepo repository.SellerRepository
}

// NewSellerUseCase construye el caso de uso.
func NewSellerUseCase(sellerRepo repository.SellerRepository) *SellerUseCase {
	return &SellerUseCase{sellerRepo: sellerRepo}
}

// Create registra un vendedor nuevo con su porcentaje de comisión por defecto.
func (uc *SellerUseCase) Create(companyID, name, email, phone string, commissionRate decimal.Decimal) (*entity.Seller, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if commissionRate.IsNegative() || commissionRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	seller := &entity.Seller{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		Name:           name,
		Email:          email,
		Phone:          phone,
		CommissionRate: commissionRate,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.sellerRepo.Create(seller); err != nil {
		return nil, err
	}
	return seller, nil
}

// List lista los vendedores de la empresa.
func (uc *SellerUseCase) List(companyID string, limit, offset int) ([]*entity.Seller, error) {
	return uc.sellerRepo.ListByCompany(companyID, limit, offset)
}

// GetByID obtiene un vendedor; ErrNotFound si no existe.
func (uc *SellerUseCase) GetByID(id string) (*entity.Seller, error) {
	seller, err := uc.sellerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrNotFound
	}
	return seller, nil
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// ClientUseCase CRUD básico de clientes.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo}
}

// Create registra un cliente nuevo.
func (uc *ClientUseCase) Create(companyID, name, taxID, email, phone, city string) (*entity.Client, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      name,
		TaxID:     taxID,
		Email:     email,
		Phone:     phone,
		City:      city,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

// List lista los clientes de la empresa.
func (uc *ClientUseCase) List(companyID string, limit, offset int) ([]*entity.Client, error) {
	return uc.clientRepo.ListByCompany(companyID, limit, offset)
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductUseCase CRUD básico del catálogo de productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create registra un producto; el SKU es único por empresa.
func (uc *ProductUseCase) Create(companyID, sku, name, description string, price, commissionRate decimal.Decimal) (*entity.Product, error) {
	if sku == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	if price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetBySKU(companyID, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		SKU:            sku,
		Name:           name,
		Description:    description,
		Price:          price,
		CommissionRate: commissionRate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// List lista los productos de la empresa.
func (uc *ProductUseCase) List(companyID string, limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.ListByCompany(companyID, limit, offset)
}

// ── Empresas ──────────────────────────────────────────────────────────────────

// CompanyUseCase alta y consulta de empresas (tenants).
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo}
}

// Create registra una empresa con los módulos base activos.
func (uc *CompanyUseCase) Create(name, taxID, email, phone string) (*entity.Company, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      name,
		TaxID:     taxID,
		Email:     email,
		Phone:     phone,
		Modules:   []string{entity.ModuleBilling, entity.ModuleReports},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

// List lista empresas.
func (uc *CompanyUseCase) List(limit, offset int) ([]*entity.Company, error) {
	return uc.companyRepo.List(limit, offset)
}

// GetByID obtiene una empresa; ErrNotFound si no existe.
func (uc *CompanyUseCase) GetByID(id string) (*entity.Company, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}
