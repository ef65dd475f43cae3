package repository

import "github.com/ventapro/comisiona-api/internal/domain/entity"

// SellerRepository define el puerto de persistencia para Seller.
type SellerRepository interface {
	Create(seller *entity.Seller) error
	GetByID(id string) (*entity.Seller, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Seller, error)
}
