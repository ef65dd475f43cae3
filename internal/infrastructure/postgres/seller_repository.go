package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ventapro/comisiona-api/internal/domain/entity"
	"github.com/ventapro/comisiona-api/internal/domain/repository"
)

// Asegura que SellerRepo implementa repository.SellerRepository.
var _ repository.SellerRepository = (*SellerRepo)(nil)

// SellerRepo implementación del puerto SellerRepository sobre PostgreSQL.
type SellerRepo struct {
	pool *pgxpool.Pool
}

// NewSellerRepository construye el adaptador de persistencia para vendedores.
func NewSellerRepository(pool *pgxpool.Pool) *SellerRepo {
	return &SellerRepo{pool: pool}
}

// Create persiste un vendedor nuevo.
func (r *SellerRepo) Create(seller *entity.Seller) error {
	query := `
		INSERT INTO sellers (id, company_id, name, email, phone, commission_rate, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		seller.ID, seller.CompanyID, seller.Name, seller.Email, seller.Phone,
		seller.CommissionRate, seller.Active,
		seller.CreatedAt, seller.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

// GetByID obtiene un vendedor por ID; nil si no existe.
func (r *SellerRepo) GetByID(id string) (*entity.Seller, error) {
	query := `
		SELECT id, company_id, name, email, phone, commission_rate, active, created_at, updated_at
		FROM sellers WHERE id = $1`
	var s entity.Seller
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.Email, &s.Phone,
		&s.CommissionRate, &s.Active,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return &s, nil
}

// ListByCompany devuelve los vendedores de una empresa. limit <= 0 trae todos
// (los reportes lo usan para resolver nombres).
func (r *SellerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Seller, error) {
	query := `
		SELECT id, company_id, name, email, phone, commission_rate, active, created_at, updated_at
		FROM sellers WHERE company_id = $1 ORDER BY name`
	args := []any{companyID}
	if limit > 0 {
		query += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Seller
	for rows.Next() {
		var s entity.Seller
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.Email, &s.Phone,
			&s.CommissionRate, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
