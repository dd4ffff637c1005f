package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-kam-api/internal/domain"
	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	db dbtx
}

// NewCustomerRepository construye el adaptador de persistencia para cuentas clave.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{db: pool}
}

// List lista cuentas clave según el filtro. El término de búsqueda llega ya
// normalizado (sin diacríticos, minúsculas) desde el caso de uso.
func (r *CustomerRepo) List(f repository.CustomerFilter) ([]*entity.Customer, error) {
	query := `
		SELECT id, nipnas, name, witel, region, segment, address, COALESCE(am_id, ''), created_at, updated_at
		FROM customers
		WHERE ($1 = '' OR search_name LIKE '%' || $1 || '%' OR nipnas LIKE '%' || $1 || '%')
		  AND ($2 = '' OR witel = $2)
		  AND ($3 = '' OR am_id = $3)
		ORDER BY name LIMIT $4 OFFSET $5`
	rows, err := r.db.Query(context.Background(), query, f.Search, f.Witel, f.AMID, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.NIPNAS, &c.Name, &c.Witel, &c.Region, &c.Segment, &c.Address, &c.AMID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByID obtiene una cuenta clave por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `
		SELECT id, nipnas, name, witel, region, segment, address, COALESCE(am_id, ''), created_at, updated_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.NIPNAS, &c.Name, &c.Witel, &c.Region, &c.Segment, &c.Address, &c.AMID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by id: %w", err)
	}
	return &c, nil
}

// Create persiste una cuenta clave. search_name guarda el nombre normalizado
// para la búsqueda insensible a diacríticos.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, nipnas, name, search_name, witel, region, segment, address, am_id, created_at, updated_at)
		VALUES ($1, $2, $3, lower(unaccent($3)), $4, $5, $6, $7, NULLIF($8, ''), $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		c.ID, c.NIPNAS, c.Name, c.Witel, c.Region, c.Segment, c.Address, c.AMID,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// Update actualiza una cuenta clave.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers SET nipnas = $2, name = $3, search_name = lower(unaccent($3)), witel = $4,
			region = $5, segment = $6, address = $7, am_id = NULLIF($8, ''), updated_at = $9
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		c.ID, c.NIPNAS, c.Name, c.Witel, c.Region, c.Segment, c.Address, c.AMID, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}
