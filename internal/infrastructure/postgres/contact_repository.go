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

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación del puerto ContactRepository sobre PostgreSQL.
type ContactRepo struct {
	db dbtx
}

// NewContactRepository construye el adaptador de persistencia para contactos.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{db: pool}
}

// List lista contactos según el filtro.
func (r *ContactRepo) List(f repository.ContactFilter) ([]*entity.Contact, error) {
	query := `
		SELECT id, customer_id, name, position, email, phone, created_at, updated_at
		FROM contacts
		WHERE ($1 = '' OR lower(name) LIKE '%' || $1 || '%' OR lower(email) LIKE '%' || $1 || '%')
		  AND ($2 = '' OR customer_id = $2)
		ORDER BY name LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(context.Background(), query, f.Search, f.CustomerID, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contact
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(&c.ID, &c.CustomerID, &c.Name, &c.Position, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// GetByID obtiene un contacto por ID.
func (r *ContactRepo) GetByID(id string) (*entity.Contact, error) {
	query := `
		SELECT id, customer_id, name, position, email, phone, created_at, updated_at
		FROM contacts WHERE id = $1`
	var c entity.Contact
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.CustomerID, &c.Name, &c.Position, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact by id: %w", err)
	}
	return &c, nil
}

// Create persiste un contacto.
func (r *ContactRepo) Create(c *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, customer_id, name, position, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		c.ID, c.CustomerID, c.Name, c.Position, c.Email, c.Phone, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// Update actualiza un contacto.
func (r *ContactRepo) Update(c *entity.Contact) error {
	query := `
		UPDATE contacts SET name = $2, position = $3, email = $4, phone = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		c.ID, c.Name, c.Position, c.Email, c.Phone, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

// Delete elimina un contacto por ID.
func (r *ContactRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
