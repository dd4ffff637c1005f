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

var _ repository.AMProfileRepository = (*AMProfileRepo)(nil)

const amProfileColumns = `id, nik, id_sales, name, email, phone, witel, region, position, photo_ref, created_at, updated_at`

// AMProfileRepo implementación del puerto AMProfileRepository sobre PostgreSQL.
type AMProfileRepo struct {
	db dbtx
}

// NewAMProfileRepository construye el adaptador de persistencia para perfiles de AM.
func NewAMProfileRepository(pool *pgxpool.Pool) *AMProfileRepo {
	return &AMProfileRepo{db: pool}
}

// List perfiles paginados por nombre.
func (r *AMProfileRepo) List(limit, offset int) ([]*entity.AMProfile, error) {
	query := `SELECT ` + amProfileColumns + ` FROM am_profiles ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list am profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.AMProfile
	for rows.Next() {
		var p entity.AMProfile
		if err := rows.Scan(
			&p.ID, &p.NIK, &p.IDSales, &p.Name, &p.Email, &p.Phone, &p.Witel, &p.Region,
			&p.Position, &p.PhotoRef, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan am profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByKey busca por NIK o IDSales; cualquiera de los dos puede ir vacío.
func (r *AMProfileRepo) GetByKey(nik, idSales string) (*entity.AMProfile, error) {
	query := `
		SELECT ` + amProfileColumns + `
		FROM am_profiles
		WHERE ($1 <> '' AND nik = $1) OR ($2 <> '' AND id_sales = $2)
		LIMIT 1`
	var p entity.AMProfile
	err := r.db.QueryRow(context.Background(), query, nik, idSales).Scan(
		&p.ID, &p.NIK, &p.IDSales, &p.Name, &p.Email, &p.Phone, &p.Witel, &p.Region,
		&p.Position, &p.PhotoRef, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get am profile: %w", err)
	}
	return &p, nil
}

// Create persiste un perfil.
func (r *AMProfileRepo) Create(p *entity.AMProfile) error {
	query := `
		INSERT INTO am_profiles (id, nik, id_sales, name, email, phone, witel, region, position, photo_ref, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.NIK, p.IDSales, p.Name, p.Email, p.Phone, p.Witel, p.Region,
		p.Position, p.PhotoRef, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert am profile: %w", err)
	}
	return nil
}

// Update actualiza un perfil.
func (r *AMProfileRepo) Update(p *entity.AMProfile) error {
	query := `
		UPDATE am_profiles SET name = $2, email = $3, phone = $4, witel = $5, region = $6,
			position = $7, photo_ref = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.Name, p.Email, p.Phone, p.Witel, p.Region, p.Position, p.PhotoRef, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update am profile: %w", err)
	}
	return nil
}
