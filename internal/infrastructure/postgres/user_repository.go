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

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, email, password_hash, name, nik, id_sales, role, status,
		COALESCE(manager_id, ''), witel, region, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db dbtx
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: pool}
}

// newUserRepoTx variante sobre una transacción en curso.
func newUserRepoTx(tx pgx.Tx) *UserRepo {
	return &UserRepo{db: tx}
}

// Create persiste una nueva cuenta.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, name, nik, id_sales, role, status, manager_id, witel, region, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12, $13, $14)`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Name, user.NIK, user.IDSales,
		user.Role, user.Status, user.ManagerID, user.Witel, user.Region,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.queryOne(query, id, "get user by id")
}

// FindByUsername obtiene una cuenta por username.
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 LIMIT 1`
	return r.queryOne(query, username, "get user by username")
}

// FindByEmail obtiene una cuenta por email.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.queryOne(query, email, "get user by email")
}

func (r *UserRepo) queryOne(query, arg, op string) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Name, &u.NIK, &u.IDSales,
		&u.Role, &u.Status, &u.ManagerID, &u.Witel, &u.Region,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// Update actualiza una cuenta.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, name = $4, nik = $5, id_sales = $6,
			role = $7, status = $8, manager_id = NULLIF($9, ''), witel = $10, region = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.NIK, user.IDSales,
		user.Role, user.Status, user.ManagerID, user.Witel, user.Region, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ListManagers devuelve los managers activos, para el selector del registro.
func (r *UserRepo) ListManagers() ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 AND status = $2 ORDER BY name`
	return r.queryMany(query, "list managers", entity.RoleManager, entity.StatusActive)
}

// ListPending devuelve cuentas pendientes; managerID vacío lista todas.
func (r *UserRepo) ListPending(managerID string) ([]*entity.User, error) {
	if managerID == "" {
		query := `SELECT ` + userColumns + ` FROM users WHERE status = $1 ORDER BY created_at`
		return r.queryMany(query, "list pending users", entity.StatusPending)
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE status = $1 AND manager_id = $2 ORDER BY created_at`
	return r.queryMany(query, "list pending users by manager", entity.StatusPending, managerID)
}

func (r *UserRepo) queryMany(query, op string, args ...any) ([]*entity.User, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Name, &u.NIK, &u.IDSales,
			&u.Role, &u.Status, &u.ManagerID, &u.Witel, &u.Region,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
