package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-kam-api/internal/application/dto"
	"github.com/jhoicas/crm-kam-api/internal/domain"
	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/crm-kam-api/pkg/jwt"
)

var testJWT = JWTConfig{Secret: "secret-de-pruebas", ExpMinutes: 60, Issuer: "crm-kam-test"}

// fakeUserRepo implementa repository.UserRepository en memoria.
type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error            { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) ListManagers() ([]*entity.User, error) {
	out := make([]*entity.User, 0)
	for _, u := range r.users {
		if u.Role == entity.RoleManager && u.Status == entity.StatusActive {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *fakeUserRepo) ListPending(string) ([]*entity.User, error) { return nil, nil }

// fakeSessionStore registra los slots creados y destruidos.
type fakeSessionStore struct {
	saved   map[string]*entity.Identity
	cleared []string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{saved: make(map[string]*entity.Identity)}
}

func (s *fakeSessionStore) Save(_ context.Context, sessionID string, id *entity.Identity) error {
	s.saved[sessionID] = id
	return nil
}

func (s *fakeSessionStore) Clear(_ context.Context, sessionID string) error {
	s.cleared = append(s.cleared, sessionID)
	return nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func activeUser(t *testing.T, role string) *entity.User {
	t.Helper()
	return &entity.User{
		ID:           "u1",
		Username:     "sari",
		Email:        "sari@corp.id",
		Name:         "Sari",
		PasswordHash: hashOf(t, "correcta"),
		Role:         role,
		Status:       entity.StatusActive,
	}
}

func TestLogin_Exitoso(t *testing.T) {
	user := activeUser(t, entity.RoleSales)
	sessions := newFakeSessionStore()
	uc := NewAuthUseCase(newFakeUserRepo(user), sessions, testJWT)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "sari", Password: "correcta"}, "")
	require.NoError(t, err)

	// El token lleva los claims del usuario y la sesión recién creada.
	userID, role, sessionID, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, entity.RoleSales, role)
	require.NotEmpty(t, sessionID)

	// El slot de sesión guarda la Identity sin hash.
	id := sessions.saved[sessionID]
	require.NotNil(t, id)
	assert.Equal(t, &entity.Identity{ID: "u1", Name: "Sari", Email: "sari@corp.id", Role: entity.RoleSales}, id)

	assert.Equal(t, "sari", out.User.Username)
	assert.Equal(t, entity.StatusActive, out.User.Status)
}

func TestLogin_RedirectPostLogin(t *testing.T) {
	t.Run("el path que se pedía antes del login se conserva", func(t *testing.T) {
		uc := NewAuthUseCase(newFakeUserRepo(activeUser(t, entity.RoleSales)), newFakeSessionStore(), testJWT)
		out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "sari", Password: "correcta"}, "/customers")
		require.NoError(t, err)
		assert.Equal(t, "/customers", out.RedirectTo)
	})

	t.Run("sin path pedido cada rol va a su home", func(t *testing.T) {
		uc := NewAuthUseCase(newFakeUserRepo(activeUser(t, entity.RoleManager)), newFakeSessionStore(), testJWT)
		out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "sari", Password: "correcta"}, "")
		require.NoError(t, err)
		assert.Equal(t, "/manager", out.RedirectTo)
	})
}

func TestLogin_Errores(t *testing.T) {
	cases := []struct {
		name    string
		user    *entity.User
		in      dto.LoginRequest
		wantErr error
	}{
		{
			name:    "usuario inexistente",
			user:    activeUser(t, entity.RoleSales),
			in:      dto.LoginRequest{Username: "nadie", Password: "correcta"},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name:    "password incorrecta",
			user:    activeUser(t, entity.RoleSales),
			in:      dto.LoginRequest{Username: "sari", Password: "incorrecta"},
			wantErr: domain.ErrUnauthorized,
		},
		{
			name: "cuenta pendiente de aprobación",
			user: func() *entity.User {
				u := activeUser(t, entity.RoleSales)
				u.Status = entity.StatusPending
				return u
			}(),
			in:      dto.LoginRequest{Username: "sari", Password: "correcta"},
			wantErr: domain.ErrPendingAccount,
		},
		{
			name: "cuenta rechazada",
			user: func() *entity.User {
				u := activeUser(t, entity.RoleSales)
				u.Status = entity.StatusRejected
				return u
			}(),
			in:      dto.LoginRequest{Username: "sari", Password: "correcta"},
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "usuario sin rol es error fatal, nunca un rol por defecto",
			user:    activeUser(t, ""),
			in:      dto.LoginRequest{Username: "sari", Password: "correcta"},
			wantErr: domain.ErrMissingRole,
		},
		{
			name:    "rol fuera del conjunto cerrado también",
			user:    activeUser(t, "superuser"),
			in:      dto.LoginRequest{Username: "sari", Password: "correcta"},
			wantErr: domain.ErrMissingRole,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sessions := newFakeSessionStore()
			uc := NewAuthUseCase(newFakeUserRepo(tc.user), sessions, testJWT)

			_, err := uc.Login(context.Background(), tc.in, "")
			assert.ErrorIs(t, err, tc.wantErr)
			// Un login fallido nunca deja un slot de sesión creado.
			assert.Empty(t, sessions.saved)
		})
	}
}

func TestRegister(t *testing.T) {
	manager := &entity.User{ID: "m1", Username: "budi", Email: "budi@corp.id", Role: entity.RoleManager, Status: entity.StatusActive}

	t.Run("queda pendiente, con hash y manager asignado", func(t *testing.T) {
		repo := newFakeUserRepo(manager)
		uc := NewAuthUseCase(repo, newFakeSessionStore(), testJWT)

		out, err := uc.Register(dto.RegisterRequest{
			Username:  "sari",
			Email:     "sari@corp.id",
			Password:  "secreta123",
			ManagerID: "m1",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, out.Status)
		assert.Equal(t, entity.RoleSales, out.Role)
		assert.Equal(t, "m1", out.ManagerID)

		stored := repo.users[out.ID]
		require.NotNil(t, stored)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
	})

	t.Run("username ocupado", func(t *testing.T) {
		uc := NewAuthUseCase(newFakeUserRepo(activeUser(t, entity.RoleSales)), newFakeSessionStore(), testJWT)
		_, err := uc.Register(dto.RegisterRequest{Username: "sari", Email: "otra@corp.id", Password: "x12345678"})
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("email ocupado", func(t *testing.T) {
		uc := NewAuthUseCase(newFakeUserRepo(activeUser(t, entity.RoleSales)), newFakeSessionStore(), testJWT)
		_, err := uc.Register(dto.RegisterRequest{Username: "otro", Email: "sari@corp.id", Password: "x12345678"})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("manager inexistente o sin rol manager", func(t *testing.T) {
		uc := NewAuthUseCase(newFakeUserRepo(activeUser(t, entity.RoleSales)), newFakeSessionStore(), testJWT)
		_, err := uc.Register(dto.RegisterRequest{Username: "otro", Email: "otro@corp.id", Password: "x12345678", ManagerID: "fantasma"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("campos obligatorios", func(t *testing.T) {
		uc := NewAuthUseCase(newFakeUserRepo(), newFakeSessionStore(), testJWT)
		_, err := uc.Register(dto.RegisterRequest{Username: "sari"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestLogout(t *testing.T) {
	sessions := newFakeSessionStore()
	uc := NewAuthUseCase(newFakeUserRepo(), sessions, testJWT)

	require.NoError(t, uc.Logout(context.Background(), "s1"))
	assert.Equal(t, []string{"s1"}, sessions.cleared)

	// Sin session_id (token legacy) no hay slot que borrar ni error.
	require.NoError(t, uc.Logout(context.Background(), ""))
	assert.Len(t, sessions.cleared, 1)
}
