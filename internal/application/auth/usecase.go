package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-kam-api/internal/application/dto"
	"github.com/jhoicas/crm-kam-api/internal/domain"
	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
	"github.com/jhoicas/crm-kam-api/internal/domain/routing"
	"github.com/jhoicas/crm-kam-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SessionStore es el contrato mínimo que auth necesita del Session Store:
// crear el slot de identidad en el login y destruirlo en el logout.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, id *entity.Identity) error
	Clear(ctx context.Context, sessionID string) error
}

// AuthUseCase casos de uso de autenticación: login, registro, logout.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions SessionStore
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessions SessionStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessions: sessions, jwtCfg: jwtCfg}
}

// Login verifica username/password, crea el slot de sesión y genera el JWT.
//
// returnTo es el path que el usuario pedía antes de ser redirigido a /login;
// el destino post-login lo decide la tabla de rutas (path original si no era
// "/", si no la home del rol).
//
// Un usuario sin rol válido es un error fatal de login (nunca se degrada a un
// rol por defecto): la cuenta está corrupta y debe corregirla un admin.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest, returnTo string) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status == entity.StatusPending {
		return nil, domain.ErrPendingAccount
	}
	if user.Status != entity.StatusActive {
		return nil, domain.ErrForbidden
	}
	if !entity.ValidRole(user.Role) {
		return nil, domain.ErrMissingRole
	}

	sessionID := uuid.New().String()
	if err := uc.sessions.Save(ctx, sessionID, entity.IdentityOf(user)); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, sessionID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:      token,
		User:       *ToUserResponse(user),
		RedirectTo: routing.PostLoginTarget(returnTo, user.Role),
	}, nil
}

// Register crea una cuenta en estado pending: no puede iniciar sesión hasta
// que su manager o un admin la apruebe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleSales
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.userRepo.FindByUsername(in.Username); existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	if existing, _ := uc.userRepo.FindByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if role == entity.RoleSales && in.ManagerID != "" {
		manager, err := uc.userRepo.GetByID(in.ManagerID)
		if err != nil {
			return nil, err
		}
		if manager == nil || manager.Role != entity.RoleManager {
			return nil, domain.ErrNotFound
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Username
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		NIK:          in.NIK,
		IDSales:      in.IDSales,
		Role:         role,
		Status:       entity.StatusPending,
		ManagerID:    in.ManagerID,
		Witel:        in.Witel,
		Region:       in.Region,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Managers devuelve los managers activos para el selector del registro.
func (uc *AuthUseCase) Managers() ([]dto.ManagerOption, error) {
	managers, err := uc.userRepo.ListManagers()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ManagerOption, 0, len(managers))
	for _, m := range managers {
		out = append(out, dto.ManagerOption{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

// Logout destruye el slot de sesión. Idempotente: un slot ya ausente no es un
// error.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return uc.sessions.Clear(ctx, sessionID)
}

// ToUserResponse mapea la entidad a su representación pública.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		NIK:       u.NIK,
		IDSales:   u.IDSales,
		Role:      u.Role,
		RoleLabel: entity.RoleLabels[u.Role],
		Status:    u.Status,
		ManagerID: u.ManagerID,
		Witel:     u.Witel,
		Region:    u.Region,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
