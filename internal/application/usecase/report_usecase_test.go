package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-kam-api/internal/domain"
	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
)

// fakeUserRepo implementa repository.UserRepository en memoria.
type fakeUserRepo struct {
	byID map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.byID[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.byID[id], nil
}
func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.byID[u.ID] = u; return nil }
func (r *fakeUserRepo) ListManagers() ([]*entity.User, error) {
	out := make([]*entity.User, 0)
	for _, u := range r.byID {
		if u.Role == entity.RoleManager && u.Status == entity.StatusActive {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *fakeUserRepo) ListPending(managerID string) ([]*entity.User, error) {
	out := make([]*entity.User, 0)
	for _, u := range r.byID {
		if u.Status != entity.StatusPending {
			continue
		}
		if managerID == "" || u.ManagerID == managerID {
			out = append(out, u)
		}
	}
	return out, nil
}

// fakeReportGenerator captura lo que recibe el puerto de generación.
type fakeReportGenerator struct {
	gotAM    *entity.User
	gotActs  []*entity.Activity
	rendered []byte
}

func (g *fakeReportGenerator) GenerateActivityReport(_ context.Context, am *entity.User, activities []*entity.Activity, _ time.Time) ([]byte, error) {
	g.gotAM = am
	g.gotActs = activities
	return g.rendered, nil
}

func TestActivityReport(t *testing.T) {
	t.Run("el ámbito del reporte es el id_sales del AM", func(t *testing.T) {
		users := &fakeUserRepo{byID: map[string]*entity.User{
			"u1": {ID: "u1", IDSales: "AM-1", Name: "Sari", Role: entity.RoleSales, Status: entity.StatusActive},
		}}
		acts := newFakeActivityRepo(
			&entity.Activity{ID: "a1", AMID: "AM-1", Status: entity.ActivityUpcoming, Date: "2026-03-12", Time: "09:00"},
			&entity.Activity{ID: "a2", AMID: "AM-1", Status: entity.ActivityCompleted, Date: "2026-03-01", Time: "09:00"},
			&entity.Activity{ID: "x1", AMID: "AM-otro", Status: entity.ActivityUpcoming, Date: "2026-03-12"},
		)
		gen := &fakeReportGenerator{rendered: []byte("%PDF")}
		uc := NewReportUseCase(acts, users, gen)

		out, err := uc.ActivityReport(context.Background(), "u1", testNow)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF"), out)
		assert.Equal(t, "Sari", gen.gotAM.Name)
		// Ordenado cronológicamente: la completada del 01-03 antes que la del 12-03.
		require.Len(t, gen.gotActs, 2)
		assert.Equal(t, "a2", gen.gotActs[0].ID)
		assert.Equal(t, "a1", gen.gotActs[1].ID)
	})

	t.Run("sin id_sales el ámbito cae al ID del usuario, como en el alta", func(t *testing.T) {
		// Cuenta admin: sus actividades se crean bajo su ID de usuario, y el
		// reporte debe buscarlas por la misma clave.
		users := &fakeUserRepo{byID: map[string]*entity.User{
			"admin-1": {ID: "admin-1", Name: "Root", Role: entity.RoleAdmin, Status: entity.StatusActive},
		}}
		acts := newFakeActivityRepo(
			&entity.Activity{ID: "a1", AMID: "admin-1", Status: entity.ActivityUpcoming, Date: "2026-03-12", Time: "09:00"},
		)
		gen := &fakeReportGenerator{rendered: []byte("%PDF")}
		uc := NewReportUseCase(acts, users, gen)

		_, err := uc.ActivityReport(context.Background(), "admin-1", testNow)
		require.NoError(t, err)
		require.Len(t, gen.gotActs, 1)
		assert.Equal(t, "a1", gen.gotActs[0].ID)
	})

	t.Run("usuario inexistente", func(t *testing.T) {
		users := &fakeUserRepo{byID: map[string]*entity.User{}}
		uc := NewReportUseCase(newFakeActivityRepo(), users, &fakeReportGenerator{})

		_, err := uc.ActivityReport(context.Background(), "nadie", testNow)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
