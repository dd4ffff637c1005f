package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-kam-api/internal/application/dto"
	"github.com/jhoicas/crm-kam-api/internal/domain"
	domactivity "github.com/jhoicas/crm-kam-api/internal/domain/activity"
	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
	"github.com/jhoicas/crm-kam-api/internal/domain/outlook"
)

// Reloj fijo: 2026-03-10 12:00 UTC.
var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// fakeActivityRepo implementa repository.ActivityRepository en memoria.
type fakeActivityRepo struct {
	items   map[string]*entity.Activity
	updates int
}

func newFakeActivityRepo(items ...*entity.Activity) *fakeActivityRepo {
	r := &fakeActivityRepo{items: make(map[string]*entity.Activity)}
	for _, a := range items {
		r.items[a.ID] = a
	}
	return r
}

func (r *fakeActivityRepo) ListByAM(amID string) ([]*entity.Activity, error) {
	out := make([]*entity.Activity, 0)
	for _, a := range r.items {
		if a.AMID == amID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeActivityRepo) GetByID(id string) (*entity.Activity, error) {
	return r.items[id], nil
}

func (r *fakeActivityRepo) Create(a *entity.Activity) error {
	r.items[a.ID] = a
	return nil
}

func (r *fakeActivityRepo) Update(a *entity.Activity) error {
	r.updates++
	r.items[a.ID] = a
	return nil
}

func (r *fakeActivityRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func TestActivityList_ContadoresYFiltro(t *testing.T) {
	repo := newFakeActivityRepo(
		&entity.Activity{ID: "a1", AMID: "AM-1", Status: entity.ActivityUpcoming, Date: "2026-03-08", Time: "09:00"}, // needs_update
		&entity.Activity{ID: "a2", AMID: "AM-1", Status: entity.ActivityUpcoming, Date: "2026-03-15", Time: "09:00"}, // upcoming
		&entity.Activity{ID: "a3", AMID: "AM-1", Status: entity.ActivityCompleted, Date: "2026-03-01", Time: "09:00"},
		&entity.Activity{ID: "x1", AMID: "AM-otro", Status: entity.ActivityUpcoming, Date: "2026-03-15", Time: "09:00"},
	)
	uc := NewActivityUseCase(repo)

	t.Run("sin filtro devuelve todas las del AM con contadores", func(t *testing.T) {
		out, err := uc.List("AM-1", "", testNow)
		require.NoError(t, err)
		assert.Len(t, out.Data, 3)
		assert.Equal(t, 1, out.Counts.NeedsUpdate)
		assert.Equal(t, 1, out.Counts.Upcoming)
	})

	t.Run("filtro por estado derivado", func(t *testing.T) {
		out, err := uc.List("AM-1", domactivity.StatusNeedsUpdate, testNow)
		require.NoError(t, err)
		require.Len(t, out.Data, 1)
		assert.Equal(t, "a1", out.Data[0].ID)
		// Los contadores siempre describen la colección completa, no el filtro.
		assert.Equal(t, 1, out.Counts.Upcoming)
	})

	t.Run("cada fila lleva su estado derivado y etiqueta", func(t *testing.T) {
		out, err := uc.List("AM-1", domactivity.StatusCompleted, testNow)
		require.NoError(t, err)
		require.Len(t, out.Data, 1)
		assert.Equal(t, domactivity.StatusCompleted, out.Data[0].ComputedStatus)
		assert.Equal(t, domactivity.StatusLabels[domactivity.StatusCompleted], out.Data[0].StatusLabel)
	})
}

func TestActivityCreate(t *testing.T) {
	repo := newFakeActivityRepo()
	uc := NewActivityUseCase(repo)

	t.Run("crea con defaults y campos de auditoría", func(t *testing.T) {
		out, err := uc.Create("AM-1", "user-1", dto.UpsertActivityRequest{
			Title: "Visita cliente",
			Date:  "2026-03-20",
		}, testNow)
		require.NoError(t, err)
		assert.NotEmpty(t, out.ID)
		assert.Equal(t, "AM-1", out.AMID)
		assert.Equal(t, entity.ActivityUpcoming, out.Status)
		assert.Equal(t, domactivity.StatusUpcoming, out.ComputedStatus)

		stored := repo.items[out.ID]
		require.NotNil(t, stored)
		assert.Equal(t, "user-1", stored.CreatedBy)
		assert.Equal(t, testNow, stored.CreatedAt)
	})

	t.Run("sin título es inválido", func(t *testing.T) {
		_, err := uc.Create("AM-1", "user-1", dto.UpsertActivityRequest{Date: "2026-03-20"}, testNow)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("sin fecha es inválido", func(t *testing.T) {
		_, err := uc.Create("AM-1", "user-1", dto.UpsertActivityRequest{Title: "X"}, testNow)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("estado desconocido es inválido", func(t *testing.T) {
		_, err := uc.Create("AM-1", "user-1", dto.UpsertActivityRequest{
			Title: "X", Date: "2026-03-20", Status: "archivada",
		}, testNow)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestActivityUpdate(t *testing.T) {
	repo := newFakeActivityRepo(&entity.Activity{
		ID: "a1", AMID: "AM-1", Title: "Original",
		Status: entity.ActivityUpcoming, Date: "2026-03-20", Time: "10:00",
	})
	uc := NewActivityUseCase(repo)

	t.Run("actualiza campos y marca como completada", func(t *testing.T) {
		out, err := uc.Update("a1", dto.UpsertActivityRequest{
			Title:   "Editada",
			Date:    "2026-03-05",
			Time:    "11:00",
			Status:  entity.ActivityCompleted,
			Outcome: "Cerrado",
		}, testNow)
		require.NoError(t, err)
		assert.Equal(t, "Editada", out.Title)
		assert.Equal(t, domactivity.StatusCompleted, out.ComputedStatus)
		assert.Equal(t, testNow, repo.items["a1"].UpdatedAt)
	})

	t.Run("inexistente devuelve not found", func(t *testing.T) {
		_, err := uc.Update("no-existe", dto.UpsertActivityRequest{Title: "X"}, testNow)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestActivityUpdateDocuments(t *testing.T) {
	pastRecent := &entity.Activity{
		ID: "ok", AMID: "AM-1", WithCustomer: true,
		Status: entity.ActivityUpcoming, Date: "2026-03-08", Time: "09:00",
	}
	tooOld := &entity.Activity{
		ID: "vieja", AMID: "AM-1", WithCustomer: true,
		Status: entity.ActivityUpcoming, Date: "2026-02-20", Time: "09:00",
	}
	noCustomer := &entity.Activity{
		ID: "interna", AMID: "AM-1", WithCustomer: false,
		Status: entity.ActivityUpcoming, Date: "2026-03-08", Time: "09:00",
	}
	repo := newFakeActivityRepo(pastRecent, tooOld, noCustomer)
	uc := NewActivityUseCase(repo)

	t.Run("dentro de la ventana adjunta evidencia", func(t *testing.T) {
		out, err := uc.UpdateDocuments("ok", dto.UpdateDocumentsRequest{
			ProofRef: "s3://proof.jpg",
			MomRef:   "s3://mom.pdf",
		}, testNow)
		require.NoError(t, err)
		assert.Equal(t, "s3://proof.jpg", out.ProofRef)
		assert.Equal(t, "s3://mom.pdf", out.MomRef)
	})

	t.Run("la evidencia previa se conserva si el campo llega vacío", func(t *testing.T) {
		out, err := uc.UpdateDocuments("ok", dto.UpdateDocumentsRequest{MomRef: "s3://mom-v2.pdf"}, testNow)
		require.NoError(t, err)
		assert.Equal(t, "s3://proof.jpg", out.ProofRef)
		assert.Equal(t, "s3://mom-v2.pdf", out.MomRef)
	})

	t.Run("pasados los 7 días la ventana está cerrada", func(t *testing.T) {
		_, err := uc.UpdateDocuments("vieja", dto.UpdateDocumentsRequest{ProofRef: "x"}, testNow)
		assert.ErrorIs(t, err, domain.ErrEditWindowClosed)
	})

	t.Run("sin cliente no hay evidencia editable", func(t *testing.T) {
		_, err := uc.UpdateDocuments("interna", dto.UpdateDocumentsRequest{ProofRef: "x"}, testNow)
		assert.ErrorIs(t, err, domain.ErrEditWindowClosed)
	})

	t.Run("inexistente devuelve not found", func(t *testing.T) {
		_, err := uc.UpdateDocuments("nada", dto.UpdateDocumentsRequest{}, testNow)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestActivityOutlookLink(t *testing.T) {
	repo := newFakeActivityRepo(
		&entity.Activity{ID: "a1", AMID: "AM-1", Title: "Kickoff", Status: entity.ActivityUpcoming, Date: "2026-03-20", Time: "10:00"},
		&entity.Activity{ID: "sin-fecha", AMID: "AM-1", Title: "Sin fecha", Status: entity.ActivityUpcoming},
	)
	uc := NewActivityUseCase(repo)

	t.Run("genera el deeplink y marca outlook_added una sola vez", func(t *testing.T) {
		out, err := uc.OutlookLink("a1", testNow)
		require.NoError(t, err)
		assert.Contains(t, out.URL, "outlook.office.com")
		assert.True(t, out.OutlookAdded)
		assert.True(t, repo.items["a1"].OutlookAdded)

		before := repo.updates
		out2, err := uc.OutlookLink("a1", testNow)
		require.NoError(t, err)
		assert.Equal(t, out.URL, out2.URL)
		// Ya marcada: la segunda llamada no vuelve a escribir.
		assert.Equal(t, before, repo.updates)
	})

	t.Run("sin fecha devuelve el marcador sin marcar la actividad", func(t *testing.T) {
		out, err := uc.OutlookLink("sin-fecha", testNow)
		require.NoError(t, err)
		assert.Equal(t, outlook.Placeholder, out.URL)
		assert.False(t, out.OutlookAdded)
		assert.False(t, repo.items["sin-fecha"].OutlookAdded)
	})

	t.Run("inexistente devuelve not found", func(t *testing.T) {
		_, err := uc.OutlookLink("nada", testNow)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestActivityDelete(t *testing.T) {
	repo := newFakeActivityRepo(&entity.Activity{ID: "a1", AMID: "AM-1", Status: entity.ActivityUpcoming, Date: "2026-03-20"})
	uc := NewActivityUseCase(repo)

	require.NoError(t, uc.Delete("a1"))
	assert.Nil(t, repo.items["a1"])

	assert.ErrorIs(t, uc.Delete("a1"), domain.ErrNotFound)
}
