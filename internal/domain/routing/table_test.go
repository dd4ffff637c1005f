package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
)

func TestNewTable_Validaciones(t *testing.T) {
	t.Run("path duplicado se rechaza al construir", func(t *testing.T) {
		_, err := NewTable([]Entry{
			{Path: "/login", Component: "Login", Public: true},
			{Path: "/login", Component: "OtroLogin", Public: true},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicado")
	})

	t.Run("ruta protegida sin roles se rechaza", func(t *testing.T) {
		_, err := NewTable([]Entry{{Path: "/x", Component: "X"}})
		assert.Error(t, err)
	})

	t.Run("rol desconocido se rechaza", func(t *testing.T) {
		_, err := NewTable([]Entry{{Path: "/x", Component: "X", Roles: []string{"superuser"}}})
		assert.Error(t, err)
	})

	t.Run("path vacío se rechaza", func(t *testing.T) {
		_, err := NewTable([]Entry{{Path: "", Component: "X", Public: true}})
		assert.Error(t, err)
	})
}

func TestDefault_TablaValida(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)
	assert.NotEmpty(t, table.Entries())
}

func TestMatch(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	t.Run("path exacto", func(t *testing.T) {
		e, ok := table.Match("/aktivitas")
		require.True(t, ok)
		assert.Equal(t, "ActivitiesPage", e.Component)
	})

	t.Run("segmento :param acepta cualquier valor", func(t *testing.T) {
		e, ok := table.Match("/customers/42")
		require.True(t, ok)
		assert.Equal(t, "CustomerDetail", e.Component)
	})

	t.Run("params anidados", func(t *testing.T) {
		e, ok := table.Match("/CSG/abc/7-guidance")
		require.True(t, ok)
		assert.Equal(t, "GuidanceDetailPage", e.Component)
	})

	t.Run("path desconocido no matchea", func(t *testing.T) {
		_, ok := table.Match("/no-existe")
		assert.False(t, ok)
	})
}

func TestDecide(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	sales := &entity.Identity{ID: "u1", Role: entity.RoleSales}
	admin := &entity.Identity{ID: "u2", Role: entity.RoleAdmin}

	t.Run("ruta pública se monta incluso sin identidad", func(t *testing.T) {
		out := table.Decide("/login", nil)
		assert.Equal(t, StateRender, out.State)
		assert.Equal(t, "Login", out.Component)
	})

	t.Run("sin identidad redirige a /login conservando el path", func(t *testing.T) {
		out := table.Decide("/customers", nil)
		assert.Equal(t, StateUnauthenticated, out.State)
		assert.Equal(t, LoginPath, out.RedirectTo)
		assert.Equal(t, "/customers", out.ReturnTo)
	})

	t.Run("AM en ruta de manager redirige a /403", func(t *testing.T) {
		out := table.Decide("/manager", sales)
		assert.Equal(t, StateUnauthorized, out.State)
		assert.Equal(t, NotAuthorizedPath, out.RedirectTo)
	})

	t.Run("rol permitido renderiza", func(t *testing.T) {
		out := table.Decide("/customers", sales)
		assert.Equal(t, StateRender, out.State)
		assert.Equal(t, "CustomersPage", out.Component)
	})

	t.Run("rol malformado nunca autoriza ni rompe", func(t *testing.T) {
		out := table.Decide("/customers", &entity.Identity{ID: "u3", Role: "superuser"})
		assert.Equal(t, StateUnauthorized, out.State)
	})

	t.Run("identidad sin rol en ruta protegida va a /403", func(t *testing.T) {
		out := table.Decide("/customers", &entity.Identity{ID: "u4"})
		assert.Equal(t, StateUnauthorized, out.State)
	})

	t.Run("path fuera de la tabla cae al comodín /", func(t *testing.T) {
		out := table.Decide("/ruta/inventada", admin)
		assert.Equal(t, StateNotFound, out.State)
		assert.Equal(t, RootPath, out.RedirectTo)
	})
}

func TestPostLoginTarget(t *testing.T) {
	t.Run("el path solicitado manda si no era el raíz", func(t *testing.T) {
		assert.Equal(t, "/customers", PostLoginTarget("/customers", entity.RoleManager))
	})

	t.Run("home por rol cuando se pedía el raíz", func(t *testing.T) {
		assert.Equal(t, "/manager", PostLoginTarget("/", entity.RoleManager))
		assert.Equal(t, "/executive", PostLoginTarget("/", entity.RoleAdmin))
		assert.Equal(t, "/", PostLoginTarget("/", entity.RoleSales))
	})

	t.Run("sin path solicitado también cae a la home del rol", func(t *testing.T) {
		assert.Equal(t, "/manager", PostLoginTarget("", entity.RoleManager))
	})
}
