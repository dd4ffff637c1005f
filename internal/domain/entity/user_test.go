package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasRole(t *testing.T) {
	t.Run("identidad nil nunca autoriza", func(t *testing.T) {
		var id *Identity
		assert.False(t, id.HasRole(RoleAdmin))
	})

	t.Run("rol vacío nunca autoriza", func(t *testing.T) {
		assert.False(t, (&Identity{ID: "u1"}).HasRole(RoleSales, RoleManager, RoleAdmin))
	})

	t.Run("rol desconocido no autoriza", func(t *testing.T) {
		assert.False(t, (&Identity{Role: "superuser"}).HasRole(RoleAdmin))
	})

	t.Run("pertenencia al conjunto permitido", func(t *testing.T) {
		id := &Identity{Role: RoleManager}
		assert.True(t, id.HasRole(RoleManager))
		assert.True(t, id.HasRole(RoleSales, RoleManager))
		assert.False(t, id.HasRole(RoleSales, RoleAdmin))
	})

	t.Run("sin roles permitidos no autoriza", func(t *testing.T) {
		assert.False(t, (&Identity{Role: RoleAdmin}).HasRole())
	})
}

func TestValidRole(t *testing.T) {
	for _, r := range AllRoles() {
		assert.True(t, ValidRole(r), r)
	}
	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("superuser"))
}

func TestIdentityOf(t *testing.T) {
	assert.Nil(t, IdentityOf(nil))

	u := &User{ID: "u1", Name: "Sari", Email: "sari@corp.id", Role: RoleSales, PasswordHash: "secreto"}
	id := IdentityOf(u)
	assert.Equal(t, &Identity{ID: "u1", Name: "Sari", Email: "sari@corp.id", Role: RoleSales}, id)
}

func TestRoleLabels(t *testing.T) {
	assert.Equal(t, "ADMINISTRATOR", RoleLabels[RoleAdmin])
	assert.Equal(t, "Account Manager", RoleLabels[RoleSales])
	assert.Equal(t, "Manager Business Service", RoleLabels[RoleManager])
}
