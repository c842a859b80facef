package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/auth"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-local/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

func TestCanAccessView(t *testing.T) {
	for _, v := range auth.Views {
		assert.True(t, auth.CanAccessView(entity.RoleAdmin, v), "admin ve %s", v)
	}
	assert.True(t, auth.CanAccessView(entity.RoleEmployee, auth.ViewProducts))
	assert.True(t, auth.CanAccessView(entity.RoleEmployee, auth.ViewMovements))
	assert.False(t, auth.CanAccessView(entity.RoleEmployee, auth.ViewCategories))
	assert.False(t, auth.CanAccessView(entity.RoleEmployee, auth.ViewDashboard))
	assert.False(t, auth.CanAccessView("invitado", auth.ViewProducts))
}

func TestCanMutate(t *testing.T) {
	all := []auth.Operation{
		auth.OpCreateProduct, auth.OpUpdateProduct, auth.OpDeleteProduct, auth.OpRecordMovement,
		auth.OpCreateCategory, auth.OpUpdateCategory, auth.OpDeleteCategory,
	}
	for _, op := range all {
		assert.True(t, auth.CanMutate(entity.RoleAdmin, op), "admin puede %s", op)
	}

	allowed := map[auth.Operation]bool{auth.OpCreateProduct: true, auth.OpRecordMovement: true}
	for _, op := range all {
		assert.Equal(t, allowed[op], auth.CanMutate(entity.RoleEmployee, op), "empleado y %s", op)
	}
	assert.False(t, auth.CanMutate("", auth.OpCreateProduct))
}

func TestHomeViewYVistasPermitidas(t *testing.T) {
	assert.Equal(t, auth.ViewDashboard, auth.HomeView(entity.RoleAdmin))
	assert.Equal(t, auth.ViewProducts, auth.HomeView(entity.RoleEmployee))
	assert.Equal(t, []auth.View{auth.ViewProducts, auth.ViewMovements}, auth.AllowedViews(entity.RoleEmployee))

	d := auth.Describe(entity.User{Username: "admin", Name: "Administrador", Role: entity.RoleAdmin})
	assert.Equal(t, "Administrador", d.RoleLabel)
	assert.Equal(t, "dashboard", d.HomeView)
	assert.Len(t, d.Views, 4)
}

func TestSession_LoginLogout(t *testing.T) {
	kv := memory.NewKVStore()
	st := storage.New(kv, logger.Nop(), 0)
	s := auth.NewSession(st, logger.Nop())
	assert.Nil(t, s.Current())

	_, err := s.Login("admin", "mala")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = s.Login("nadie", "1234")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, s.Current())

	u, err := s.Login("empleado", "1234")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, u.Role)
	assert.Equal(t, "Empleado", u.Name)
	require.NotNil(t, s.Current())
	assert.Equal(t, "empleado", s.Current().Username)

	raw, err := kv.Get(context.Background(), storage.KeyCurrentUser)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "1234", "la contraseña no se persiste")

	s.Logout()
	assert.Nil(t, s.Current())
	_, err = kv.Get(context.Background(), storage.KeyCurrentUser)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	s.Logout()
}

func TestSession_SeRestauraAlReabrir(t *testing.T) {
	st := storage.New(memory.NewKVStore(), logger.Nop(), 0)
	_, err := auth.NewSession(st, logger.Nop()).Login("admin", "1234")
	require.NoError(t, err)

	again := auth.NewSession(st, logger.Nop())
	require.NotNil(t, again.Current())
	assert.Equal(t, entity.RoleAdmin, again.Current().Role)
}

func TestSession_DescartaSesionDesconocida(t *testing.T) {
	st := storage.New(memory.NewKVStore(), logger.Nop(), 0)
	require.True(t, st.Save(storage.KeyCurrentUser, entity.User{Username: "admin", Role: entity.RoleEmployee}))

	s := auth.NewSession(st, logger.Nop())
	assert.Nil(t, s.Current())
	assert.Nil(t, storage.Load[*entity.User](st, storage.KeyCurrentUser, nil))
}

func TestSession_DescartaRolInvalido(t *testing.T) {
	st := storage.New(memory.NewKVStore(), logger.Nop(), 0)
	require.True(t, st.Save(storage.KeyCurrentUser, entity.User{Username: "admin", Role: "root"}))

	assert.Nil(t, auth.NewSession(st, logger.Nop()).Current())
}
