package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/microempresas-api/internal/domain"
	"github.com/jhoicas/microempresas-api/internal/domain/access"
	"github.com/jhoicas/microempresas-api/internal/domain/entity"
)

func ptr(v int64) *int64 { return &v }

func TestForCaller_SuperAdminSinFiltroVeTodo(t *testing.T) {
	s, err := access.ForCaller(entity.Caller{Rol: entity.RolSuperAdmin}, nil)
	require.NoError(t, err)
	assert.Nil(t, s.MicroempresaID)
	assert.True(t, s.JoinEmpresa)
}

func TestForCaller_SuperAdminPuedeFiltrarPorMicroempresa(t *testing.T) {
	s, err := access.ForCaller(entity.Caller{Rol: entity.RolSuperAdmin}, ptr(9))
	require.NoError(t, err)
	require.NotNil(t, s.MicroempresaID)
	assert.Equal(t, int64(9), *s.MicroempresaID)
}

func TestForCaller_RolDeTenantIgnoraFiltroSolicitado(t *testing.T) {
	for _, rol := range []string{entity.RolAdministrador, entity.RolVendedor} {
		t.Run(rol, func(t *testing.T) {
			s, err := access.ForCaller(entity.Caller{Rol: rol, MicroempresaID: ptr(1)}, ptr(2))
			require.NoError(t, err)
			require.NotNil(t, s.MicroempresaID)
			assert.Equal(t, int64(1), *s.MicroempresaID, "el filtro de otra microempresa no debe tener efecto")
			assert.False(t, s.JoinEmpresa)
		})
	}
}

func TestForCaller_RolDeTenantSinMicroempresa(t *testing.T) {
	_, err := access.ForCaller(entity.Caller{Rol: entity.RolVendedor}, nil)
	assert.ErrorIs(t, err, domain.ErrNoTenant)
}

func TestForCaller_NoComparteMemoriaConCaller(t *testing.T) {
	own := int64(5)
	c := entity.Caller{Rol: entity.RolAdministrador, MicroempresaID: &own}
	s, err := access.ForCaller(c, nil)
	require.NoError(t, err)
	*s.MicroempresaID = 99
	assert.Equal(t, int64(5), own)
}

func TestRequireSuperAdmin(t *testing.T) {
	assert.NoError(t, access.RequireSuperAdmin(entity.Caller{Rol: entity.RolSuperAdmin}))
	assert.ErrorIs(t, access.RequireSuperAdmin(entity.Caller{Rol: entity.RolAdministrador}), domain.ErrForbidden)
}
