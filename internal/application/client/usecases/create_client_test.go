package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/client"
	"shieldtrack/internal/shared/errors"
)

func uintPtr(v uint) *uint { return &v }

func TestCreateClientUseCase_Execute_Success(t *testing.T) {
	var saved *client.Client
	repo := &mockClientRepository{
		SaveFunc: func(ctx context.Context, c *client.Client) error {
			saved = c
			return nil
		},
	}

	principal := access.NewPrincipal(1, access.RoleOwner, nil, nil)
	uc := NewCreateClientUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateClientCommand{
		Principal: principal,
		Name:      "  Acme   Corp  ",
		TenantID:  "acme",
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", result.Name)
	assert.True(t, result.IsActive)
	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.SID())
}

func TestCreateClientUseCase_Execute_NonGlobalDenied(t *testing.T) {
	tests := []struct {
		name      string
		role      access.Role
		clientID  *uint
	}{
		{"client_admin", access.RoleClientAdmin, uintPtr(7)},
		{"area_admin", access.RoleAreaAdmin, uintPtr(7)},
		{"analyst", access.RoleAnalyst, uintPtr(7)},
		{"viewer", access.RoleViewer, uintPtr(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal := access.NewPrincipal(1, tt.role, tt.clientID, nil)
			uc := NewCreateClientUseCase(&mockClientRepository{}, &mockLogger{})

			_, err := uc.Execute(context.Background(), CreateClientCommand{
				Principal: principal,
				Name:      "Acme",
				TenantID:  "acme",
			})

			require.Error(t, err)
			assert.True(t, errors.IsForbiddenError(err))
		})
	}
}

func TestCreateClientUseCase_Execute_DuplicateTenant(t *testing.T) {
	repo := &mockClientRepository{
		SaveFunc: func(ctx context.Context, c *client.Client) error {
			return errors.NewInternalError("Duplicate entry 'acme' for key 'tenant_id'")
		},
	}

	principal := access.NewPrincipal(1, access.RolePlatformAdmin, nil, nil)
	uc := NewCreateClientUseCase(repo, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateClientCommand{
		Principal: principal,
		Name:      "Acme",
		TenantID:  "acme",
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}
