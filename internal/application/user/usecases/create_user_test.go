package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/client"
	"shieldtrack/internal/domain/user"
	"shieldtrack/internal/shared/errors"
)

func uintPtr(v uint) *uint { return &v }

func testClient(t *testing.T, id uint) *client.Client {
	t.Helper()
	now := time.Now().UTC()
	c, err := client.ReconstructClient(id, "cl_acme1", "Acme Corp", "acme", true, now, now)
	require.NoError(t, err)
	return c
}

func TestCreateUserUseCase_Execute_ClientAdminCreatesAnalyst(t *testing.T) {
	var saved *user.User
	userRepo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			saved = u
			return nil
		},
	}
	clientRepo := &mockClientRepository{
		FindBySIDScopedFunc: func(ctx context.Context, sid string, scope access.Scope) (*client.Client, error) {
			return testClient(t, 7), nil
		},
	}

	principal := access.NewPrincipal(1, access.RoleClientAdmin, uintPtr(7), nil)
	uc := NewCreateUserUseCase(userRepo, clientRepo, &mockHasher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateUserCommand{
		Principal: principal,
		Email:     "New.Analyst@Acme.example",
		Password:  "correct-horse",
		Name:      "New Analyst",
		Role:      "analyst",
		ClientSID: "cl_acme1",
	})

	require.NoError(t, err)
	assert.Equal(t, "new.analyst@acme.example", result.Email)
	assert.Equal(t, access.RoleAnalyst.String(), result.Role)
	require.NotNil(t, result.ClientID)
	assert.Equal(t, uint(7), *result.ClientID)
	require.NotNil(t, saved)
	assert.Equal(t, "hashed:correct-horse", saved.PasswordHash())
}

func TestCreateUserUseCase_Execute_ClientAdminCannotCreateGlobal(t *testing.T) {
	principal := access.NewPrincipal(1, access.RoleClientAdmin, uintPtr(7), nil)
	uc := NewCreateUserUseCase(&mockUserRepository{}, &mockClientRepository{}, &mockHasher{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Principal: principal,
		Email:     "x@acme.example",
		Password:  "longenough",
		Name:      "X",
		Role:      "platform_admin",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCreateUserUseCase_Execute_AnalystCannotCreate(t *testing.T) {
	principal := access.NewPrincipal(1, access.RoleAnalyst, uintPtr(7), []uint{3})
	uc := NewCreateUserUseCase(&mockUserRepository{}, &mockClientRepository{}, &mockHasher{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Principal: principal,
		Email:     "x@acme.example",
		Password:  "longenough",
		Name:      "X",
		Role:      "viewer",
		ClientSID: "cl_acme1",
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCreateUserUseCase_Execute_UnknownRoleRejected(t *testing.T) {
	principal := access.NewPrincipal(1, access.RoleOwner, nil, nil)
	uc := NewCreateUserUseCase(&mockUserRepository{}, &mockClientRepository{}, &mockHasher{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), CreateUserCommand{
		Principal: principal,
		Email:     "x@acme.example",
		Password:  "longenough",
		Name:      "X",
		Role:      "superuser",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateUserUseCase_Execute_GlobalRoleNeedsNoClient(t *testing.T) {
	userRepo := &mockUserRepository{}
	principal := access.NewPrincipal(1, access.RoleOwner, nil, nil)
	uc := NewCreateUserUseCase(userRepo, &mockClientRepository{}, &mockHasher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateUserCommand{
		Principal: principal,
		Email:     "ops@shieldtrack.example",
		Password:  "longenough",
		Name:      "Ops",
		Role:      "platform_admin",
	})

	require.NoError(t, err)
	assert.Nil(t, result.ClientID)
}
