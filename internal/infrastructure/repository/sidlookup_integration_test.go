package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shieldtrack/internal/domain/access"
	"shieldtrack/internal/domain/area"
	"shieldtrack/internal/domain/client"
	"shieldtrack/internal/domain/user"
	"shieldtrack/internal/infrastructure/persistence/models"
)

// The migrations create a literal sid column and every repository queries it
// by that name, so the auto-migrated schema has to agree.
func TestRepositories_SIDColumnLookups(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.ClientModel{},
		&models.AreaModel{},
		&models.UserModel{},
	))
	ctx := context.Background()

	clientRepo := NewClientRepository(db)
	c, err := client.NewClient("cl_abc123def456", "Acme Corporation", "acme")
	require.NoError(t, err)
	require.NoError(t, clientRepo.Save(ctx, c))

	got, err := clientRepo.FindBySID(ctx, "cl_abc123def456")
	require.NoError(t, err)
	assert.Equal(t, c.ID(), got.ID())

	areaRepo := NewAreaRepository(db)
	a, err := area.NewArea("ar_abc123def456", c.ID(), "Perimeter")
	require.NoError(t, err)
	require.NoError(t, areaRepo.Save(ctx, a))

	gotArea, err := areaRepo.FindBySIDScoped(ctx, "ar_abc123def456", access.UnrestrictedScope())
	require.NoError(t, err)
	assert.Equal(t, a.ID(), gotArea.ID())

	userRepo := NewUserRepository(db)
	clientID := c.ID()
	u, err := user.NewUser("us_abc123def456", "analyst@acme.example", "hash", "Acme Analyst", access.RoleAnalyst, &clientID)
	require.NoError(t, err)
	require.NoError(t, userRepo.Save(ctx, u))

	gotUser, err := userRepo.FindBySID(ctx, "us_abc123def456")
	require.NoError(t, err)
	assert.Equal(t, u.ID(), gotUser.ID())

	// Raw lookup by column name, same shape the SQL migrations use.
	var count int64
	require.NoError(t, db.Table("clients").Where("sid = ?", "cl_abc123def456").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
