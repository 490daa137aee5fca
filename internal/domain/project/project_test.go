package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActiveProject(t *testing.T) *Project {
	t.Helper()
	p, err := NewProject("pr_test123", 1, 2, "External Pentest Q3", "Scope: public web apps")
	require.NoError(t, err)
	return p
}

func TestNewProject(t *testing.T) {
	t.Run("creates active project", func(t *testing.T) {
		p := newActiveProject(t)

		assert.Equal(t, StatusActive, p.Status())
		assert.Equal(t, uint(1), p.ClientID())
		assert.Equal(t, uint(2), p.AreaID())
		assert.Nil(t, p.ClosedAt())
		assert.True(t, p.FindingsMutable())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		tests := []struct {
			name     string
			sid      string
			clientID uint
			areaID   uint
			title    string
		}{
			{"empty sid", "", 1, 2, "x"},
			{"zero client", "pr_a", 0, 2, "x"},
			{"zero area", "pr_a", 1, 0, "x"},
			{"empty name", "pr_a", 1, 2, ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewProject(tt.sid, tt.clientID, tt.areaID, tt.title, "")
				assert.Error(t, err)
			})
		}
	})
}

func TestProjectClose(t *testing.T) {
	t.Run("active to closed sets closedAt", func(t *testing.T) {
		p := newActiveProject(t)

		require.NoError(t, p.Close())

		assert.Equal(t, StatusClosed, p.Status())
		require.NotNil(t, p.ClosedAt())
		assert.False(t, p.FindingsMutable())
	})

	t.Run("close is idempotent", func(t *testing.T) {
		p := newActiveProject(t)
		require.NoError(t, p.Close())
		first := p.ClosedAt()

		require.NoError(t, p.Close())

		assert.Equal(t, first, p.ClosedAt())
	})

	t.Run("archived project cannot be closed", func(t *testing.T) {
		p := newActiveProject(t)
		require.NoError(t, p.Archive())

		err := p.Close()

		assert.Error(t, err)
		assert.Equal(t, StatusArchived, p.Status())
	})
}

func TestProjectArchive(t *testing.T) {
	t.Run("active to archived", func(t *testing.T) {
		p := newActiveProject(t)

		require.NoError(t, p.Archive())

		assert.Equal(t, StatusArchived, p.Status())
	})

	t.Run("closed to archived keeps closedAt", func(t *testing.T) {
		p := newActiveProject(t)
		require.NoError(t, p.Close())

		require.NoError(t, p.Archive())

		assert.Equal(t, StatusArchived, p.Status())
		assert.NotNil(t, p.ClosedAt())
	})
}

func TestProjectUpdateDetails(t *testing.T) {
	t.Run("updates active project", func(t *testing.T) {
		p := newActiveProject(t)

		require.NoError(t, p.UpdateDetails("Internal Review", "updated"))

		assert.Equal(t, "Internal Review", p.Name())
	})

	t.Run("rejected once closed", func(t *testing.T) {
		p := newActiveProject(t)
		require.NoError(t, p.Close())

		err := p.UpdateDetails("New Name", "")

		assert.Error(t, err)
		assert.Equal(t, "External Pentest Q3", p.Name())
	})
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusActive, StatusClosed, true},
		{StatusActive, StatusArchived, true},
		{StatusClosed, StatusArchived, true},
		{StatusClosed, StatusActive, false},
		{StatusArchived, StatusActive, false},
		{StatusArchived, StatusClosed, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}
