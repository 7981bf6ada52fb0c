package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp-civi/erp-backend/internal/auth/domain"
	"github.com/erp-civi/erp-backend/internal/storage"
)

func setupTestSession(t *testing.T) (*Session, *storage.Store) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := storage.NewStore(client, "erp_civi")
	return NewSession(context.Background(), store), store
}

func TestSession_LoginLogout(t *testing.T) {
	session, store := setupTestSession(t)
	ctx := context.Background()

	t.Run("starts logged out", func(t *testing.T) {
		assert.False(t, session.IsLoggedIn())
		assert.False(t, session.HasPermission("view_all"))
	})

	t.Run("login as role always succeeds for known roles", func(t *testing.T) {
		user, err := session.LoginAsRole(ctx, domain.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, "admin_1", user.ID)
		assert.True(t, session.IsLoggedIn())
	})

	t.Run("login persists the user", func(t *testing.T) {
		restored := NewSession(ctx, store)
		user, ok := restored.CurrentUser()
		require.True(t, ok)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := session.LoginAsRole(ctx, domain.Role("intern"))
		assert.Error(t, err)
	})

	t.Run("logout clears the persisted user", func(t *testing.T) {
		session.Logout(ctx)
		assert.False(t, session.IsLoggedIn())

		restored := NewSession(ctx, store)
		assert.False(t, restored.IsLoggedIn())
	})
}

func TestSession_Permissions(t *testing.T) {
	session, _ := setupTestSession(t)
	ctx := context.Background()

	t.Run("finance role permission matrix", func(t *testing.T) {
		_, err := session.LoginAsRole(ctx, domain.RoleFinance)
		require.NoError(t, err)

		assert.False(t, session.HasPermission("financial"), "only admin has financial")
		assert.True(t, session.HasPermission("billing"))
		assert.False(t, session.CanPerform("projects", "create"), "finance lacks the generic create permission")
		assert.False(t, session.CanPerform("projects", "view"))
		assert.True(t, session.CanPerform("financial", "view"))
	})

	t.Run("admin view_all grants everything", func(t *testing.T) {
		_, err := session.LoginAsRole(ctx, domain.RoleAdmin)
		require.NoError(t, err)

		assert.True(t, session.CanPerform("projects", "create"))
		assert.True(t, session.CanPerform("boq", "delete"))
		assert.True(t, session.CanPerform("anything", "view"))
	})

	t.Run("project manager view is module scoped", func(t *testing.T) {
		_, err := session.LoginAsRole(ctx, domain.RoleProjectManager)
		require.NoError(t, err)

		assert.True(t, session.CanPerform("projects", "view"))
		assert.False(t, session.CanPerform("financial", "view"))
		assert.False(t, session.CanPerform("projects", "delete"))
	})

	t.Run("logged out denies everything", func(t *testing.T) {
		session.Logout(ctx)
		assert.False(t, session.CanPerform("projects", "view"))
		assert.False(t, session.HasPermission("view_all"))
	})
}
