package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/erp-civi/erp-backend/internal/auth/domain"
	"github.com/erp-civi/erp-backend/internal/storage"
)

const currentUserKey = "currentUser"

// Session holds the single logged-in user. The user is persisted under a
// fixed store key and restored at startup, so a restart keeps the session.
type Session struct {
	store *storage.Store

	mu   sync.RWMutex
	user *domain.User
}

// NewSession creates a session and restores the persisted user if present.
func NewSession(ctx context.Context, store *storage.Store) *Session {
	s := &Session{store: store}

	var saved domain.User
	if store.Get(ctx, currentUserKey, &saved) {
		s.user = &saved
		slog.Info("session restored", "user", saved.ID, "role", saved.Role)
	}
	return s
}

// SetUser persists the user and marks the session logged in.
func (s *Session) SetUser(ctx context.Context, user domain.User) {
	s.store.Set(ctx, currentUserKey, user)

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
}

// Logout clears the persisted user and marks the session logged out.
func (s *Session) Logout(ctx context.Context) {
	s.store.Remove(ctx, currentUserKey)

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// LoginAsRole logs in the fixed demo user for the role. It always succeeds
// for a known role; there is no credential verification.
func (s *Session) LoginAsRole(ctx context.Context, role domain.Role) (domain.User, error) {
	user, ok := domain.DefaultUser(role)
	if !ok {
		return domain.User{}, fmt.Errorf("unknown role %q", role)
	}

	s.SetUser(ctx, user)
	return user, nil
}

// CurrentUser returns the logged-in user, if any.
func (s *Session) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// IsLoggedIn reports whether a user is logged in.
func (s *Session) IsLoggedIn() bool {
	_, ok := s.CurrentUser()
	return ok
}

// HasPermission checks membership in the current user's flat permission
// list. It is false when nobody is logged in.
func (s *Session) HasPermission(permission string) bool {
	user, ok := s.CurrentUser()
	if !ok {
		return false
	}
	return slices.Contains(domain.RolePermissions[user.Role], permission)
}

// CanPerform applies the module/action rule table: the admin "view_all"
// permission grants everything, "view" is checked against "view_<module>",
// and create/edit/delete/approve are checked against the flat list.
func (s *Session) CanPerform(module, action string) bool {
	user, ok := s.CurrentUser()
	if !ok {
		return false
	}

	perms := domain.RolePermissions[user.Role]
	if slices.Contains(perms, "view_all") {
		return true
	}

	switch action {
	case "view":
		return slices.Contains(perms, "view_"+module)
	case "create", "edit", "delete", "approve":
		return slices.Contains(perms, action)
	}
	return false
}

// ParseRole validates a raw role string.
func ParseRole(raw string) (domain.Role, error) {
	role := domain.Role(strings.TrimSpace(raw))
	switch role {
	case domain.RoleAdmin, domain.RoleFinance, domain.RoleProjectManager, domain.RoleSiteEngineer:
		return role, nil
	}
	return "", fmt.Errorf("unknown role %q", raw)
}
