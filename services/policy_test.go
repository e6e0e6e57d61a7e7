package services

import (
	"testing"

	"popcornhour/models"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveRole(t *testing.T) {
	tests := []struct {
		name   string
		email  string
		stored models.UserRole
		want   models.UserRole
	}{
		{"privileged domain overrides standard", "x@admin.com", models.RoleStandard, models.RoleModerator},
		{"privileged domain is case-insensitive", "Boss@ADMIN.com", models.RoleStandard, models.RoleModerator},
		{"stored moderator kept", "mod@example.com", models.RoleModerator, models.RoleModerator},
		{"plain user stays standard", "user@example.com", models.RoleStandard, models.RoleStandard},
		{"lookalike domain is not privileged", "x@admin.com.evil.org", models.RoleStandard, models.RoleStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveRole(tt.email, tt.stored, "@admin.com"))
		})
	}
}

func TestEffectiveRole_EmptyDomainDisablesOverride(t *testing.T) {
	assert.Equal(t, models.RoleStandard, EffectiveRole("x@admin.com", models.RoleStandard, ""))
}

func TestRequireModerator(t *testing.T) {
	assert.ErrorIs(t, RequireModerator(nil), models.ErrForbidden)
	assert.ErrorIs(t, RequireModerator(&models.Identity{UserID: 1, Role: models.RoleStandard}), models.ErrForbidden)
	assert.NoError(t, RequireModerator(&models.Identity{UserID: 1, Role: models.RoleModerator}))
}

func TestCanDeleteUser(t *testing.T) {
	mod := &models.Identity{UserID: 7, Role: models.RoleModerator}

	assert.ErrorIs(t, CanDeleteUser(mod, 7), models.ErrSelfDeletion)
	assert.NoError(t, CanDeleteUser(mod, 8))
	assert.ErrorIs(t, CanDeleteUser(&models.Identity{UserID: 7, Role: models.RoleStandard}, 8), models.ErrForbidden)
	assert.ErrorIs(t, CanDeleteUser(nil, 8), models.ErrForbidden)
}
