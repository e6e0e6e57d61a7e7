package services

import (
	"strings"

	"popcornhour/models"
)

// EffectiveRole applies the email-domain override: an address ending with
// moderatorDomain is a moderator whatever its stored role. It is evaluated once
// when a session is created, so the result stays as-is until the next login.
func EffectiveRole(email string, stored models.UserRole, moderatorDomain string) models.UserRole {
	if moderatorDomain != "" && strings.HasSuffix(strings.ToLower(email), strings.ToLower(moderatorDomain)) {
		return models.RoleModerator
	}
	return stored
}

func NewIdentity(user *models.User, moderatorDomain string) *models.Identity {
	return &models.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   EffectiveRole(user.Email, user.Role, moderatorDomain),
	}
}

func RequireAuthenticated(identity *models.Identity) error {
	if identity == nil {
		return models.ErrLoginRequired
	}
	return nil
}

// RequireModerator is the gate in front of every privileged operation.
func RequireModerator(identity *models.Identity) error {
	if !identity.IsModerator() {
		return models.ErrForbidden
	}
	return nil
}

// CanDeleteUser adds self-protection on top of the moderator gate.
func CanDeleteUser(actor *models.Identity, targetID uint) error {
	if err := RequireModerator(actor); err != nil {
		return err
	}
	if actor.UserID == targetID {
		return models.ErrSelfDeletion
	}
	return nil
}
