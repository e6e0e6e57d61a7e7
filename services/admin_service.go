package services

import (
	"popcornhour/models"
	"popcornhour/repositories"
)

type AdminService interface {
	ListUsers(actor *models.Identity) ([]models.User, error)
	PromoteUser(actor *models.Identity, id uint) error
	DemoteUser(actor *models.Identity, id uint) error
	DeleteUser(actor *models.Identity, id uint) error
}

type adminService struct {
	userRepo repositories.UserRepository
	uow      repositories.UnitOfWork
}

func NewAdminService(userRepo repositories.UserRepository, uow repositories.UnitOfWork) AdminService {
	return &adminService{userRepo: userRepo, uow: uow}
}

const userNotFound = "user not found"

func (s *adminService) ListUsers(actor *models.Identity) ([]models.User, error) {
	if err := RequireModerator(actor); err != nil {
		return nil, err
	}
	users, err := s.userRepo.List()
	if err != nil {
		return nil, translateError(err, "")
	}
	return users, nil
}

// PromoteUser changes the stored role only; sessions already open keep the
// role they were created with.
func (s *adminService) PromoteUser(actor *models.Identity, id uint) error {
	return s.setRole(actor, id, models.RoleModerator)
}

func (s *adminService) DemoteUser(actor *models.Identity, id uint) error {
	return s.setRole(actor, id, models.RoleStandard)
}

func (s *adminService) setRole(actor *models.Identity, id uint, role models.UserRole) error {
	if err := RequireModerator(actor); err != nil {
		return err
	}
	return translateError(s.userRepo.UpdateRole(id, role), userNotFound)
}

// DeleteUser removes the user's ratings, then comments, then the user row, in
// one transaction. Either all three go or nothing changes.
func (s *adminService) DeleteUser(actor *models.Identity, id uint) error {
	if err := CanDeleteUser(actor, id); err != nil {
		return err
	}

	err := s.uow.Do(func(repos repositories.Repositories) error {
		if err := repos.Ratings.DeleteByUser(id); err != nil {
			return err
		}
		if err := repos.Comments.DeleteByUser(id); err != nil {
			return err
		}
		return repos.Users.Delete(id)
	})
	return translateError(err, userNotFound)
}
