package user

import (
	"context"

	"chatline/internal/common"
	"chatline/internal/dbmysql"
)

type UserService interface {
	RegisterUser(ctx context.Context, handle, email, password string) (*dbmysql.User, string, error)
	LoginUser(ctx context.Context, handle, password string) (*dbmysql.User, string, error)
	UserByID(ctx context.Context, id uint) (*dbmysql.User, error)
	List(ctx context.Context, excludeID uint) ([]*dbmysql.User, error)
	SetAvatar(ctx context.Context, userID uint, avatarID string) error
}

type userService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) RegisterUser(ctx context.Context, handle, email, password string) (*dbmysql.User, string, error) {
	if err := common.ValidateHandle(handle); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", err
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", err
	}

	exists, err := s.repo.CheckUserExists(ctx, handle)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", common.NewValidationError("handle", "is already taken")
	}

	hash, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		Handle:       handle,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := common.GenerateToken(user.ID, user.Handle)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) LoginUser(ctx context.Context, handle, password string) (*dbmysql.User, string, error) {
	user, err := s.repo.GetUserByHandle(ctx, handle)
	if err != nil {
		return nil, "", common.NewAuthorizationError("invalid handle or password")
	}
	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", common.NewAuthorizationError("invalid handle or password")
	}

	token, err := common.GenerateToken(user.ID, user.Handle)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) UserByID(ctx context.Context, id uint) (*dbmysql.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *userService) List(ctx context.Context, excludeID uint) ([]*dbmysql.User, error) {
	return s.repo.ListUsers(ctx, excludeID)
}

func (s *userService) SetAvatar(ctx context.Context, userID uint, avatarID string) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	user.AvatarID = avatarID
	return s.repo.UpdateUser(ctx, user)
}
