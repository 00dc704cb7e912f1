package userdetail

import (
	"context"
	"strings"

	"chatline/internal/common"
	"chatline/internal/dbmysql"
)

type DetailService interface {
	List(ctx context.Context, userID uint) ([]*dbmysql.UserDetail, error)
	Create(ctx context.Context, userID uint, nickname, hobbies, description string) (*dbmysql.UserDetail, error)
	Update(ctx context.Context, detailID, userID uint, nickname, hobbies, description string) (*dbmysql.UserDetail, error)
	Delete(ctx context.Context, detailID, userID uint) error
	Show(ctx context.Context, detailID uint) (*dbmysql.UserDetail, error)
}

type detailService struct {
	repo DetailRepository
}

func NewDetailService(repo DetailRepository) DetailService {
	return &detailService{repo: repo}
}

func validateDetail(nickname, hobbies, description string) error {
	verr := &common.ValidationError{}
	if strings.TrimSpace(nickname) == "" {
		verr.Add("nickname", "The nickname field is required.")
	} else if len(nickname) > 255 {
		verr.Add("nickname", "The nickname may not be greater than 255 characters.")
	}
	if strings.TrimSpace(hobbies) == "" {
		verr.Add("hobbies", "The hobbies field is required.")
	}
	if strings.TrimSpace(description) == "" {
		verr.Add("description", "The description field is required.")
	}
	if !verr.Empty() {
		return verr
	}
	return nil
}

func (s *detailService) List(ctx context.Context, userID uint) ([]*dbmysql.UserDetail, error) {
	return s.repo.ByUserID(ctx, userID)
}

func (s *detailService) Create(ctx context.Context, userID uint, nickname, hobbies, description string) (*dbmysql.UserDetail, error) {
	if err := validateDetail(nickname, hobbies, description); err != nil {
		return nil, err
	}

	detail := &dbmysql.UserDetail{
		UserID:      userID,
		Nickname:    nickname,
		Hobbies:     hobbies,
		Description: description,
	}
	if err := s.repo.Create(ctx, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *detailService) Update(ctx context.Context, detailID, userID uint, nickname, hobbies, description string) (*dbmysql.UserDetail, error) {
	detail, err := s.repo.ByID(ctx, detailID)
	if err != nil {
		return nil, err
	}
	if detail.UserID != userID {
		return nil, common.NewAuthorizationError("you may only update your own details")
	}

	if err := validateDetail(nickname, hobbies, description); err != nil {
		return nil, err
	}

	detail.Nickname = nickname
	detail.Hobbies = hobbies
	detail.Description = description
	if err := s.repo.Update(ctx, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *detailService) Delete(ctx context.Context, detailID, userID uint) error {
	detail, err := s.repo.ByID(ctx, detailID)
	if err != nil {
		return err
	}
	if detail.UserID != userID {
		return common.NewAuthorizationError("you may only delete your own details")
	}
	return s.repo.Delete(ctx, detailID)
}

func (s *detailService) Show(ctx context.Context, detailID uint) (*dbmysql.UserDetail, error) {
	return s.repo.ByID(ctx, detailID)
}
