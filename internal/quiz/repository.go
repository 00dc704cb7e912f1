package quiz

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"chatline/internal/common"
	"chatline/internal/dbmysql"
)

type QuizRepository interface {
	Create(ctx context.Context, quiz *dbmysql.Quiz) error
	ByID(ctx context.Context, id uint) (*dbmysql.Quiz, error)
	ByUserID(ctx context.Context, userID uint) ([]*dbmysql.Quiz, error)
	Replace(ctx context.Context, quiz *dbmysql.Quiz, questions []dbmysql.Question) error
	Delete(ctx context.Context, id uint) error
}

type quizRepo struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepo{db: db}
}

func (r *quizRepo) Create(ctx context.Context, quiz *dbmysql.Quiz) error {
	return r.db.WithContext(ctx).Create(quiz).Error
}

func (r *quizRepo) ByID(ctx context.Context, id uint) (*dbmysql.Quiz, error) {
	var quiz dbmysql.Quiz
	err := r.db.WithContext(ctx).Preload("Questions").First(&quiz, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("quiz", id)
		}
		return nil, fmt.Errorf("failed to load quiz: %w", err)
	}
	return &quiz, nil
}

func (r *quizRepo) ByUserID(ctx context.Context, userID uint) ([]*dbmysql.Quiz, error) {
	var quizzes []*dbmysql.Quiz
	err := r.db.WithContext(ctx).
		Preload("Questions").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	return quizzes, nil
}

// Replace updates a quiz's fields and swaps its question set wholesale,
// in one transaction.
func (r *quizRepo) Replace(ctx context.Context, quiz *dbmysql.Quiz, questions []dbmysql.Question) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&dbmysql.Quiz{}).Where("id = ?", quiz.ID).
			Updates(map[string]interface{}{
				"topic":       quiz.Topic,
				"description": quiz.Description,
			}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&dbmysql.Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuizID = quiz.ID
		}
		return tx.Create(&questions).Error
	})
}

func (r *quizRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&dbmysql.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&dbmysql.Quiz{}, id).Error
	})
}
