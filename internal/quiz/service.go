package quiz

import (
	"context"
	"fmt"
	"strings"

	"chatline/internal/common"
	"chatline/internal/dbmysql"
)

// QuestionInput is one authored question in a create/update payload.
type QuestionInput struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

type QuizService interface {
	Generate(topic, description string, numQuestions int) ([]QuestionInput, error)
	Create(ctx context.Context, userID uint, topic, description string, questions []QuestionInput) (*dbmysql.Quiz, error)
	Update(ctx context.Context, quizID, userID uint, topic, description string, questions []QuestionInput) (*dbmysql.Quiz, error)
	ListByUser(ctx context.Context, userID uint) ([]*dbmysql.Quiz, error)
	ByID(ctx context.Context, quizID uint) (*dbmysql.Quiz, error)
	Delete(ctx context.Context, quizID, userID uint) error
}

type quizService struct {
	repo QuizRepository
}

func NewQuizService(repo QuizRepository) QuizService {
	return &quizService{repo: repo}
}

func validateQuizFields(topic, description string) *common.ValidationError {
	verr := &common.ValidationError{}
	if strings.TrimSpace(topic) == "" {
		verr.Add("topic", "The topic field is required.")
	} else if len(topic) > 255 {
		verr.Add("topic", "The topic may not be greater than 255 characters.")
	}
	if strings.TrimSpace(description) == "" {
		verr.Add("description", "The description field is required.")
	} else if len(description) > 1000 {
		verr.Add("description", "The description may not be greater than 1000 characters.")
	}
	return verr
}

func validateQuestions(verr *common.ValidationError, questions []QuestionInput) {
	if len(questions) == 0 {
		verr.Add("questions", "At least one question is required.")
		return
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			verr.Add(fmt.Sprintf("questions.%d.question", i), "The question field is required.")
		}
		if len(q.Options) != 4 {
			verr.Add(fmt.Sprintf("questions.%d.options", i), "Each question must have exactly 4 options.")
		} else {
			for j, opt := range q.Options {
				if strings.TrimSpace(opt) == "" {
					verr.Add(fmt.Sprintf("questions.%d.options.%d", i, j), "The option field is required.")
				}
			}
		}
		if q.CorrectIndex < 0 || q.CorrectIndex > 3 {
			verr.Add(fmt.Sprintf("questions.%d.correctIndex", i), "The correct index must be between 0 and 3.")
		}
	}
}

// Generate produces a manually-editable question scaffold. There is no AI
// behind this; the builder page lets the author rewrite every field.
func (s *quizService) Generate(topic, description string, numQuestions int) ([]QuestionInput, error) {
	verr := validateQuizFields(topic, description)
	if numQuestions < 1 || numQuestions > 50 {
		verr.Add("numQuestions", "The number of questions must be between 1 and 50.")
	}
	if !verr.Empty() {
		return nil, verr
	}

	questions := make([]QuestionInput, 0, numQuestions)
	for i := 1; i <= numQuestions; i++ {
		questions = append(questions, QuestionInput{
			Question:     fmt.Sprintf("Sample Question %d about %s: %s?", i, topic, description),
			Options:      []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectIndex: 0,
		})
	}
	return questions, nil
}

func (s *quizService) Create(ctx context.Context, userID uint, topic, description string, questions []QuestionInput) (*dbmysql.Quiz, error) {
	verr := validateQuizFields(topic, description)
	validateQuestions(verr, questions)
	if !verr.Empty() {
		return nil, verr
	}

	quiz := &dbmysql.Quiz{
		UserID:      userID,
		Topic:       topic,
		Description: description,
		Questions:   toModels(questions),
	}
	if err := s.repo.Create(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *quizService) Update(ctx context.Context, quizID, userID uint, topic, description string, questions []QuestionInput) (*dbmysql.Quiz, error) {
	quiz, err := s.repo.ByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz.UserID != userID {
		return nil, common.NewAuthorizationError("you may only update your own quizzes")
	}

	verr := validateQuizFields(topic, description)
	validateQuestions(verr, questions)
	if !verr.Empty() {
		return nil, verr
	}

	quiz.Topic = topic
	quiz.Description = description
	if err := s.repo.Replace(ctx, quiz, toModels(questions)); err != nil {
		return nil, err
	}
	return s.repo.ByID(ctx, quizID)
}

func (s *quizService) ListByUser(ctx context.Context, userID uint) ([]*dbmysql.Quiz, error) {
	return s.repo.ByUserID(ctx, userID)
}

func (s *quizService) ByID(ctx context.Context, quizID uint) (*dbmysql.Quiz, error) {
	return s.repo.ByID(ctx, quizID)
}

func (s *quizService) Delete(ctx context.Context, quizID, userID uint) error {
	quiz, err := s.repo.ByID(ctx, quizID)
	if err != nil {
		return err
	}
	if quiz.UserID != userID {
		return common.NewAuthorizationError("you may only delete your own quizzes")
	}
	return s.repo.Delete(ctx, quizID)
}

func toModels(questions []QuestionInput) []dbmysql.Question {
	models := make([]dbmysql.Question, 0, len(questions))
	for _, q := range questions {
		models = append(models, dbmysql.Question{
			Question:     q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
		})
	}
	return models
}
