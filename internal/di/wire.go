//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"chatline/internal/chat/handler"
	"chatline/internal/chat/repository"
	"chatline/internal/chat/service"
	"chatline/internal/common"
	"chatline/internal/dbmongo"
	"chatline/internal/notif"
	"chatline/internal/presence"
	"chatline/internal/quiz"
	"chatline/internal/user"
	"chatline/internal/userdetail"
)

// Application bundles every handler the server mounts.
type Application struct {
	ChatHandler     *handler.ChatHandler
	UserHandler     *user.Handler
	DetailHandler   *userdetail.Handler
	QuizHandler     *quiz.Handler
	PresenceHandler *presence.Handler
}

func ProvideUserDirectory(us user.UserService) service.UserDirectory {
	return us
}

func ProvideUserProvider(us user.UserService) handler.UserProvider {
	return us
}

func ProvideSubject(nm *notif.NotificationManager) common.Subject {
	return nm
}

func InitializeApplication(db *gorm.DB, rdb *redis.Client, avatars *dbmongo.AvatarStorage, nm *notif.NotificationManager) *Application {
	wire.Build(
		repository.NewMessageRepository,
		user.NewUserRepository,
		user.NewUserService,
		ProvideUserDirectory,
		ProvideUserProvider,
		ProvideSubject,
		service.NewMessageService,
		handler.NewChatHandler,
		user.NewHandler,
		userdetail.NewDetailRepository,
		userdetail.NewDetailService,
		userdetail.NewHandler,
		quiz.NewQuizRepository,
		quiz.NewQuizService,
		quiz.NewHandler,
		presence.NewRedisStore,
		presence.NewHandler,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}
}
