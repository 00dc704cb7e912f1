package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatline/internal/common"
	"chatline/internal/dbmysql"
)

type fakeUserRepo struct {
	createFn func(ctx context.Context, user *dbmysql.User) error
	byIDFn   func(ctx context.Context, userID uint) (*dbmysql.User, error)
	byNameFn func(ctx context.Context, handle string) (*dbmysql.User, error)
	updateFn func(ctx context.Context, user *dbmysql.User) error
	existsFn func(ctx context.Context, handle string) (bool, error)
	listFn   func(ctx context.Context, excludeID uint) ([]*dbmysql.User, error)
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *dbmysql.User) error {
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, userID uint) (*dbmysql.User, error) {
	return f.byIDFn(ctx, userID)
}

func (f *fakeUserRepo) GetUserByHandle(ctx context.Context, handle string) (*dbmysql.User, error) {
	return f.byNameFn(ctx, handle)
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, user *dbmysql.User) error {
	return f.updateFn(ctx, user)
}

func (f *fakeUserRepo) CheckUserExists(ctx context.Context, handle string) (bool, error) {
	return f.existsFn(ctx, handle)
}

func (f *fakeUserRepo) ListUsers(ctx context.Context, excludeID uint) ([]*dbmysql.User, error) {
	return f.listFn(ctx, excludeID)
}

func TestUserService_RegisterUser(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		repo := &fakeUserRepo{
			existsFn: func(ctx context.Context, handle string) (bool, error) {
				return false, nil
			},
			createFn: func(ctx context.Context, u *dbmysql.User) error {
				assert.Equal(t, "alice", u.Handle)
				assert.NotEqual(t, "secret123", u.PasswordHash, "password must be hashed")
				u.ID = 1
				return nil
			},
		}
		svc := NewUserService(repo)

		user, token, err := svc.RegisterUser(context.Background(), "alice", "alice@example.com", "secret123")

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, uint(1), user.ID)
		assert.NotEmpty(t, token)
		assert.NoError(t, common.CheckPassword("secret123", user.PasswordHash))
	})

	t.Run("handle too short", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepo{})

		_, _, err := svc.RegisterUser(context.Background(), "ab", "", "secret123")

		var verr *common.ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("handle already taken", func(t *testing.T) {
		repo := &fakeUserRepo{
			existsFn: func(ctx context.Context, handle string) (bool, error) {
				return true, nil
			},
		}
		svc := NewUserService(repo)

		_, _, err := svc.RegisterUser(context.Background(), "alice", "", "secret123")

		var verr *common.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "handle")
	})

	t.Run("password too short", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepo{})

		_, _, err := svc.RegisterUser(context.Background(), "alice", "", "abc")

		var verr *common.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestUserService_LoginUser(t *testing.T) {
	hash, err := common.HashPassword("secret123")
	require.NoError(t, err)

	stored := &dbmysql.User{ID: 1, Handle: "alice", PasswordHash: hash}

	t.Run("successful login", func(t *testing.T) {
		repo := &fakeUserRepo{
			byNameFn: func(ctx context.Context, handle string) (*dbmysql.User, error) {
				return stored, nil
			},
		}
		svc := NewUserService(repo)

		user, token, err := svc.LoginUser(context.Background(), "alice", "secret123")

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.NotEmpty(t, token)

		claims, err := common.ValidToken(token)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := &fakeUserRepo{
			byNameFn: func(ctx context.Context, handle string) (*dbmysql.User, error) {
				return stored, nil
			},
		}
		svc := NewUserService(repo)

		_, _, err := svc.LoginUser(context.Background(), "alice", "wrong")

		var aerr *common.AuthorizationError
		assert.ErrorAs(t, err, &aerr)
	})

	t.Run("unknown handle", func(t *testing.T) {
		repo := &fakeUserRepo{
			byNameFn: func(ctx context.Context, handle string) (*dbmysql.User, error) {
				return nil, common.NewNotFoundError("user", 0)
			},
		}
		svc := NewUserService(repo)

		_, _, err := svc.LoginUser(context.Background(), "ghost", "secret123")

		var aerr *common.AuthorizationError
		assert.ErrorAs(t, err, &aerr)
	})
}

func TestUserService_SetAvatar(t *testing.T) {
	var updated *dbmysql.User
	repo := &fakeUserRepo{
		byIDFn: func(ctx context.Context, userID uint) (*dbmysql.User, error) {
			return &dbmysql.User{ID: userID, Handle: "alice"}, nil
		},
		updateFn: func(ctx context.Context, user *dbmysql.User) error {
			updated = user
			return nil
		},
	}
	svc := NewUserService(repo)

	err := svc.SetAvatar(context.Background(), 1, "av-123")

	assert.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "av-123", updated.AvatarID)
}
