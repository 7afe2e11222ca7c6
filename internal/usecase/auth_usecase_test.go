package usecase

import (
	"context"
	"errors"
	"testing"

	"projectdesk/internal/domain/entities"
	mock_interfaces "projectdesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("empty credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, testEngine())
		if _, _, err := uc.Login(context.Background(), "  ", ""); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, testEngine())

		users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(entities.User{}, nil)

		if _, _, err := uc.Login(context.Background(), "ghost", "pw"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, testEngine())

		users.EXPECT().GetByUsername(gomock.Any(), "pm").Return(entities.User{ID: "pm-1", Username: "pm", PasswordHash: hashOf(t, "right")}, nil)

		if _, _, err := uc.Login(context.Background(), "pm", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success issues a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenRepository(ctrl)
		uc := NewAuthUseCase(users, tokens, testEngine())

		users.EXPECT().GetByUsername(gomock.Any(), "pm").Return(entities.User{ID: "pm-1", Username: "pm", PasswordHash: hashOf(t, "right"), Role: entities.RoleProjectManager}, nil)
		tokens.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tok entities.APIToken) (entities.APIToken, error) {
				if tok.Token == "" || tok.UserID != "pm-1" {
					t.Fatalf("unexpected token: %+v", tok)
				}
				return tok, nil
			},
		)

		tok, user, err := uc.Login(context.Background(), " pm ", "right")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Token == "" || user.ID != "pm-1" {
			t.Fatalf("unexpected result: %+v %+v", tok, user)
		}
	})
}

func TestAuthUseCase_CreateUser(t *testing.T) {
	t.Run("denied below admin", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, testEngine())
		for _, actor := range []*entities.User{nil, stakeholder(), teamMember(), manager()} {
			if _, err := uc.CreateUser(context.Background(), actor, "new", "pw", entities.RoleTeamMember); !errors.Is(err, ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized for %+v, got %v", actor, err)
			}
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, testEngine())
		admin := &entities.User{ID: "adm-1", Role: entities.RoleAdmin}
		if _, err := uc.CreateUser(context.Background(), admin, "new", "pw", "superuser"); !errors.Is(err, ErrInvalidUserRole) {
			t.Fatalf("expected ErrInvalidUserRole, got %v", err)
		}
	})

	t.Run("username taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, testEngine())

		admin := &entities.User{ID: "adm-1", Role: entities.RoleAdmin}
		users.EXPECT().GetByUsername(gomock.Any(), "pm").Return(entities.User{ID: "pm-1"}, nil)

		if _, err := uc.CreateUser(context.Background(), admin, "pm", "pw", entities.RoleProjectManager); !errors.Is(err, ErrUsernameTaken) {
			t.Fatalf("expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("success hashes the password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, testEngine())

		admin := &entities.User{ID: "adm-1", Role: entities.RoleAdmin}
		users.EXPECT().GetByUsername(gomock.Any(), "new").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" || u.Username != "new" || u.Role != entities.RoleTeamMember {
					t.Fatalf("unexpected user: %+v", u)
				}
				if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw")); err != nil {
					t.Fatalf("password not hashed correctly: %v", err)
				}
				return u, nil
			},
		)

		if _, err := uc.CreateUser(context.Background(), admin, "new", "pw", entities.RoleTeamMember); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
