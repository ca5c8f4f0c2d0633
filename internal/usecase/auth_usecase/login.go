package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	"github.com/tsizion/DokaBackend/internal/repository"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string
	Password string
}

type UserLoginOutput struct {
	User  model.User
	Token string
}

type AdminLoginOutput struct {
	Admin model.Admin
	Token string
}

// メールまたはパスワードが違う
var ErrInvalidCredentials = errors.New("invalid credentials")

// 停止済みユーザー
var ErrUserInactive = errors.New("user is inactive")

type LoginUsecase struct {
	users    repository.UserRepository
	admins   repository.AdminRepository
	verifier PasswordVerifier
	issuer   AccessTokenIssuer
	clock    Clock
}

func NewLoginUsecase(
	users repository.UserRepository,
	admins repository.AdminRepository,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		users:    users,
		admins:   admins,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

// 購入者のログイン
func (u *LoginUsecase) LoginUser(ctx context.Context, in LoginInput) (UserLoginOutput, error) {
	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return UserLoginOutput{}, ErrInvalidCredentials
		}
		return UserLoginOutput{}, err
	}

	//パスワード照合
	if !u.verifier.Verify(in.Password, user.PasswordHash) {
		return UserLoginOutput{}, ErrInvalidCredentials
	}

	//停止ユーザーはログイン不可
	if user.Status == model.UserStatusInactive {
		return UserLoginOutput{}, ErrUserInactive
	}

	token, _, err := u.issuer.Issue(user.ID, TokenTypeUser, u.clock.Now())
	if err != nil {
		return UserLoginOutput{}, err
	}
	return UserLoginOutput{User: *user, Token: token}, nil
}

// 管理者のログイン
func (u *LoginUsecase) LoginAdmin(ctx context.Context, in LoginInput) (AdminLoginOutput, error) {
	admin, err := u.admins.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return AdminLoginOutput{}, ErrInvalidCredentials
		}
		return AdminLoginOutput{}, err
	}

	if !u.verifier.Verify(in.Password, admin.PasswordHash) {
		return AdminLoginOutput{}, ErrInvalidCredentials
	}

	token, _, err := u.issuer.Issue(admin.ID, TokenTypeAdmin, u.clock.Now())
	if err != nil {
		return AdminLoginOutput{}, err
	}
	return AdminLoginOutput{Admin: *admin, Token: token}, nil
}
