package auth

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

var (
	ErrPrincipalNotFound = errors.New("not found")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// アクセストークンを発行する約束（実装はmainのJWT issuer）
type TokenIssuer interface {
	Issue(subjectID int64, role string, now time.Time) (string, error)
}

type LoginInput struct {
	Name     string // username / adminname
	Password string
}

type LoginUserOutput struct {
	User        model.User
	AccessToken string
}

// LoginUserUsecaseは購入者のログイン。
type LoginUserUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	issuer   TokenIssuer
}

// DI
func NewLoginUserUsecase(userRepo repository.UserRepository, verifier PasswordVerifier, issuer TokenIssuer) *LoginUserUsecase {
	return &LoginUserUsecase{userRepo: userRepo, verifier: verifier, issuer: issuer}
}

func (u *LoginUserUsecase) Execute(ctx context.Context, in LoginInput) (LoginUserOutput, error) {
	user, err := u.userRepo.FindByUsername(ctx, in.Name)
	if errors.Is(err, repository.ErrNotFound) {
		return LoginUserOutput{}, ErrPrincipalNotFound
	}
	if err != nil {
		return LoginUserOutput{}, err
	}

	if !u.verifier.Verify(in.Password, user.Password) {
		return LoginUserOutput{}, ErrIncorrectPassword
	}

	token, err := u.issuer.Issue(user.ID, "user", time.Now())
	if err != nil {
		return LoginUserOutput{}, err
	}

	return LoginUserOutput{User: user, AccessToken: token}, nil
}

type LoginAdminOutput struct {
	Admin       model.Admin
	AccessToken string
}

// LoginAdminUsecaseは出品者のログイン。
type LoginAdminUsecase struct {
	adminRepo repository.AdminRepository
	verifier  PasswordVerifier
	issuer    TokenIssuer
}

// DI
func NewLoginAdminUsecase(adminRepo repository.AdminRepository, verifier PasswordVerifier, issuer TokenIssuer) *LoginAdminUsecase {
	return &LoginAdminUsecase{adminRepo: adminRepo, verifier: verifier, issuer: issuer}
}

func (u *LoginAdminUsecase) Execute(ctx context.Context, in LoginInput) (LoginAdminOutput, error) {
	admin, err := u.adminRepo.FindByAdminName(ctx, in.Name)
	if errors.Is(err, repository.ErrNotFound) {
		return LoginAdminOutput{}, ErrPrincipalNotFound
	}
	if err != nil {
		return LoginAdminOutput{}, err
	}

	if !u.verifier.Verify(in.Password, admin.Password) {
		return LoginAdminOutput{}, ErrIncorrectPassword
	}

	token, err := u.issuer.Issue(admin.ID, "admin", time.Now())
	if err != nil {
		return LoginAdminOutput{}, err
	}

	return LoginAdminOutput{Admin: admin, AccessToken: token}, nil
}
