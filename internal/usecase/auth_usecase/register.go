package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"app/internal/domain/model"
	"app/internal/repository"
)

var (
	// 入力が不正
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrEmptyUsername      = errors.New("username is required")
	ErrEmptyPassword      = errors.New("password is required")

	// 競合
	ErrAlreadyExists = errors.New("already exists")
)

type RegisterInput struct {
	Name     string // username / adminname
	Email    string
	Password string
}

// RegisterUserUsecaseは購入者の会員登録。
type RegisterUserUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
}

// DI
func NewRegisterUserUsecase(userRepo repository.UserRepository, hasher PasswordHasher) *RegisterUserUsecase {
	return &RegisterUserUsecase{userRepo: userRepo, hasher: hasher}
}

func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterInput) (model.User, error) {
	if err := validateRegisterInput(in); err != nil {
		return model.User{}, err
	}

	//username重複チェック
	_, err := u.userRepo.FindByUsername(ctx, in.Name)
	if err == nil {
		return model.User{}, ErrAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return model.User{}, err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, err
	}

	created, err := u.userRepo.Create(ctx, model.User{
		Username: in.Name,
		Email:    in.Email,
		Password: hashed, // ハッシュを保存（平文は保存しない）
	})
	if err != nil {
		return model.User{}, err
	}

	return created, nil
}

// RegisterAdminUsecaseは出品者の登録。
type RegisterAdminUsecase struct {
	adminRepo repository.AdminRepository
	hasher    PasswordHasher
}

// DI
func NewRegisterAdminUsecase(adminRepo repository.AdminRepository, hasher PasswordHasher) *RegisterAdminUsecase {
	return &RegisterAdminUsecase{adminRepo: adminRepo, hasher: hasher}
}

func (u *RegisterAdminUsecase) Execute(ctx context.Context, in RegisterInput) (model.Admin, error) {
	if err := validateRegisterInput(in); err != nil {
		return model.Admin{}, err
	}

	//adminname重複チェック
	_, err := u.adminRepo.FindByAdminName(ctx, in.Name)
	if err == nil {
		return model.Admin{}, ErrAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return model.Admin{}, err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.Admin{}, err
	}

	created, err := u.adminRepo.Create(ctx, model.Admin{
		AdminName: in.Name,
		Email:     in.Email,
		Password:  hashed,
	})
	if err != nil {
		return model.Admin{}, err
	}

	return created, nil
}

func validateRegisterInput(in RegisterInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrEmptyUsername
	}
	if !isValidEmailFormat(in.Email) {
		return ErrInvalidEmailFormat
	}
	if in.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// メールチェック
func isValidEmailFormat(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	_, err := mail.ParseAddress(trimmed)
	return err == nil
}
