package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// パスワードを含まないユーザー表現
type UserView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toUserView(u model.User) UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

type UserUsecase struct {
	userRepo repo.UserRepository
}

// DI
func NewUserUsecase(userRepo repo.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

func (u *UserUsecase) List(ctx context.Context) ([]UserView, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return []UserView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	views := make([]UserView, 0, len(users))
	for _, usr := range users {
		views = append(views, toUserView(usr))
	}
	return views, nil
}

func (u *UserUsecase) Get(ctx context.Context, userID int64) (UserView, error) {
	usr, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return UserView{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return UserView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toUserView(usr), nil
}

// Delete は削除したユーザーのスナップショットを返す
func (u *UserUsecase) Delete(ctx context.Context, userID int64) (UserView, error) {
	usr, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return UserView{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return UserView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.userRepo.DeleteByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return UserView{}, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return UserView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toUserView(usr), nil
}
