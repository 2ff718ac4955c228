package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// パスワードを含まない出品者表現
type AdminView struct {
	ID        int64  `json:"id"`
	AdminName string `json:"adminname"`
	Email     string `json:"email"`
}

func toAdminView(a model.Admin) AdminView {
	return AdminView{
		ID:        a.ID,
		AdminName: a.AdminName,
		Email:     a.Email,
	}
}

type AdminUsecase struct {
	adminRepo repo.AdminRepository
}

// DI
func NewAdminUsecase(adminRepo repo.AdminRepository) *AdminUsecase {
	return &AdminUsecase{adminRepo: adminRepo}
}

func (u *AdminUsecase) List(ctx context.Context) ([]AdminView, error) {
	admins, err := u.adminRepo.List(ctx)
	if err != nil {
		return []AdminView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	views := make([]AdminView, 0, len(admins))
	for _, a := range admins {
		views = append(views, toAdminView(a))
	}
	return views, nil
}

func (u *AdminUsecase) Get(ctx context.Context, adminID int64) (AdminView, error) {
	a, err := u.adminRepo.FindByID(ctx, adminID)
	if errors.Is(err, repo.ErrNotFound) {
		return AdminView{}, NewHTTPError(http.StatusNotFound, "admin not found")
	}
	if err != nil {
		return AdminView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toAdminView(a), nil
}

// Delete は削除した出品者のスナップショットを返す
func (u *AdminUsecase) Delete(ctx context.Context, adminID int64) (AdminView, error) {
	a, err := u.adminRepo.FindByID(ctx, adminID)
	if errors.Is(err, repo.ErrNotFound) {
		return AdminView{}, NewHTTPError(http.StatusNotFound, "admin not found")
	}
	if err != nil {
		return AdminView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.adminRepo.DeleteByID(ctx, adminID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return AdminView{}, NewHTTPError(http.StatusNotFound, "admin not found")
		}
		return AdminView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toAdminView(a), nil
}
