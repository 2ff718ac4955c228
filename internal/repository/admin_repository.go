package repository

import (
	"context"

	"app/internal/domain/model"
)

type AdminRepository interface {
	Create(ctx context.Context, a model.Admin) (model.Admin, error)
	FindByID(ctx context.Context, adminID int64) (model.Admin, error)
	FindByAdminName(ctx context.Context, adminName string) (model.Admin, error)
	List(ctx context.Context) ([]model.Admin, error)
	DeleteByID(ctx context.Context, adminID int64) error
}
