package repository

import (
	"context"

	"app/internal/domain/model"
)

type ProductRepository interface {
	Create(ctx context.Context, p model.Product) (model.Product, error)
	FindByID(ctx context.Context, productID int64) (model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListByAdminID(ctx context.Context, adminID int64) ([]model.Product, error)
	Update(ctx context.Context, p model.Product) error
	// 所有チェック込みの削除用
	FindByIDAndAdminID(ctx context.Context, productID int64, adminID int64) (model.Product, error)
	DeleteByID(ctx context.Context, productID int64) error
}
