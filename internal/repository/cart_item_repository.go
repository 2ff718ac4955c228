package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	// 同一 (user, product) は数量加算。結果の行を返す。
	UpsertByUserAndProduct(ctx context.Context, userID int64, productID int64, addQty int64) (model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	// (user, product) に一致する行を全削除し、削除件数を返す
	DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) (int64, error)
	// ユーザーの明細を全削除（注文確定時のドレイン用）
	DeleteByUserID(ctx context.Context, userID int64) error
}
