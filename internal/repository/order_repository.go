package repository

import (
	"context"

	"app/internal/domain/model"
)

// 商品別の売上集計行
type ProductSalesRow struct {
	Name          string
	TotalQuantity int64
}

// (商品, 月) ごとの注文件数
type MonthlyOrderRow struct {
	ProductID  int64
	Month      int
	OrderCount int64
}

type OrderRepository interface {
	Create(ctx context.Context, o model.Order) (model.Order, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	// 出品者の商品に紐づく注文（productsとJOIN）
	ListByAdminID(ctx context.Context, adminID int64) ([]model.Order, error)
	DeleteByID(ctx context.Context, orderID int64) error

	// 集計系
	SalesByProduct(ctx context.Context, adminID int64) ([]ProductSalesRow, error)
	MonthlyOrders(ctx context.Context, year int) ([]MonthlyOrderRow, error)
	DistinctYears(ctx context.Context) ([]int, error)
}
