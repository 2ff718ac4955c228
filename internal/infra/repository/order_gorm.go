package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, o model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

// 出品者の商品に紐づく注文（productsとJOIN）
func (r *OrderGormRepository) ListByAdminID(ctx context.Context, adminID int64) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Joins("join products on products.id = orders.product_id").
		Where("products.admin_id = ?", adminID).
		Order("orders.id asc").
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

func (r *OrderGormRepository) DeleteByID(ctx context.Context, orderID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Order{}, orderID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 出品者の商品ごとの販売数量合計
func (r *OrderGormRepository) SalesByProduct(ctx context.Context, adminID int64) ([]repo.ProductSalesRow, error) {
	var rows []repo.ProductSalesRow
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select("products.name as name, sum(orders.quantity) as total_quantity").
		Joins("join products on products.id = orders.product_id").
		Where("products.admin_id = ?", adminID).
		Group("products.name").
		Scan(&rows).Error
	if err != nil {
		return []repo.ProductSalesRow{}, err
	}
	return rows, nil
}

// 指定年の (商品, 月) ごとの注文件数
func (r *OrderGormRepository) MonthlyOrders(ctx context.Context, year int) ([]repo.MonthlyOrderRow, error) {
	var rows []repo.MonthlyOrderRow
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select("orders.product_id as product_id, extract(month from orders.order_date)::int as month, count(orders.id) as order_count").
		Where("extract(year from orders.order_date) = ?", year).
		Group("orders.product_id, month").
		Scan(&rows).Error
	if err != nil {
		return []repo.MonthlyOrderRow{}, err
	}
	return rows, nil
}

// 注文が存在する年の一覧（全注文が対象）
func (r *OrderGormRepository) DistinctYears(ctx context.Context) ([]int, error) {
	var years []int
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Distinct().
		Pluck("extract(year from order_date)::int", &years).Error
	if err != nil {
		return []int{}, err
	}
	return years, nil
}
