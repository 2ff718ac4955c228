package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	cartItems repo.CartItemRepository
	orders    repo.OrderRepository
	products  repo.ProductRepository
	users     repo.UserRepository
}

func (r *txReposGorm) CartItems() repo.CartItemRepository { return r.cartItems }
func (r *txReposGorm) Orders() repo.OrderRepository       { return r.orders }
func (r *txReposGorm) Products() repo.ProductRepository   { return r.products }
func (r *txReposGorm) Users() repo.UserRepository         { return r.users }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			cartItems: NewCartItemGormRepository(tx),
			orders:    NewOrderGormRepository(tx),
			products:  NewProductGormRepository(tx),
			users:     NewUserGormRepository(tx),
		}
		return fn(r)
	})
}
