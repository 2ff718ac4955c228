package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase はカートの業務ロジック。
// カート明細は (user, product) ごとに論理1行で、
// 同一商品の追加は数量加算で吸収する。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
	userRepo     repo.UserRepository
}

// DI
func NewCartUsecase(
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
	userRepo repo.UserRepository,
) *CartUsecase {
	return &CartUsecase{
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
	}
}

// レスポンスにはユーザーと商品のスナップショットを埋め込む
type CartItemView struct {
	ID             int64         `json:"id"`
	UserDetails    UserView      `json:"user_details"`
	ProductID      int64         `json:"product_id"`
	ProductDetails model.Product `json:"product_details"`
	Quantity       int64         `json:"quantity"`
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

// Add はカートに追加（同一商品は数量加算）。
func (u *CartUsecase) Add(ctx context.Context, userID int64, in AddCartInput) (CartItemView, error) {
	if in.Quantity < 1 {
		return CartItemView{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	//商品チェック
	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartItemView{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return CartItemView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//ユーザーチェック
	user, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartItemView{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return CartItemView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//Upsert（同一商品は加算）。行ロック込みなので同時追加でも加算が消えない。
	item, err := u.cartItemRepo.UpsertByUserAndProduct(ctx, userID, in.ProductID, in.Quantity)
	if err != nil {
		return CartItemView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartItemView{
		ID:             item.ID,
		UserDetails:    toUserView(user),
		ProductID:      item.ProductID,
		ProductDetails: p,
		Quantity:       item.Quantity,
	}, nil
}

// List はユーザーのカートを商品ごとに集約して返す。
// 物理行が商品ごとに一意である保証は持たないので、
// 読み出し側でも数量を合算し直す。
func (u *CartUsecase) List(ctx context.Context, userID int64) ([]CartItemView, error) {
	items, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return []CartItemView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//空カートは404（リファレンス仕様を踏襲）
	if len(items) == 0 {
		return []CartItemView{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("no cart items found for user %d", userID))
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return []CartItemView{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return []CartItemView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//商品IDごとに数量を合算（最初に現れた行のidを代表にする）
	type aggLine struct {
		id       int64
		quantity int64
	}
	order := make([]int64, 0, len(items))
	agg := make(map[int64]*aggLine, len(items))

	for _, it := range items {
		if line, ok := agg[it.ProductID]; ok {
			line.quantity += it.Quantity
			continue
		}
		agg[it.ProductID] = &aggLine{id: it.ID, quantity: it.Quantity}
		order = append(order, it.ProductID)
	}

	views := make([]CartItemView, 0, len(order))
	for _, productID := range order {
		p, err := u.productRepo.FindByID(ctx, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return []CartItemView{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("product with id %d not found", productID))
		}
		if err != nil {
			return []CartItemView{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		line := agg[productID]
		views = append(views, CartItemView{
			ID:             line.id,
			UserDetails:    toUserView(user),
			ProductID:      productID,
			ProductDetails: p,
			Quantity:       line.quantity,
		})
	}

	return views, nil
}

// RemoveByProduct は (user, product) に一致する明細を全削除する。
func (u *CartUsecase) RemoveByProduct(ctx context.Context, userID int64, productID int64) (int64, error) {
	//ユーザーチェック
	if _, err := u.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, NewHTTPError(http.StatusNotFound, "user not found")
		}
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	removed, err := u.cartItemRepo.DeleteByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if removed == 0 {
		return 0, NewHTTPError(http.StatusNotFound, fmt.Sprintf("no cart items found for product %d", productID))
	}

	return removed, nil
}

// UpdateQuantity は明細idを直接指定して数量を上書きする。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) (CartItemView, error) {
	if qty < 1 {
		return CartItemView{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartItemView{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("cart item with id %d not found", cartItemID))
	}
	if err != nil {
		return CartItemView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartItemRepo.UpdateQuantity(ctx, cartItemID, qty); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartItemView{}, NewHTTPError(http.StatusNotFound, fmt.Sprintf("cart item with id %d not found", cartItemID))
		}
		return CartItemView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//レスポンス用にユーザーと商品を引き直す
	p, err := u.productRepo.FindByID(ctx, item.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartItemView{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return CartItemView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	user, err := u.userRepo.FindByID(ctx, item.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartItemView{}, NewHTTPError(http.StatusNotFound, "user not found")
	}
	if err != nil {
		return CartItemView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartItemView{
		ID:             item.ID,
		UserDetails:    toUserView(user),
		ProductID:      item.ProductID,
		ProductDetails: p,
		Quantity:       qty,
	}, nil
}
