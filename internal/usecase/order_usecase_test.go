package usecase_test

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderUsecaseForTest(t *testing.T, tx *TxManagerMock) *usecase.OrderUsecase {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	assert.NoError(t, err)
	return usecase.NewOrderUsecase(tx, loc)
}

// Test: 注文確定はカート全行を注文化してカートを空にする
func TestOrderPlace(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartItemRepoMock)
	orderRepo := new(OrderRepoMock)
	productRepo := new(ProductRepoMock)
	userRepo := new(UserRepoMock)

	tx := &TxManagerMock{Repos: &TxReposMock{
		cartItems: cartRepo,
		orders:    orderRepo,
		products:  productRepo,
		users:     userRepo,
	}}
	tx.On("WithinTx", ctx).Return(nil)

	cartRepo.On("ListByUserID", ctx, int64(1)).Return([]model.CartItem{
		{ID: 10, UserID: 1, ProductID: 1, Quantity: 5},
	}, nil)
	userRepo.On("FindByID", ctx, int64(1)).Return(model.User{ID: 1, Username: "alice"}, nil)
	productRepo.On("FindByID", ctx, int64(1)).
		Return(model.Product{ID: 1, Name: "Coffee Beans", Price: 10.0, AdminID: 1}, nil)

	//確定時点の金額で凍結される（10.0 × 5 = 50.0）
	orderRepo.On("Create", ctx, mock.MatchedBy(func(o model.Order) bool {
		return o.UserID == 1 && o.ProductID == 1 && o.Quantity == 5 && o.TotalAmount == 50.0
	})).Return(model.Order{
		ID: 100, UserID: 1, ProductID: 1, Quantity: 5, TotalAmount: 50.0,
		OrderDate: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}, nil)
	cartRepo.On("DeleteByUserID", ctx, int64(1)).Return(nil)

	uc := newOrderUsecaseForTest(t, tx)

	got, err := uc.Place(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(100), got[0].ID)
	assert.Equal(t, []int64{5}, got[0].Quantity)
	assert.Equal(t, 50.0, got[0].TotalAmount)
	assert.Equal(t, "Coffee Beans", got[0].Products[0].Name)

	//UTC 12:00 は IST で 17:30。オフセットは付けない。
	assert.Equal(t, "2026-08-31T17:30:00", got[0].OrderDate)

	cartRepo.AssertCalled(t, "DeleteByUserID", ctx, int64(1))
	tx.AssertExpectations(t)
}

// Test: 空カートでの注文確定は404
func TestOrderPlaceEmptyCart(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartItemRepoMock)
	cartRepo.On("ListByUserID", ctx, int64(7)).Return([]model.CartItem{}, nil)

	tx := &TxManagerMock{Repos: &TxReposMock{cartItems: cartRepo}}
	tx.On("WithinTx", ctx).Return(nil)

	uc := newOrderUsecaseForTest(t, tx)

	_, err := uc.Place(ctx, 7)
	assertErrContains(t, err, "no cart items found for user 7")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

// Test: 途中の商品が消えていたら全件ロールバック（カートも残る）
func TestOrderPlaceRollsBackOnMissingProduct(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartItemRepoMock)
	orderRepo := new(OrderRepoMock)
	productRepo := new(ProductRepoMock)
	userRepo := new(UserRepoMock)

	tx := &TxManagerMock{Repos: &TxReposMock{
		cartItems: cartRepo,
		orders:    orderRepo,
		products:  productRepo,
		users:     userRepo,
	}}
	tx.On("WithinTx", ctx).Return(nil)

	cartRepo.On("ListByUserID", ctx, int64(1)).Return([]model.CartItem{
		{ID: 10, UserID: 1, ProductID: 1, Quantity: 2},
		{ID: 11, UserID: 1, ProductID: 2, Quantity: 1},
	}, nil)
	userRepo.On("FindByID", ctx, int64(1)).Return(model.User{ID: 1}, nil)

	productRepo.On("FindByID", ctx, int64(1)).
		Return(model.Product{ID: 1, Name: "Coffee Beans", Price: 10.0}, nil)
	productRepo.On("FindByID", ctx, int64(2)).Return(model.Product{}, repo.ErrNotFound)

	orderRepo.On("Create", ctx, mock.Anything).
		Return(model.Order{ID: 100, OrderDate: time.Now().UTC()}, nil)

	uc := newOrderUsecaseForTest(t, tx)

	_, err := uc.Place(ctx, 1)
	assertErrContains(t, err, "product with id 2 not found")

	//fnがエラーを返した＝Tx全体ロールバック。ドレインまで到達しない。
	cartRepo.AssertNotCalled(t, "DeleteByUserID", mock.Anything, mock.Anything)
}

// Test: ユーザーの注文履歴（表示タイムゾーン変換込み）
func TestOrderListByUser(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	productRepo := new(ProductRepoMock)
	userRepo := new(UserRepoMock)

	tx := &TxManagerMock{Repos: &TxReposMock{
		orders:   orderRepo,
		products: productRepo,
		users:    userRepo,
	}}
	tx.On("WithinTx", ctx).Return(nil)

	orderRepo.On("ListByUserID", ctx, int64(1)).Return([]model.Order{
		{ID: 100, UserID: 1, ProductID: 1, Quantity: 2, TotalAmount: 20.0,
			OrderDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)
	userRepo.On("FindByID", ctx, int64(1)).Return(model.User{ID: 1, Username: "alice"}, nil)
	productRepo.On("FindByID", ctx, int64(1)).Return(model.Product{ID: 1, Name: "Coffee Beans"}, nil)

	uc := newOrderUsecaseForTest(t, tx)

	got, err := uc.ListByUser(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 20.0, got[0].TotalAmount)
	assert.Equal(t, "2026-01-01T05:30:00", got[0].OrderDate)
}

// Test: 注文の無いユーザーの履歴は404
func TestOrderListByUserEmpty(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	orderRepo.On("ListByUserID", ctx, int64(7)).Return([]model.Order{}, nil)

	tx := &TxManagerMock{Repos: &TxReposMock{orders: orderRepo}}
	tx.On("WithinTx", ctx).Return(nil)

	uc := newOrderUsecaseForTest(t, tx)

	_, err := uc.ListByUser(ctx, 7)
	assertErrContains(t, err, "no orders found for user 7")
}

// Test: 出品者視点の注文一覧
func TestOrderListByAdmin(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	productRepo := new(ProductRepoMock)
	userRepo := new(UserRepoMock)

	tx := &TxManagerMock{Repos: &TxReposMock{
		orders:   orderRepo,
		products: productRepo,
		users:    userRepo,
	}}
	tx.On("WithinTx", ctx).Return(nil)

	orderRepo.On("ListByAdminID", ctx, int64(1)).Return([]model.Order{
		{ID: 100, UserID: 1, ProductID: 1, Quantity: 3, TotalAmount: 30.0,
			OrderDate: time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)},
	}, nil)
	userRepo.On("FindByID", ctx, int64(1)).Return(model.User{ID: 1, Username: "alice"}, nil)
	productRepo.On("FindByID", ctx, int64(1)).Return(model.Product{ID: 1, Name: "Coffee Beans", AdminID: 1}, nil)

	uc := newOrderUsecaseForTest(t, tx)

	got, err := uc.ListByAdmin(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].Quantity)
}

// Test: 注文削除はスナップショットとメッセージを返す
func TestOrderDelete(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	orderRepo.On("FindByID", ctx, int64(100)).Return(model.Order{
		ID: 100, UserID: 1, ProductID: 1, Quantity: 2, TotalAmount: 20.0,
		OrderDate: time.Date(2026, 5, 1, 6, 30, 0, 0, time.UTC),
	}, nil)
	orderRepo.On("DeleteByID", ctx, int64(100)).Return(nil)

	tx := &TxManagerMock{Repos: &TxReposMock{orders: orderRepo}}
	tx.On("WithinTx", ctx).Return(nil)

	uc := newOrderUsecaseForTest(t, tx)

	got, err := uc.Delete(ctx, 100)
	assert.NoError(t, err)
	assert.Equal(t, int64(100), got.ID)
	assert.Equal(t, "order 100 deleted successfully", got.Message)
	assert.Equal(t, "2026-05-01T12:00:00", got.OrderDate)
}

// Test: 存在しない注文の削除は404
func TestOrderDeleteNotFound(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	orderRepo.On("FindByID", ctx, int64(999)).Return(model.Order{}, repo.ErrNotFound)

	tx := &TxManagerMock{Repos: &TxReposMock{orders: orderRepo}}
	tx.On("WithinTx", ctx).Return(nil)

	uc := newOrderUsecaseForTest(t, tx)

	_, err := uc.Delete(ctx, 999)
	assertErrContains(t, err, "order with id 999 not found")
	orderRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}
