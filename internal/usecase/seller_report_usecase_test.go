package usecase_test

import (
	"context"
	"testing"

	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

// Test: 商品別売上集計
func TestSellerSalesByProduct(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	orderRepo.On("SalesByProduct", ctx, int64(1)).Return([]repo.ProductSalesRow{
		{Name: "Coffee Beans", TotalQuantity: 12},
		{Name: "Tea Leaves", TotalQuantity: 4},
	}, nil)

	uc := usecase.NewSellerReportUsecase(orderRepo)

	got, err := uc.SalesByProduct(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Coffee Beans", got[0].Name)
	assert.Equal(t, int64(12), got[0].TotalQuantity)
}

// Test: 売上が無い出品者は404
func TestSellerSalesByProductEmpty(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	orderRepo.On("SalesByProduct", ctx, int64(9)).Return([]repo.ProductSalesRow{}, nil)

	uc := usecase.NewSellerReportUsecase(orderRepo)

	_, err := uc.SalesByProduct(ctx, 9)
	assertErrContains(t, err, "no sales data found for this seller")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

// Test: 月別集計は12ヶ月全てのキーを含む（データの無い月は空マップ）
func TestSellerOrdersByMonth(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	orderRepo.On("MonthlyOrders", ctx, 2026).Return([]repo.MonthlyOrderRow{
		{ProductID: 1, Month: 3, OrderCount: 2},
		{ProductID: 2, Month: 3, OrderCount: 1},
		{ProductID: 1, Month: 11, OrderCount: 5},
	}, nil)

	uc := usecase.NewSellerReportUsecase(orderRepo)

	got, err := uc.OrdersByMonth(ctx, 2026)
	assert.NoError(t, err)
	assert.Len(t, got, 12)
	for month := 1; month <= 12; month++ {
		assert.Contains(t, got, month)
	}

	assert.Equal(t, map[int64]int64{1: 2, 2: 1}, got[3])
	assert.Equal(t, map[int64]int64{1: 5}, got[11])
	assert.Empty(t, got[6])
}

// Test: 指定年に注文が無ければ404
func TestSellerOrdersByMonthEmptyYear(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	orderRepo.On("MonthlyOrders", ctx, 1999).Return([]repo.MonthlyOrderRow{}, nil)

	uc := usecase.NewSellerReportUsecase(orderRepo)

	_, err := uc.OrdersByMonth(ctx, 1999)
	assertErrContains(t, err, "no orders found for this year")
}

// Test: 年一覧（注文が無ければ空リスト、404にはしない）
func TestSellerYears(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	orderRepo.On("DistinctYears", ctx).Return([]int{2025, 2026}, nil)

	uc := usecase.NewSellerReportUsecase(orderRepo)

	got, err := uc.Years(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []int{2025, 2026}, got)
}
