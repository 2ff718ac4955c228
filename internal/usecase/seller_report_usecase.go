package usecase

import (
	"context"
	"net/http"

	repo "app/internal/repository"
)

// SellerReportUsecase は出品者向けの売上レポート。読み取りのみ。
type SellerReportUsecase struct {
	orderRepo repo.OrderRepository
}

// DI
func NewSellerReportUsecase(orderRepo repo.OrderRepository) *SellerReportUsecase {
	return &SellerReportUsecase{orderRepo: orderRepo}
}

type ProductSalesView struct {
	Name          string `json:"name"`
	TotalQuantity int64  `json:"total_quantity"`
}

// SalesByProduct は出品者の商品ごとの販売数量合計
func (u *SellerReportUsecase) SalesByProduct(ctx context.Context, adminID int64) ([]ProductSalesView, error) {
	rows, err := u.orderRepo.SalesByProduct(ctx, adminID)
	if err != nil {
		return []ProductSalesView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(rows) == 0 {
		return []ProductSalesView{}, NewHTTPError(http.StatusNotFound, "no sales data found for this seller")
	}

	views := make([]ProductSalesView, 0, len(rows))
	for _, row := range rows {
		views = append(views, ProductSalesView{
			Name:          row.Name,
			TotalQuantity: row.TotalQuantity,
		})
	}
	return views, nil
}

// OrdersByMonth は指定年の月×商品ごとの注文件数。
// 12ヶ月全てのキーを必ず含み、データの無い月は空マップのまま
// （ゼロ埋めはしない。リファレンス仕様を踏襲）。
func (u *SellerReportUsecase) OrdersByMonth(ctx context.Context, year int) (map[int]map[int64]int64, error) {
	rows, err := u.orderRepo.MonthlyOrders(ctx, year)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(rows) == 0 {
		return nil, NewHTTPError(http.StatusNotFound, "no orders found for this year")
	}

	byMonth := make(map[int]map[int64]int64, 12)
	for month := 1; month <= 12; month++ {
		byMonth[month] = map[int64]int64{}
	}
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		byMonth[row.Month][row.ProductID] = row.OrderCount
	}

	return byMonth, nil
}

// Years は注文が存在する年の一覧。
// リファレンス同様、出品者では絞り込まず全注文の年を返す。
func (u *SellerReportUsecase) Years(ctx context.Context) ([]int, error) {
	years, err := u.orderRepo.DistinctYears(ctx)
	if err != nil {
		return []int{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return years, nil
}
