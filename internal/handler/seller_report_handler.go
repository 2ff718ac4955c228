package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 出品者向け売上レポートのHTTP
type SellerReportHandler struct {
	uc *usecase.SellerReportUsecase
}

// DI
func NewSellerReportHandler(uc *usecase.SellerReportUsecase) *SellerReportHandler {
	return &SellerReportHandler{uc: uc}
}

func (h *SellerReportHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/admins/:admin_id/product-sales", h.productSales)
	e.GET("/admins/:admin_id/products/:year/monthly-orders", h.monthlyOrders)
	e.GET("/admins/:admin_id/years", h.years)
}

func (h *SellerReportHandler) productSales(c echo.Context) error {
	adminID, err := strconv.ParseInt(c.Param("admin_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid admin_id"})
	}

	out, err := h.uc.SalesByProduct(c.Request().Context(), adminID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SellerReportHandler) monthlyOrders(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid year"})
	}

	out, err := h.uc.OrdersByMonth(c.Request().Context(), year)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SellerReportHandler) years(c echo.Context) error {
	out, err := h.uc.Years(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
