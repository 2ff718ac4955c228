package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

// 全ハンドラの束
type Handlers struct {
	User         *handler.UserHandler
	Admin        *handler.AdminHandler
	Product      *handler.ProductHandler
	Cart         *handler.CartHandler
	Order        *handler.OrderHandler
	SellerReport *handler.SellerReportHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.User.RegisterRoutes(e)
	h.Admin.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.SellerReport.RegisterRoutes(e)

	//ルート直下の /:product_id を含むので最後に登録する
	h.Product.RegisterRoutes(e)
}
