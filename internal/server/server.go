package server

import (
	"net/http"

	"app/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New はechoインスタンスを組み立てる。
// CORSはリファレンス同様すべてのオリジンを許可する。
func New(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	//商品画像の配信
	e.Static("/static", "static")

	return e
}

// Start はルーティングを登録してListenする
func Start(e *echo.Echo, cfg config.Config, h Handlers) error {
	RegisterRoutes(e, h)

	addr := cfg.Port
	if addr == "" || addr[0] != ':' {
		addr = ":" + addr
	}
	return e.Start(addr)
}
