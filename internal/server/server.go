package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Start はechoを組み立ててHTTPサーバーを起動する。
func Start(
	addr string,
	cfg config.Config,
	authH *handler.AuthHandler,
	menuH *handler.MenuHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
	groupH *handler.GroupHandler,
) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	authH.RegisterRoutes(e)
	menuH.RegisterRoutes(e, cfg)
	cartH.RegisterRoutes(e, cfg)
	orderH.RegisterRoutes(e, cfg)
	groupH.RegisterRoutes(e, cfg)

	return e.Start(addr)
}
