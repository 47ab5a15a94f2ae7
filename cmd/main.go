package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/lmoretti/workcrew-backend/config"
	"github.com/lmoretti/workcrew-backend/database"
	"github.com/lmoretti/workcrew-backend/routes"
)

func main() {
	cfg := config.Load()

	// Fail fast if the DB is not up yet.
	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg)

	addr := ":" + cfg.AppPort
	logrus.Infof("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		logrus.Fatal(err)
	}
}
