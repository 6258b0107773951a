package pkg

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"space_catalog/internal/app/config"
	"space_catalog/internal/app/handler"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(cfg *config.Config, router *gin.Engine, hand *handler.Handler) *App {
	return &App{
		Config:  cfg,
		Router:  router,
		Handler: hand,
	}
}

// RunApp — регистрация маршрутов и запуск HTTP-сервера
func (a *App) RunApp() {
	a.Handler.SetupRoutes(a.Router)

	addr := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("server started at %s", addr)
	if err := a.Router.Run(addr); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
