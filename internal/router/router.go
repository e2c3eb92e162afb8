package router

import (
	"log/slog"
	"os"

	"github.com/colombiamoda/internal/config"
	"github.com/colombiamoda/internal/handler"
	"github.com/colombiamoda/internal/page"
	"github.com/colombiamoda/internal/view"
	"github.com/gin-gonic/gin"
)

// SiteMeta derives the document metadata from configuration.
func SiteMeta(cfg config.AppConfig) view.PageMeta {
	return view.PageMeta{
		Title:       cfg.SiteTitle,
		Description: "La semana de la moda de Colombia®",
		BaseURL:     cfg.SiteBaseURL,
	}
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(cfg config.AppConfig, log *slog.Logger) *gin.Engine {
	api := handler.NewAPI(page.Site{Meta: SiteMeta(cfg)}, log)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestID(), api.RequestLogger())

	// 静态文件服务
	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		r.Static("/static", cfg.StaticDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	r.GET("/", api.ShowLanding)
	r.HEAD("/", api.ShowLanding)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/sections", api.GetSections)
	}

	return r
}
