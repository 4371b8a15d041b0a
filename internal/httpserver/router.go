package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cema-admin/internal/blob"
	"cema-admin/internal/render"
	"cema-admin/internal/service/calculator"
	"cema-admin/internal/service/chat"
	"cema-admin/internal/service/offering"
	"cema-admin/internal/service/portfolio"
	"cema-admin/internal/service/quiz"
	"cema-admin/internal/service/users"
	"cema-admin/internal/state"
	"cema-admin/internal/store"
)

// Deps carries the wired services into the router.
type Deps struct {
	Tree       *state.Tree
	Store      store.Adapter
	Portfolios *portfolio.Service
	Offerings  *offering.Service
	Quiz       *quiz.Service
	Chat       *chat.Service
	Users      *users.Service
	Calculator *calculator.Service
	Renderer   *render.Renderer
	Blobs      blob.Store

	CORSOrigins []string
}

// buildRouter wires routes for the dashboard API.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(deps.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = deps.CORSOrigins
		corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
		router.Use(cors.New(corsCfg))
	}

	m := newMetrics()
	router.Use(m.middleware())
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Store))

	registerUploadRoutes(router, deps)

	admin := router.Group("/admin")
	registerPanelRoutes(admin, deps)
	registerPortfolioRoutes(admin.Group("/portfolios"), deps)
	registerOfferingRoutes(admin.Group("/services"), deps)
	registerQuizRoutes(admin, deps)
	registerChatRoutes(admin.Group("/chat"), deps)
	registerUserRoutes(admin.Group("/users"), deps)
	registerCalculatorRoutes(admin.Group("/calculator"), deps)

	// The public quiz posts its outcome without the /admin prefix.
	router.POST("/quiz/results", appendQuizResult(deps))

	return router, nil
}
