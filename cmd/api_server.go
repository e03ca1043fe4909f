package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Depado/ginprom"
	"github.com/aurowora/compress"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/rm-hull/prop-firms-api/internal"
	"github.com/rm-hull/prop-firms-api/internal/routes"
	healthcheck "github.com/tavsec/gin-healthcheck"
	"github.com/tavsec/gin-healthcheck/checks"
	hc_config "github.com/tavsec/gin-healthcheck/config"
)

func ApiServer(port int, debug bool) error {

	app, err := bootstrap()
	if err != nil {
		return err
	}

	c, err := internal.StartCron(app.cfg.RefreshSchedule, app.source)
	if err != nil {
		return fmt.Errorf("failed to start CRON jobs: %w", err)
	}
	defer c.Stop()

	r := gin.New()

	prometheus := ginprom.New(
		ginprom.Engine(r),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/healthz"),
	)

	r.Use(
		gin.Recovery(),
		gin.LoggerWithWriter(gin.DefaultWriter, "/healthz", "/metrics"),
		routes.RequestID(),
		prometheus.Instrument(),
		compress.Compress(),
		cors.Default(),
	)

	if debug {
		log.Println("WARNING: pprof endpoints are enabled and exposed. Do not run with this flag in production.")
		pprof.Register(r)
	}

	err = healthcheck.New(r, hc_config.DefaultConfig(), []checks.Check{
		app.client.Check(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize healthcheck: %v", err)
	}

	api := r.Group("/api/firms")
	api.GET("", routes.Firms(app.source))
	api.GET("/stats", routes.Stats(app.source))
	api.GET("/export.xlsx", routes.Export(app.source, app.builder))
	api.GET("/:key", routes.Firm(app.source, app.builder))

	r.GET("/go/:slug", routes.Redirect(app.source, app.builder, app.cfg.Redirects))

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Starting HTTP API Server on port %d...", port)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP API Server failed to start on port %d: %v", port, err)
	}

	return nil
}
