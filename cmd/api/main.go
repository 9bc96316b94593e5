package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/NovaMenteServices/clinic-manager/internal/cache"
	"github.com/NovaMenteServices/clinic-manager/internal/config"
	dbpkg "github.com/NovaMenteServices/clinic-manager/internal/db"
	"github.com/NovaMenteServices/clinic-manager/internal/middleware"
	"github.com/NovaMenteServices/clinic-manager/internal/routes"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	cacheClient := cache.NewRedisClient(cfg.RedisAddr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, cacheClient)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
