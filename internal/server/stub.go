package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/schooldash/internal/config"
	"github.com/yigit/schooldash/internal/pkg/auth"
	"github.com/yigit/schooldash/internal/pkg/helpers"
	"github.com/yigit/schooldash/internal/seed"
	"github.com/yigit/schooldash/internal/stubapi"
)

// StubServer serves the in-memory school API used for development and tests.
type StubServer struct {
	addr   string
	router *gin.Engine
	logger zerolog.Logger
	http   *http.Server
}

// NewStubServer seeds a fresh store and builds the API router.
func NewStubServer(cfg *config.Config, lgr zerolog.Logger) (*StubServer, error) {
	store := stubapi.NewStore()
	err := seed.CreateDefaultData(store, seed.Options{
		SuperAdminEmail:     cfg.Stub.AdminEmail,
		SuperAdminPassword:  cfg.Stub.AdminPassword,
		SchoolAdminEmail:    cfg.Stub.SchoolAdminEmail,
		SchoolAdminPassword: cfg.Stub.SchoolAdminPassword,
	}, lgr)
	if err != nil {
		// Partial seed data is still usable.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	jwt := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.Stub.JWTSecret,
		AccessTokenExp: helpers.ParseDuration(cfg.Stub.TokenTTL, 12*time.Hour),
		TokenIssuer:    "schooldash-stub",
	})
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	return &StubServer{
		addr:   ":" + cfg.Stub.Port,
		router: stubapi.NewRouter(store, jwt, lgr),
		logger: lgr,
	}, nil
}

// Run serves the stub API until a shutdown signal arrives.
func (s *StubServer) Run() error {
	s.http = &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return serve(s.http, s.logger, s.Shutdown)
}

// Shutdown stops the stub API.
func (s *StubServer) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
