// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/IanSalomao/churchflow/internal/memberdelivery"
	"github.com/IanSalomao/churchflow/internal/memberrepo"
	"github.com/IanSalomao/churchflow/internal/memberservice"
	"github.com/IanSalomao/churchflow/internal/metricsdelivery"
	"github.com/IanSalomao/churchflow/internal/metricsrepo"
	"github.com/IanSalomao/churchflow/internal/metricsservice"
	"github.com/IanSalomao/churchflow/internal/middleware"
	"github.com/IanSalomao/churchflow/internal/ministrydelivery"
	"github.com/IanSalomao/churchflow/internal/ministryrepo"
	"github.com/IanSalomao/churchflow/internal/ministryservice"
	"github.com/IanSalomao/churchflow/internal/sessiondelivery"
	"github.com/IanSalomao/churchflow/internal/sessionrepo"
	"github.com/IanSalomao/churchflow/internal/sessionservice"
	"github.com/IanSalomao/churchflow/internal/transactiondelivery"
	"github.com/IanSalomao/churchflow/internal/transactionrepo"
	"github.com/IanSalomao/churchflow/internal/transactionservice"
	"github.com/IanSalomao/churchflow/internal/userdelivery"
	"github.com/IanSalomao/churchflow/internal/userrepo"
	"github.com/IanSalomao/churchflow/internal/userservice"
	"github.com/IanSalomao/churchflow/pkg/configpkg"
	"github.com/IanSalomao/churchflow/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	sessionRepo := sessionrepo.NewRepoPGS(conn)
	memberRepo := memberrepo.NewRepoPGS(conn)
	ministryRepo := ministryrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)
	metricsRepo := metricsrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	userService := userservice.New(userRepo)
	memberService := memberservice.New(memberRepo)
	ministryService := ministryservice.New(ministryRepo, memberRepo)
	transactionService := transactionservice.New(transactionRepo)
	metricsService := metricsservice.New(metricsRepo)

	sessionService, err := sessionservice.New(sessionRepo, config, tokenMaker)
	if err != nil {
		return nil, errors.New("cannot initialize session service")
	}

	userHandler := userdelivery.NewHandler(userService, sessionService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)
	memberHandler := memberdelivery.NewHandler(memberService)
	ministryHandler := ministrydelivery.NewHandler(ministryService)
	transactionHandler := transactiondelivery.NewHandler(transactionService)
	metricsHandler := metricsdelivery.NewHandler(metricsService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/users", userHandler.Create)
	engine.POST("/users/login", userHandler.Login)
	engine.POST("/sessions", sessionHandler.RenewAccessToken)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(sessionService.TokenMaker))

	authRoutes.POST("/members", memberHandler.Create)
	authRoutes.GET("/members", memberHandler.List)
	authRoutes.GET("/members/:id", memberHandler.Get)
	authRoutes.PATCH("/members/:id", memberHandler.Update)
	authRoutes.DELETE("/members/:id", memberHandler.Delete)

	authRoutes.POST("/ministries", ministryHandler.Create)
	authRoutes.GET("/ministries", ministryHandler.List)
	authRoutes.GET("/ministries/:id", ministryHandler.Get)
	authRoutes.PATCH("/ministries/:id", ministryHandler.Update)
	authRoutes.DELETE("/ministries/:id", ministryHandler.Delete)

	authRoutes.POST("/transactions", transactionHandler.Create)
	authRoutes.GET("/transactions", transactionHandler.List)
	authRoutes.GET("/transactions/:id", transactionHandler.Get)
	authRoutes.DELETE("/transactions/:id", transactionHandler.Delete)

	authRoutes.GET("/metrics/financial", metricsHandler.Financial)
	authRoutes.GET("/metrics/members", metricsHandler.Members)
	authRoutes.GET("/metrics/ministries", metricsHandler.Ministries)
	authRoutes.GET("/metrics/dashboard", metricsHandler.Dashboard)

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
