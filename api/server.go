package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/starmind/account-relay/api/apistrings"
	"github.com/starmind/account-relay/models"
	"github.com/starmind/account-relay/providers"
	"github.com/starmind/account-relay/providers/brokerage"
	"github.com/starmind/account-relay/services/monitoring/logging"
	"github.com/starmind/account-relay/utils"
)

const ServiceName = "Account Creation API"

type Server struct {
	router   *gin.Engine
	config   *utils.Config
	logger   *logging.Logger
	provider *providers.ProviderService
}

func NewServer(envPath string) *Server {
	c, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	l := logging.NewLogger()
	p := providers.NewProviderService()

	// Set up the broker integration
	mt := brokerage.NewMatchTradeProvider()
	p.AddProvider(mt)

	s := &Server{
		router:   newRouter(l),
		config:   c,
		logger:   l,
		provider: p,
	}
	s.registerRoutes()

	return s
}

func newRouter(l *logging.Logger) *gin.Engine {
	g := gin.New()

	// Faults anywhere in the pipeline still produce the uniform envelope
	g.Use(gin.CustomRecovery(func(ctx *gin.Context, err any) {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.NewError(apistrings.ServerError))
	}))
	g.Use(CORSMiddleware())
	g.Use(l.LoggingMiddleWare())

	return g
}

func (s *Server) registerRoutes() {

	dr := models.ServiceInfo{
		Service: ServiceName,
		Status:  "running",
		Endpoints: map[string]string{
			"health":         "/health",
			"create_account": "/api/accounts/simple",
		},
	}

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dr)
	})

	s.router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, models.HealthResponse{
			Status:  "healthy",
			Service: ServiceName,
			CORS:    "enabled",
		})
	})

	/// Register Object Routers Below
	Accounts{}.router(s)

	s.router.HandleMethodNotAllowed = true
	s.router.NoMethod(func(ctx *gin.Context) {
		ctx.JSON(http.StatusMethodNotAllowed, models.NewError(apistrings.MethodNotAllowed))
	})
	s.router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, models.NewError(apistrings.EndpointNotFound))
	})
}

func (s *Server) Start() {
	s.router.Run(fmt.Sprintf(":%v", s.config.ServerPort))
}
