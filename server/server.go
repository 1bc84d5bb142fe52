package server

import (
	"context"
	"fmt"
	"net/http"

	"repair-server/confs"
	"repair-server/db"
	"repair-server/handlers"
	httpHandler "repair-server/handlers/http"
	"repair-server/repositories"
	"repair-server/usecases"
	"repair-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/sirupsen/logrus"
)

// Repositories is the record store the server works against.
type Repositories struct {
	Devices     repositories.DeviceRepository
	Parts       repositories.PartRepository
	Technicians repositories.TechnicianRepository
	Services    repositories.ServiceRepository
}

// PgRepositories builds the postgres-backed store.
func PgRepositories(database db.Database) Repositories {
	return Repositories{
		Devices:     repositories.NewDevicePgRepository(database),
		Parts:       repositories.NewPartPgRepository(database),
		Technicians: repositories.NewTechnicianPgRepository(database),
		Services:    repositories.NewServicePgRepository(database),
	}
}

type Server struct {
	app        *gin.Engine
	httpServer *http.Server
	feed       *ws.Manager
	log        *logrus.Logger
}

func NewServer(cfg *confs.Config, log *logrus.Logger, repos Repositories, nrApp *newrelic.Application) *Server {
	gin.SetMode(cfg.Server.Mode)

	s := &Server{
		app:  gin.New(),
		feed: ws.NewManager(log),
		log:  log,
	}

	s.app.Use(gin.Recovery())
	s.app.Use(requestLogger(log))

	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	s.app.Use(cors.New(config))

	if nrApp != nil {
		s.app.Use(nrgin.Middleware(nrApp))
	}

	if cfg.Metrics.Enabled {
		metrics := NewMetrics()
		s.app.Use(metrics.Middleware())
		s.app.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	s.routes(repos)

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: s.app,
	}
	return s
}

func (s *Server) routes(repos Repositories) {
	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	// Initialize use cases
	validator := usecases.NewValidator(repos.Devices, repos.Parts, repos.Technicians, repos.Services)
	composer := usecases.NewServiceComposer(repos.Devices, repos.Technicians, repos.Parts, repos.Services, validator, s.feed)

	deviceUseCase := usecases.NewDeviceUseCase(repos.Devices, validator)
	partUseCase := usecases.NewPartUseCase(repos.Parts, validator)
	technicianUseCase := usecases.NewTechnicianUseCase(repos.Technicians, validator)
	serviceUseCase := usecases.NewServiceUseCase(repos.Services, composer)

	// Initialize handlers
	deviceHandler := httpHandler.NewDeviceHandler(deviceUseCase, s.log)
	partHandler := httpHandler.NewPartHandler(partUseCase, s.log)
	technicianHandler := httpHandler.NewTechnicianHandler(technicianUseCase, s.log)
	serviceHandler := httpHandler.NewServiceHandler(serviceUseCase, s.log)
	wsHandler := handlers.NewWSHandler(s.feed, s.log)

	devices := s.app.Group("/dispositivos")
	{
		devices.GET("/", deviceHandler.GetAllDevices)
		devices.POST("/", deviceHandler.CreateDevice)
		devices.PUT("/", deviceHandler.UpdateDevice) // ?id=
		devices.GET("/:id", deviceHandler.GetDevice)
		devices.PUT("/:id", deviceHandler.UpdateDevice)
		devices.DELETE("/:id", deviceHandler.DeleteDevice)
	}

	parts := s.app.Group("/pecas")
	{
		parts.GET("/", partHandler.GetAllParts)
		parts.POST("/", partHandler.CreatePart)
		parts.PUT("/", partHandler.UpdatePart) // ?id=
		parts.GET("/:id", partHandler.GetPart)
		parts.PUT("/:id", partHandler.UpdatePart)
		parts.DELETE("/:id", partHandler.DeletePart)
	}

	technicians := s.app.Group("/tecnicos")
	{
		technicians.GET("/", technicianHandler.GetAllTechnicians)
		technicians.POST("/", technicianHandler.CreateTechnician)
		technicians.PUT("/", technicianHandler.UpdateTechnician) // ?id=
		technicians.GET("/:id", technicianHandler.GetTechnician)
		technicians.PUT("/:id", technicianHandler.UpdateTechnician)
		technicians.DELETE("/:id", technicianHandler.DeleteTechnician)
	}

	services := s.app.Group("/servicos")
	{
		services.GET("/", serviceHandler.GetAllServices)
		services.POST("/", serviceHandler.CreateService)
		services.POST("/pecas_utilizadas", serviceHandler.AttachPart) // ?servico_id=
		services.GET("/tipo/:tipo", serviceHandler.GetServicesByType)
		services.GET("/tecnico/:id", serviceHandler.GetServicesByTechnician)
		services.GET("/:id", serviceHandler.GetService)
		services.PUT("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)
	}

	// Change feed for dashboards
	s.app.GET("/ws", wsHandler.HandleFeed)
	s.app.GET("/ws/clients", wsHandler.GetConnectedClients)
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.app
}

func (s *Server) Start() error {
	s.log.Infof("Starting server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
