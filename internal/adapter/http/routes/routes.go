package routes

import (
	"log"
	"os"
	"time"

	_ "habita_crm/docs" // This will be auto-generated
	"habita_crm/internal/adapter/http/handlers"
	"habita_crm/internal/adapter/persistence/repository"
	"habita_crm/internal/domain/entities"
	"habita_crm/internal/infrastructure/database"
	"habita_crm/internal/infrastructure/realtime"
	"habita_crm/internal/usecase"
	"habita_crm/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	clock := interfaces.UTCClock{}
	hub := realtime.NewLeadHub()

	leadRepo := repository.NewLeadDynamoRepository(ddb)
	approvalRepo := repository.NewApprovalDynamoRepository(ddb)
	clientRepo := repository.NewClientDynamoRepository(ddb)
	brokerRepo := repository.NewBrokerDynamoRepository(ddb)
	propertyRepo := repository.NewPropertyDynamoRepository(ddb)
	bankRepo := repository.NewBankDynamoRepository(ddb)
	companyRepo := repository.NewConstructionCompanyDynamoRepository(ddb)

	leadUseCase := usecase.NewLeadUseCase(leadRepo, clientRepo, approvalRepo, clock, hub)
	approvalUseCase := usecase.NewApprovalUseCase(approvalRepo, leadRepo, clock, hub)
	dashboardUseCase := usecase.NewDashboardUseCase(leadRepo, propertyRepo, brokerRepo, clock)

	leadHandler := handlers.NewLeadHandler(leadUseCase, clock)
	streamHandler := handlers.NewLeadStreamHandler(leadUseCase, hub, clock)
	approvalHandler := handlers.NewApprovalHandler(approvalUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	clientHandler := handlers.NewReferenceHandler(clientRepo, clock,
		func(c *entities.Client, id string, now time.Time) {
			if c.ID == "" {
				c.ID = id
			}
			c.CreatedAt = now
		},
		func(c entities.Client) string { return c.ID })
	brokerHandler := handlers.NewReferenceHandler(brokerRepo, clock,
		func(b *entities.Broker, id string, now time.Time) {
			if b.ID == "" {
				b.ID = id
			}
			b.CreatedAt = now
		},
		func(b entities.Broker) string { return b.ID })
	propertyHandler := handlers.NewReferenceHandler(propertyRepo, clock,
		func(p *entities.Property, id string, now time.Time) {
			if p.ID == "" {
				p.ID = id
			}
			p.CreatedAt = now
		},
		func(p entities.Property) string { return p.ID })
	bankHandler := handlers.NewReferenceHandler(bankRepo, clock,
		func(b *entities.Bank, id string, now time.Time) {
			if b.ID == "" {
				b.ID = id
			}
			b.CreatedAt = now
		},
		func(b entities.Bank) string { return b.ID })
	companyHandler := handlers.NewReferenceHandler(companyRepo, clock,
		func(c *entities.ConstructionCompany, id string, now time.Time) {
			if c.ID == "" {
				c.ID = id
			}
			c.CreatedAt = now
		},
		func(c entities.ConstructionCompany) string { return c.ID })

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPipelineRoutes(v1, leadHandler, streamHandler, approvalHandler, dashboardHandler)
	addReferenceRoutes(v1, clientHandler, brokerHandler, propertyHandler, bankHandler, companyHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
