package routes

import (
	"habita_crm/internal/adapter/http/handlers"
	"habita_crm/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// Reference collections get seeding and read endpoints only; the generic
// administrative CRUD screens live outside this service.
func addReferenceRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ReferenceHandler[entities.Client],
	brokerHandler *handlers.ReferenceHandler[entities.Broker],
	propertyHandler *handlers.ReferenceHandler[entities.Property],
	bankHandler *handlers.ReferenceHandler[entities.Bank],
	companyHandler *handlers.ReferenceHandler[entities.ConstructionCompany],
) {
	addCollection(rg, "/clients", clientHandler.Create, clientHandler.List, clientHandler.Get)
	addCollection(rg, "/brokers", brokerHandler.Create, brokerHandler.List, brokerHandler.Get)
	addCollection(rg, "/properties", propertyHandler.Create, propertyHandler.List, propertyHandler.Get)
	addCollection(rg, "/banks", bankHandler.Create, bankHandler.List, bankHandler.Get)
	addCollection(rg, "/companies", companyHandler.Create, companyHandler.List, companyHandler.Get)
}

func addCollection(rg *gin.RouterGroup, path string, create, list, get gin.HandlerFunc) {
	group := rg.Group(path)
	{
		group.POST("", create)
		group.GET("", list)
		group.GET("/:id", get)
	}
}
