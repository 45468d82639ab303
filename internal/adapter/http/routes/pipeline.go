package routes

import (
	"habita_crm/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads     = "/leads"
	PathApprovals = "/approvals"
	PathDashboard = "/dashboard"
	PathBrokers   = "/brokers"
)

func addPipelineRoutes(
	rg *gin.RouterGroup,
	leadHandler *handlers.LeadHandler,
	streamHandler *handlers.LeadStreamHandler,
	approvalHandler *handlers.ApprovalHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.CreateLead)
		leads.GET("", leadHandler.ListLeads)
		leads.GET("/stream", streamHandler.StreamLeads)
		leads.GET("/:id", leadHandler.GetLead)
		leads.PATCH("/:id/advance", leadHandler.AdvanceLead)
		leads.PATCH("/:id/override", leadHandler.OverrideLead)
		leads.POST("/:id/regress", leadHandler.RegressLead)
		leads.DELETE("/:id", leadHandler.DeleteLead)
	}

	approvals := rg.Group(PathApprovals)
	{
		approvals.GET("", approvalHandler.ListApprovals)
		approvals.PATCH("/:id/approve", approvalHandler.ApproveRequest)
		approvals.PATCH("/:id/deny", approvalHandler.DenyRequest)
	}

	rg.GET(PathDashboard, dashboardHandler.GetDashboard)
	rg.GET(PathBrokers+"/:id/commission", dashboardHandler.GetBrokerCommission)
}
