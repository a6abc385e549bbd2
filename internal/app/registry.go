package app

import (
	"github.com/PhoorinS/leave-system-dfd/internal/bootstrap"
	"github.com/PhoorinS/leave-system-dfd/internal/dashboard"
	"github.com/PhoorinS/leave-system-dfd/internal/leave"
	"github.com/PhoorinS/leave-system-dfd/internal/report"
	"github.com/PhoorinS/leave-system-dfd/internal/sheet"
	"github.com/gin-gonic/gin"
)

func registerModules(router *gin.Engine, client *sheet.Client) leave.Service {
	// --- State ---
	store := leave.NewStore()

	// --- Services ---
	leaveService := leave.NewService(client, store)

	// --- Handlers ---
	audit := bootstrap.NewStdoutAuditLogger()
	leaveHandler := leave.NewHandler(leaveService, audit)
	dashboardHandler := dashboard.NewHandler(leaveService)
	reportHandler := report.NewHandler(leaveService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		leave.RegisterRoutes(api, leaveHandler)
		dashboard.RegisterRoutes(api, dashboardHandler)
		report.RegisterRoutes(api, reportHandler)
	}

	return leaveService
}
