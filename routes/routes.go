package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/lmoretti/workcrew-backend/config"
	"github.com/lmoretti/workcrew-backend/database"
	"github.com/lmoretti/workcrew-backend/handlers"
	"github.com/lmoretti/workcrew-backend/leave"
	"github.com/lmoretti/workcrew-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	engine := leave.NewEngine(database.DB)
	engine.WorkDayHours = cfg.WorkDayHours
	engine.StrictBalance = cfg.StrictBalanceCheck

	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	wrk := handlers.NewWorkerHandler()
	ws := handlers.NewWorksiteHandler()
	veh := handlers.NewVehicleHandler()
	cl := handlers.NewClientHandler()
	inv := handlers.NewInvoiceHandler()
	te := handlers.NewTimeEntryHandler()
	lb := handlers.NewLeaveBalanceHandler(engine)
	lr := handlers.NewLeaveRequestHandler(engine)
	av := handlers.NewAvailabilityHandler(engine)
	ann := handlers.NewAnnouncementHandler()
	ntf := handlers.NewNotificationHandler()
	acc := handlers.NewWorkerAccountHandler()
	dash := handlers.NewDashboardHandler(engine)
	rep := handlers.NewReportHandler(engine)

	// ===== Public =====
	e.POST("/auth/login", auth.Login)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	// ===== Worker routes (any authenticated staff) =====
	worker := e.Group("/worker", authMW, middlewares.RequireRole("worker", "admin"))

	worker.GET("/balance", lb.My)
	worker.POST("/leave-requests", lr.Submit)
	worker.GET("/leave-requests", lr.ListMine)

	worker.GET("/availability", av.Board)
	worker.GET("/availability/calendar", av.Calendar)

	worker.GET("/time-entries", te.List)
	worker.POST("/time-entries", te.Create)

	worker.GET("/announcements", ann.List)
	worker.GET("/notifications", ntf.Poll)
	worker.GET("/notifications/count", ntf.Count)

	// ===== Admin routes =====
	admin := e.Group("/admin", authMW, middlewares.RequireRole("admin"))

	admin.GET("/workers", wrk.List)
	admin.GET("/workers/:id", wrk.Get)
	admin.POST("/workers", wrk.Create)
	admin.PUT("/workers/:id", wrk.Update)
	admin.DELETE("/workers/:id", acc.DeleteWorker)

	admin.GET("/workers/:id/balance", lb.Get)
	admin.PUT("/workers/:id/balance", lb.Set)

	admin.GET("/worksites", ws.List)
	admin.POST("/worksites", ws.Create)
	admin.PUT("/worksites/:id", ws.Update)
	admin.DELETE("/worksites/:id", ws.Delete)

	admin.GET("/vehicles", veh.List)
	admin.POST("/vehicles", veh.Create)
	admin.PUT("/vehicles/:id", veh.Update)
	admin.DELETE("/vehicles/:id", veh.Delete)

	admin.GET("/clients", cl.List)
	admin.POST("/clients", cl.Create)
	admin.PUT("/clients/:id", cl.Update)
	admin.DELETE("/clients/:id", cl.Delete)

	admin.GET("/invoices", inv.List)
	admin.POST("/invoices", inv.Create)
	admin.PUT("/invoices/:id", inv.Update)
	admin.DELETE("/invoices/:id", inv.Delete)

	admin.GET("/time-entries", te.List)
	admin.POST("/time-entries", te.Create)
	admin.DELETE("/time-entries/:id", te.Delete)

	admin.GET("/leave-requests", lr.List)
	admin.GET("/leave-requests/pending-count", lr.PendingCount)
	admin.POST("/leave-requests/:id/approve", lr.Approve)
	admin.POST("/leave-requests/:id/reject", lr.Reject)

	admin.GET("/announcements", ann.List)
	admin.POST("/announcements", ann.Create)
	admin.PUT("/announcements/:id", ann.Update)
	admin.DELETE("/announcements/:id", ann.Delete)

	admin.GET("/worker-accounts", acc.List)
	admin.POST("/worker-accounts", acc.Create)
	admin.POST("/worker-accounts/:id/reset", acc.ResetPassword)

	admin.GET("/dashboard", dash.Summary)
	admin.GET("/reports/timesheet.xlsx", rep.Timesheet)
}
