package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-kam-api/internal/application/analytics"
	"github.com/jhoicas/crm-kam-api/internal/application/auth"
	"github.com/jhoicas/crm-kam-api/internal/application/usecase"
	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
	"github.com/jhoicas/crm-kam-api/internal/domain/routing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Routes      *routing.Table
	Sessions    SessionReader
	AuthUC      *auth.AuthUseCase
	CustomerUC  *usecase.CustomerUseCase
	ContactUC   *usecase.ContactUseCase
	ActivityUC  *usecase.ActivityUseCase
	ReportUC    *usecase.ReportUseCase
	SalesPlanUC *usecase.SalesPlanUseCase
	AMProfileUC *usecase.AMProfileUseCase
	ApprovalUC  *usecase.ApprovalUseCase
	DashboardUC *analytics.DashboardUseCase
	UserRepo    repository.UserRepository
	JWTSecret   string
}

// Router registra las rutas de la API. Los grupos replican la matriz de roles
// de la tabla de navegación: customers para los tres roles, contacts y
// sales-plans para el AM, bandejas y resúmenes por rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, salvo logout)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Get("/managers", authHandler.Managers)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Navegación: la puerta decide con identidad posiblemente ausente
	navHandler := NewNavigationHandler(deps.Routes, deps.Sessions)
	api.Get("/navigation", OptionalAuth(deps.JWTSecret), navHandler.Decide)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers (todos los roles)
	customers := protected.Group("/customers", RequireRole(entity.AllRoles()...))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Contacts (AM)
	contacts := protected.Group("/contacts", RequireRole(entity.RoleSales))
	contactHandler := NewContactHandler(deps.ContactUC)
	contacts.Get("/", contactHandler.List)
	contacts.Post("/", contactHandler.Create)
	contacts.Get("/:id", contactHandler.GetByID)
	contacts.Put("/:id", contactHandler.Update)
	contacts.Delete("/:id", contactHandler.Delete)

	// Activities (AM y admin)
	activities := protected.Group("/activities", RequireRole(entity.RoleSales, entity.RoleAdmin))
	activityHandler := NewActivityHandler(deps.ActivityUC, deps.ReportUC, deps.UserRepo)
	activities.Get("/", activityHandler.List)
	activities.Post("/", activityHandler.Create)
	activities.Get("/report/pdf", activityHandler.ReportPDF)
	activities.Get("/:id", activityHandler.GetByID)
	activities.Put("/:id", activityHandler.Update)
	activities.Delete("/:id", activityHandler.Delete)
	activities.Post("/:id/outlook", activityHandler.Outlook)
	activities.Put("/:id/documents", activityHandler.Documents)

	// Sales plans (AM)
	salesPlanHandler := NewSalesPlanHandler(deps.SalesPlanUC, deps.UserRepo)
	salesPlans := protected.Group("/sales-plans", RequireRole(entity.RoleSales))
	salesPlans.Get("/", salesPlanHandler.List)
	salesPlans.Post("/", salesPlanHandler.Create)
	salesPlans.Get("/:id", salesPlanHandler.GetByID)
	salesPlans.Put("/:id", salesPlanHandler.Update)
	salesPlans.Delete("/:id", salesPlanHandler.Delete)

	// Perfiles de AM (todos los roles)
	profiles := protected.Group("/profile/am", RequireRole(entity.AllRoles()...))
	amProfileHandler := NewAMProfileHandler(deps.AMProfileUC)
	profiles.Get("/", amProfileHandler.List)
	profiles.Post("/", amProfileHandler.Create)
	profiles.Get("/detail", amProfileHandler.Detail)
	profiles.Put("/detail", amProfileHandler.Update)

	// Bandeja y vistas del manager (admin también puede entrar)
	approvalHandler := NewApprovalHandler(deps.ApprovalUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	manager := protected.Group("/manager", RequireRole(entity.RoleManager, entity.RoleAdmin))
	manager.Get("/approval", approvalHandler.PendingManager)
	manager.Post("/approval/:id/approve", approvalHandler.Approve)
	manager.Post("/approval/:id/reject", approvalHandler.Reject)
	manager.Get("/summary", dashboardHandler.ManagerSummary)
	manager.Get("/sales-plans", salesPlanHandler.ListAll)

	// Bandeja del admin
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Get("/approval", approvalHandler.PendingAdmin)
	admin.Post("/approval/:id/approve", approvalHandler.Approve)
	admin.Post("/approval/:id/reject", approvalHandler.Reject)

	// Dashboard ejecutivo (admin)
	executive := protected.Group("/executive", RequireRole(entity.RoleAdmin))
	executive.Get("/summary", dashboardHandler.ExecutiveSummary)
}
