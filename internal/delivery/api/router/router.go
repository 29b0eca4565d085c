// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hospital/internal/delivery/api/middleware"
	"hospital/internal/delivery/api/router/handler"
	deliverymiddleware "hospital/internal/delivery/middleware"
	"hospital/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	PatientHandler   *handler.PatientHandler
	DietChartHandler *handler.DietChartHandler
	MealHandler      *handler.MealHandler
	DeliveryHandler  *handler.DeliveryHandler
	PantryHandler    *handler.PantryHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
	RateLimiter      *deliverymiddleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	patientHandler   *handler.PatientHandler
	dietChartHandler *handler.DietChartHandler
	mealHandler      *handler.MealHandler
	deliveryHandler  *handler.DeliveryHandler
	pantryHandler    *handler.PantryHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
	rateLimiter      *deliverymiddleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		patientHandler:   params.PatientHandler,
		dietChartHandler: params.DietChartHandler,
		mealHandler:      params.MealHandler,
		deliveryHandler:  params.DeliveryHandler,
		pantryHandler:    params.PantryHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
		rateLimiter:      params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public auth routes, throttled per client IP
	limited := r.rateLimiter.Handle()
	api.POST("/register", r.authHandler.Register, limited)
	api.POST("/login", r.authHandler.Login, limited)

	// Everything below requires a bearer token
	protected := api.Group("")
	protected.Use(r.authMiddleware.Authenticate)

	protected.GET("/get-user", r.authHandler.GetUser)

	dashboardGroup := protected.Group("/dashboard")
	{
		dashboardGroup.GET("/stats", r.dashboardHandler.GetStats)
		dashboardGroup.GET("/recent-activities", r.dashboardHandler.GetRecentActivities)
	}

	patientRoles := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleManager)
	kitchenRoles := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RolePantry)
	deliveryRoles := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleDelivery)
	pantryRoles := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RolePantry)

	patientsGroup := protected.Group("/patients")
	{
		patientsGroup.POST("", r.patientHandler.CreatePatient, patientRoles)
		patientsGroup.GET("", r.patientHandler.ListPatients, patientRoles)
		patientsGroup.GET("/:id", r.patientHandler.GetPatient, patientRoles)
		patientsGroup.PUT("/:id", r.patientHandler.UpdatePatient, patientRoles)
		patientsGroup.DELETE("/:id", r.patientHandler.DeletePatient, patientRoles)

		// Nested listings follow the role gate of the resource they return
		patientsGroup.GET("/:patientId/diet-charts", r.dietChartHandler.ListPatientDietCharts, kitchenRoles)
		patientsGroup.GET("/:patientId/deliveries", r.deliveryHandler.ListPatientDeliveries, deliveryRoles)
	}

	dietChartsGroup := protected.Group("/diet-charts", kitchenRoles)
	{
		dietChartsGroup.POST("", r.dietChartHandler.CreateDietChart)
		dietChartsGroup.GET("", r.dietChartHandler.ListDietCharts)
		dietChartsGroup.GET("/:id", r.dietChartHandler.GetDietChart)
		dietChartsGroup.PUT("/:id", r.dietChartHandler.UpdateDietChart)
		dietChartsGroup.DELETE("/:id", r.dietChartHandler.DeleteDietChart)
		dietChartsGroup.GET("/:dietChartId/meals", r.dietChartHandler.ListDietChartMeals)
	}

	mealsGroup := protected.Group("/meals", kitchenRoles)
	{
		mealsGroup.POST("", r.mealHandler.CreateMeal)
		mealsGroup.GET("", r.mealHandler.ListMeals)
		mealsGroup.GET("/:id", r.mealHandler.GetMeal)
		mealsGroup.PUT("/:id", r.mealHandler.UpdateMeal)
		mealsGroup.DELETE("/:id", r.mealHandler.DeleteMeal)
	}

	deliveriesGroup := protected.Group("/deliveries", deliveryRoles)
	{
		deliveriesGroup.POST("", r.deliveryHandler.CreateDelivery)
		deliveriesGroup.GET("", r.deliveryHandler.ListDeliveries)
		deliveriesGroup.GET("/status/:status", r.deliveryHandler.ListDeliveriesByStatus)
		deliveriesGroup.GET("/assigned/:assignedTo", r.deliveryHandler.ListAssignedDeliveries)
		deliveriesGroup.GET("/:id", r.deliveryHandler.GetDelivery)
		deliveriesGroup.PATCH("/:id/status", r.deliveryHandler.UpdateDeliveryStatus)
		deliveriesGroup.DELETE("/:id", r.deliveryHandler.DeleteDelivery)
	}

	pantryGroup := protected.Group("/pantry/staff", pantryRoles)
	{
		pantryGroup.POST("", r.pantryHandler.CreateStaff)
		pantryGroup.GET("", r.pantryHandler.ListStaff)
		pantryGroup.GET("/location/:location", r.pantryHandler.ListStaffByLocation)
		pantryGroup.GET("/:id", r.pantryHandler.GetStaff)
		pantryGroup.PUT("/:id", r.pantryHandler.UpdateStaff)
		pantryGroup.DELETE("/:id", r.pantryHandler.DeleteStaff)
	}
}
