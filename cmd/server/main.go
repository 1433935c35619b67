package main

import (
	"strings"

	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/audit"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/auth"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/config"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/dashboard"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/database"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/employee"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/feedback"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/inventory"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/logger"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/menu"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/models"
	"github.com/Natnael47/Cafeteria-Order-Management-System-sub000/internal/orders"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	logger.Init()
	defer logger.Sync()

	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"success": false,
					"message": e.Message,
				})
			}
			logger.L.Errorw("unexpected error", "path", c.Path(), "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Get("/menu", menu.ListFoodsHandler())
	api.Post("/orders", orders.PlaceOrderHandler())
	api.Get("/orders/track/:number", orders.TrackOrderHandler())
	api.Post("/feedback", feedback.CreateFeedbackHandler())

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Admin only
	adminRoutes := protected.Group("")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Get("/employees", employee.ListEmployeesHandler())
	adminRoutes.Post("/employees", employee.CreateEmployeeHandler())
	adminRoutes.Put("/employees/:id", employee.UpdateEmployeeHandler())
	adminRoutes.Delete("/employees/:id", employee.DeleteEmployeeHandler())

	adminRoutes.Post("/menu", menu.CreateFoodHandler())
	adminRoutes.Put("/menu/:id", menu.UpdateFoodHandler())
	adminRoutes.Delete("/menu/:id", menu.DeleteFoodHandler())

	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	// Kitchen & floor staff
	staff := protected.Group("")
	staff.Use(auth.RequireRole(models.RoleAdmin, models.RoleChef, models.RoleWaiter, models.RoleInventoryManager))

	staff.Get("/orders", orders.ListOrdersHandler())
	staff.Put("/orders/:id/status", orders.UpdateOrderStatusHandler())
	staff.Get("/feedback", feedback.ListFeedbackHandler())
	staff.Get("/dashboard", dashboard.OverviewHandler())

	// Any authenticated employee can request stock for their station.
	staff.Post("/inventory/requests", inventory.CreateInventoryRequestHandler())
	staff.Get("/inventory/requests", inventory.ListInventoryRequestsHandler())

	// Stock ledger: inventory managers and admins
	stock := protected.Group("/inventory")
	stock.Use(auth.RequireRole(models.RoleAdmin, models.RoleInventoryManager))

	stock.Post("/items", inventory.CreateItemHandler())
	stock.Get("/items", inventory.ListItemsHandler())
	stock.Get("/items/:id", inventory.GetItemHandler())
	stock.Put("/items/:id", inventory.UpdateItemHandler())
	stock.Delete("/items/:id", inventory.DeleteItemHandler())

	stock.Post("/items/:id/stock", inventory.AddStockHandler())
	stock.Post("/items/:id/withdraw", inventory.WithdrawStockHandler())
	stock.Get("/items/:id/batches", inventory.ListBatchesHandler())
	stock.Get("/withdrawals", inventory.ListWithdrawalsHandler())

	stock.Post("/suppliers", inventory.CreateSupplierHandler())
	stock.Get("/suppliers", inventory.ListSuppliersHandler())
	stock.Put("/suppliers/:id", inventory.UpdateSupplierHandler())
	stock.Delete("/suppliers/:id", inventory.DeleteSupplierHandler())

	stock.Post("/supplier-orders", inventory.CreateSupplierOrderHandler())
	stock.Get("/supplier-orders", inventory.ListSupplierOrdersHandler())
	stock.Post("/supplier-orders/:id/cancel", inventory.CancelSupplierOrderHandler())

	stock.Post("/packages", inventory.CreatePackageHandler())
	stock.Get("/packages", inventory.ListPackagesHandler())
	stock.Get("/packages/:id", inventory.GetPackageHandler())
	stock.Post("/packages/:id/orders", inventory.AddOrderToPackageHandler())
	stock.Delete("/packages/:id/orders/:orderId", inventory.RemoveOrderFromPackageHandler())
	stock.Post("/packages/:id/receive", inventory.ReceivePackageHandler())

	stock.Post("/requests/:id/approve", inventory.ApproveInventoryRequestHandler())
	stock.Get("/export", inventory.ExportInventoryHandler())

	logger.L.Infow("server starting", "port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.L.Fatalw("server stopped", "error", err)
	}
}
