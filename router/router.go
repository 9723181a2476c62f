package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/controllers"
	"github.com/ardiansyah/laundry-pos/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	roleCtrl := controllers.NewRoleController(db)
	customerCtrl := controllers.NewCustomerController(db)
	categoryCtrl := controllers.NewProductCategoryController(db)
	productCtrl := controllers.NewProductTypeController(db)
	actionCtrl := controllers.NewServiceActionController(db)
	offeringCtrl := controllers.NewServiceOfferingController(db)
	quoteCtrl := controllers.NewQuoteController(db)
	orderCtrl := controllers.NewOrderController(db)
	boardCtrl := controllers.NewBoardController(db)
	paymentCtrl := controllers.NewPaymentController(db)
	tableCtrl := controllers.NewTableController(db)
	reservationCtrl := controllers.NewReservationController(db)
	expenseCtrl := controllers.NewExpenseController(db)
	supplierCtrl := controllers.NewSupplierController(db)
	inventoryCtrl := controllers.NewInventoryController(db)
	purchaseCtrl := controllers.NewPurchaseController(db)
	notificationCtrl := controllers.NewNotificationController(db)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Katalog bisa dibaca tanpa login (dipakai layar pemesanan)
	r.GET("/categories", categoryCtrl.GetAllCategories)
	r.GET("/products", productCtrl.GetAllProductTypes)
	r.GET("/products/:product_id", productCtrl.GetProductTypeByID)
	r.GET("/offerings", offeringCtrl.GetAllOfferings)
	r.GET("/offerings/:offering_id", offeringCtrl.GetOfferingByID)

	// Kalkulasi harga per baris keranjang
	r.POST("/quotes", quoteCtrl.GetQuote)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)
	auth.POST("/logout", userCtrl.Logout)
	auth.POST("/change-password", userCtrl.ChangePassword)

	// USERS & ROLES (admin)
	auth.GET("/users", middlewares.RequireRole("admin"), userCtrl.GetAllUsers)
	auth.PATCH("/users/:user_id", middlewares.RequireRole("admin"), userCtrl.UpdateUser)
	auth.DELETE("/users/:user_id", middlewares.RequireRole("admin"), userCtrl.DeleteUser)

	auth.GET("/roles", middlewares.RequireRole("admin"), roleCtrl.GetAllRoles)
	auth.POST("/roles", middlewares.RequireRole("admin"), roleCtrl.CreateRole)
	auth.PATCH("/roles/:role_id", middlewares.RequireRole("admin"), roleCtrl.UpdateRole)
	auth.DELETE("/roles/:role_id", middlewares.RequireRole("admin"), roleCtrl.DeleteRole)
	auth.PUT("/roles/:role_id/permissions", middlewares.RequireRole("admin"), roleCtrl.SetRolePermissions)
	auth.GET("/navigation-items", roleCtrl.GetNavigationItems)
	auth.POST("/navigation-items", middlewares.RequireRole("admin"), roleCtrl.CreateNavigationItem)
	auth.DELETE("/navigation-items/:item_id", middlewares.RequireRole("admin"), roleCtrl.DeleteNavigationItem)

	// CUSTOMERS (staff/admin)
	auth.GET("/customers", customerCtrl.GetAllCustomers)
	auth.POST("/customers", customerCtrl.CreateCustomer)
	auth.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
	auth.PATCH("/customers/:customer_id", customerCtrl.UpdateCustomer)
	auth.DELETE("/customers/:customer_id", middlewares.Can(db, "customers.delete"), customerCtrl.DeleteCustomer)

	// CATALOG (staff/admin)
	auth.POST("/categories", middlewares.Can(db, "catalog.manage"), categoryCtrl.CreateCategory)
	auth.PATCH("/categories/:cat_id", middlewares.Can(db, "catalog.manage"), categoryCtrl.UpdateCategory)
	auth.DELETE("/categories/:cat_id", middlewares.Can(db, "catalog.manage"), categoryCtrl.DeleteCategory)

	auth.POST("/products", middlewares.Can(db, "catalog.manage"), productCtrl.CreateProductType)
	auth.PATCH("/products/:product_id", middlewares.Can(db, "catalog.manage"), productCtrl.UpdateProductType)
	auth.DELETE("/products/:product_id", middlewares.Can(db, "catalog.manage"), productCtrl.DeleteProductType)

	auth.GET("/actions", actionCtrl.GetAllActions)
	auth.POST("/actions", middlewares.Can(db, "catalog.manage"), actionCtrl.CreateAction)
	auth.PATCH("/actions/:action_id", middlewares.Can(db, "catalog.manage"), actionCtrl.UpdateAction)
	auth.DELETE("/actions/:action_id", middlewares.Can(db, "catalog.manage"), actionCtrl.DeleteAction)

	auth.POST("/offerings", middlewares.Can(db, "catalog.manage"), offeringCtrl.CreateOffering)
	auth.PATCH("/offerings/:offering_id", middlewares.Can(db, "catalog.manage"), offeringCtrl.UpdateOffering)
	auth.DELETE("/offerings/:offering_id", middlewares.Can(db, "catalog.manage"), offeringCtrl.DeleteOffering)
	auth.PUT("/offerings/:offering_id/customer-prices", middlewares.Can(db, "catalog.manage"), offeringCtrl.SetCustomerPrice)
	auth.GET("/offerings/:offering_id/customer-prices", offeringCtrl.GetCustomerPrices)

	// ORDERS (staff/admin)
	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.POST("/orders", orderCtrl.CreateOrder)
	auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	auth.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	auth.DELETE("/orders/:order_id", middlewares.Can(db, "orders.delete"), orderCtrl.DeleteOrder)

	// BOARD (staff/admin)
	auth.GET("/board", boardCtrl.GetBoard)
	auth.PATCH("/board/orders/:order_id/move", boardCtrl.MoveOrder)

	// PAYMENTS (staff/admin)
	auth.GET("/payments", paymentCtrl.GetPayments)
	auth.POST("/payments", paymentCtrl.CreatePayment)
	auth.GET("/payments/:payment_id", paymentCtrl.GetPaymentByID)
	auth.DELETE("/payments/:payment_id", middlewares.Can(db, "payments.delete"), paymentCtrl.DeletePayment)

	// TABLES & RESERVATIONS (staff/admin)
	auth.GET("/tables", tableCtrl.GetAllTables)
	auth.POST("/tables", middlewares.Can(db, "tables.manage"), tableCtrl.CreateTable)
	auth.PATCH("/tables/:table_id", tableCtrl.UpdateTableStatus)
	auth.DELETE("/tables/:table_id", middlewares.Can(db, "tables.manage"), tableCtrl.DeleteTable)

	auth.GET("/reservations", reservationCtrl.GetAllReservations)
	auth.POST("/reservations", reservationCtrl.CreateReservation)
	auth.PATCH("/reservations/:reservation_id", reservationCtrl.UpdateReservationStatus)
	auth.DELETE("/reservations/:reservation_id", reservationCtrl.DeleteReservation)

	// EXPENSES (staff/admin)
	auth.GET("/expense-categories", expenseCtrl.GetAllExpenseCategories)
	auth.POST("/expense-categories", middlewares.Can(db, "expenses.manage"), expenseCtrl.CreateExpenseCategory)
	auth.DELETE("/expense-categories/:cat_id", middlewares.Can(db, "expenses.manage"), expenseCtrl.DeleteExpenseCategory)
	auth.GET("/expenses", expenseCtrl.GetAllExpenses)
	auth.POST("/expenses", expenseCtrl.CreateExpense)
	auth.PATCH("/expenses/:expense_id", expenseCtrl.UpdateExpense)
	auth.DELETE("/expenses/:expense_id", middlewares.Can(db, "expenses.manage"), expenseCtrl.DeleteExpense)

	// SUPPLIERS & INVENTORY (staff/admin)
	auth.GET("/suppliers", supplierCtrl.GetAllSuppliers)
	auth.POST("/suppliers", supplierCtrl.CreateSupplier)
	auth.PATCH("/suppliers/:supplier_id", supplierCtrl.UpdateSupplier)
	auth.DELETE("/suppliers/:supplier_id", middlewares.Can(db, "inventory.manage"), supplierCtrl.DeleteSupplier)

	auth.GET("/inventory", inventoryCtrl.GetAllItems)
	auth.POST("/inventory", inventoryCtrl.CreateItem)
	auth.PATCH("/inventory/:item_id", inventoryCtrl.UpdateItem)
	auth.DELETE("/inventory/:item_id", middlewares.Can(db, "inventory.manage"), inventoryCtrl.DeleteItem)
	auth.POST("/inventory/:item_id/consume", purchaseCtrl.ConsumeStock)

	auth.GET("/purchases", purchaseCtrl.GetAllPurchases)
	auth.POST("/purchases", purchaseCtrl.CreatePurchase)
	auth.POST("/purchases/:purchase_id/receive", purchaseCtrl.ReceivePurchase)
	auth.POST("/purchases/:purchase_id/cancel", purchaseCtrl.CancelPurchase)

	// NOTIFICATIONS (staff/admin)
	auth.GET("/notifications", notificationCtrl.GetNotifications)
	auth.POST("/notifications", notificationCtrl.CreateNotification)
	auth.DELETE("/notifications/:notification_id", notificationCtrl.DeleteNotification)

	// Routes untuk Admin
	auth.GET("/dashboard/stats", middlewares.RequireRole("admin"), adminCtrl.GetDashboardStats)
	auth.GET("/reports/revenue", middlewares.RequireRole("admin"), adminCtrl.GetRevenueReport)
	auth.GET("/reports/orders/export", middlewares.RequireRole("admin"), adminCtrl.ExportOrdersCSV)

	// WebSocket endpoint dengan middleware auth (token lewat query string)
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.AuthMiddleware())
	{
		wsGroup.GET("/board", controllers.BoardStreamHandler)
	}

	return r
}
