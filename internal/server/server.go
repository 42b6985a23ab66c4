package server

import (
	"net/http"

	"storefront-api/internal/handler"
	"storefront-api/internal/middleware"
	"storefront-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	authHandler     *handler.AuthHandler
	productHandler  *handler.ProductHandler
	categoryHandler *handler.CategoryHandler
	orderHandler    *handler.OrderHandler
	authService     service.AuthService
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func NewServer(
	authService service.AuthService,
	catalogService service.CatalogService,
	categoryService service.CategoryService,
	orderService service.OrderService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:            e,
		authHandler:     handler.NewAuthHandler(authService),
		productHandler:  handler.NewProductHandler(catalogService),
		categoryHandler: handler.NewCategoryHandler(categoryService),
		orderHandler:    handler.NewOrderHandler(orderService),
		authService:     authService,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "storefront API is running")
	})

	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(s.authService)
	requireAdmin := middleware.RequireAdmin()

	// -------- auth --------
	auth := api.Group("/auth")
	auth.POST("/register", s.authHandler.Register)
	auth.POST("/login", s.authHandler.Login)
	auth.GET("/profile", s.authHandler.GetProfile, requireAuth)
	auth.PUT("/profile", s.authHandler.UpdateProfile, requireAuth)

	// -------- products --------
	products := api.Group("/products")
	products.GET("", s.productHandler.ListProducts)
	products.GET("/:id", s.productHandler.GetProduct)
	products.POST("", s.productHandler.CreateProduct, requireAuth, requireAdmin)
	products.PUT("/:id", s.productHandler.UpdateProduct, requireAuth, requireAdmin)
	products.DELETE("/:id", s.productHandler.DeleteProduct, requireAuth, requireAdmin)

	// -------- categories --------
	categories := api.Group("/categories")
	categories.GET("", s.categoryHandler.ListCategories)
	categories.POST("", s.categoryHandler.CreateCategory, requireAuth, requireAdmin)
	categories.PUT("/:id", s.categoryHandler.UpdateCategory, requireAuth, requireAdmin)
	categories.DELETE("/:id", s.categoryHandler.DeleteCategory, requireAuth, requireAdmin)

	// -------- orders --------
	orders := api.Group("/orders")
	orders.POST("", s.orderHandler.PlaceOrder, requireAuth)
	orders.GET("/myorders", s.orderHandler.ListMyOrders, requireAuth)
	orders.GET("", s.orderHandler.ListAllOrders, requireAuth, requireAdmin)
	orders.PUT("/:id", s.orderHandler.UpdateOrderStatus, requireAuth, requireAdmin)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
