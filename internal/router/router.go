// File: internal/router/router.go
package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tienda-api/internal/database"
	"tienda-api/internal/handler"
	"tienda-api/internal/handler/products"
	"tienda-api/internal/handler/users"
	"tienda-api/internal/validation"
)

// Setup 註冊所有路由；每條路由先經過自己的驗證規則
func Setup(e *echo.Echo, db database.DB, v *validator.Validate) {
	// 健康檢查
	e.GET("/", handler.HealthHandler())
	e.GET("/ping", handler.PingHandler(db))

	// Usuarios CRUD
	u := e.Group("/usuarios")
	u.GET("", users.ListUsersHandler(db))
	u.GET("/:id", users.GetUserHandler(db), validation.Validate(v, users.IDRules()...))
	u.POST("", users.CreateUserHandler(db), validation.Validate(v, users.CreateRules()...))
	u.PUT("/:id", users.UpdateUserHandler(db), validation.Validate(v, users.UpdateRules()...))
	u.DELETE("/:id", users.DeleteUserHandler(db), validation.Validate(v, users.IDRules()...))

	// Productos CRUD
	p := e.Group("/productos")
	p.GET("", products.ListProductsHandler(db))
	p.GET("/:id", products.GetProductHandler(db), validation.Validate(v, products.IDRules()...))
	p.POST("", products.CreateProductHandler(db), validation.Validate(v, products.CreateRules()...))
	p.PUT("/:id", products.UpdateProductHandler(db), validation.Validate(v, products.UpdateRules()...))
	p.DELETE("/:id", products.DeleteProductHandler(db), validation.Validate(v, products.IDRules()...))

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
