package products

import (
	"net/http"

	"tienda-api/internal/api"
	"tienda-api/internal/database"
	"tienda-api/internal/handler"
	"tienda-api/internal/model"
	"tienda-api/internal/store"
	"tienda-api/internal/validation"

	"github.com/labstack/echo/v4"
)

const msgNotFound = "Producto no encontrado"

var (
	listProducts   = store.ListProducts
	getProductByID = store.GetProductByID
	createProduct  = store.CreateProduct
	updateProduct  = store.UpdateProduct
	deleteProduct  = store.DeleteProduct
)

// @Summary     List products
// @Description 回傳所有產品，依 id 由新到舊
// @Tags        productos
// @Produce     json
// @Success     200 {array}  model.Product
// @Failure     500 {object} api.ErrorResponse
// @Router      /productos [get]
func ListProductsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		products, err := listProducts(handler.QueryContext(c), db)
		if err != nil {
			return handler.Error(c, err, msgNotFound)
		}
		return c.JSON(http.StatusOK, products)
	}
}

// @Summary     Get a product by ID
// @Tags        productos
// @Produce     json
// @Param       id  path     int true "產品 ID"
// @Success     200 {object} model.Product
// @Failure     400 {object} api.ValidationErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /productos/{id} [get]
func GetProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		in := validation.FromContext(c)
		p, err := getProductByID(handler.QueryContext(c), db, in.ID())
		if err != nil {
			return handler.Error(c, err, msgNotFound)
		}
		return c.JSON(http.StatusOK, p)
	}
}

// @Summary     Create a new product
// @Tags        productos
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateProductRequest true "產品資料"
// @Success     201  {object} api.ProductCreatedResponse
// @Failure     400  {object} api.ValidationErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /productos [post]
func CreateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		in := validation.FromContext(c)
		p, err := createProduct(handler.QueryContext(c), db, &model.Product{
			Nombre:      in.String("nombre"),
			Descripcion: in.StringPtr("descripcion"),
			Precio:      in.Float("precio"),
		})
		if err != nil {
			return handler.Error(c, err, msgNotFound)
		}
		return c.JSON(http.StatusCreated, api.ProductCreatedResponse{
			ID:          p.ID,
			Nombre:      p.Nombre,
			Descripcion: p.Descripcion,
			Precio:      p.Precio,
		})
	}
}

// @Summary     Update a product
// @Description 只更新 body 中出現的欄位；descripcion 可設為 null
// @Tags        productos
// @Accept      json
// @Produce     json
// @Param       id   path     int                      true "產品 ID"
// @Param       body body     api.UpdateProductRequest true "要更新的欄位"
// @Success     200  {object} api.UpdatedResponse
// @Failure     400  {object} api.BadRequestResponse "驗證失敗回 errors；沒有任何欄位回 error"
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /productos/{id} [put]
func UpdateProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		in := validation.FromContext(c)
		set := store.Pick(store.ProductColumns, in.Has, in.Value)
		if err := updateProduct(handler.QueryContext(c), db, in.ID(), set); err != nil {
			return handler.Error(c, err, msgNotFound)
		}
		return c.JSON(http.StatusOK, api.UpdatedResponse{OK: true, ID: in.ID()})
	}
}

// @Summary     Delete a product
// @Tags        productos
// @Produce     json
// @Param       id  path     int true "產品 ID"
// @Success     200 {object} api.OKResponse
// @Failure     400 {object} api.ValidationErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /productos/{id} [delete]
func DeleteProductHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		in := validation.FromContext(c)
		if err := deleteProduct(handler.QueryContext(c), db, in.ID()); err != nil {
			return handler.Error(c, err, msgNotFound)
		}
		return c.JSON(http.StatusOK, api.OKResponse{OK: true})
	}
}
