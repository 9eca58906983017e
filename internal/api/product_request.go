// File: internal/api/product_request.go
package api

// swagger:model api.CreateProductRequest
type CreateProductRequest struct {
	Nombre      string   `json:"nombre" example:"Teclado"`
	Descripcion *string  `json:"descripcion,omitempty" example:"Mecánico"`
	Precio      *float64 `json:"precio,omitempty" example:"49.9"`
}

// swagger:model api.UpdateProductRequest
type UpdateProductRequest struct {
	Nombre      *string  `json:"nombre,omitempty" example:"Teclado"`
	Descripcion *string  `json:"descripcion,omitempty" example:"Mecánico"`
	Precio      *float64 `json:"precio,omitempty" example:"39.9"`
}

// swagger:model api.ProductCreatedResponse
type ProductCreatedResponse struct {
	ID          int     `json:"id" example:"1"`
	Nombre      string  `json:"nombre" example:"Teclado"`
	Descripcion *string `json:"descripcion" example:"Mecánico"`
	Precio      float64 `json:"precio" example:"49.9"`
}
