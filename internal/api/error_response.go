// File: internal/api/error_response.go
package api

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Error string `json:"error" example:"Producto no encontrado"`
}

// swagger:model api.Violation
type Violation struct {
	Field   string `json:"field" example:"correo"`
	Message string `json:"message" example:"must be a valid email"`
}

// ValidationErrorResponse 欄位驗證失敗時回傳所有違規
// swagger:model api.ValidationErrorResponse
type ValidationErrorResponse struct {
	Errors []Violation `json:"errors"`
}

// BadRequestResponse 部分更新的 400 有兩種形狀：欄位違規 (errors) 或沒有欄位 (error)
// swagger:model api.BadRequestResponse
type BadRequestResponse struct {
	Error  string      `json:"error,omitempty" example:"no fields to update"`
	Errors []Violation `json:"errors,omitempty"`
}
