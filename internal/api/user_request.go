// File: internal/api/user_request.go
package api

// 以下 request 型別只用於 swagger 文件，實際驗證由 validation 規則處理

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Nombre   string `json:"nombre" example:"Ana"`
	Apellido string `json:"apellido" example:"Li"`
	Correo   string `json:"correo" example:"ana@example.com"`
}

// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Nombre   *string `json:"nombre,omitempty" example:"Ana"`
	Apellido *string `json:"apellido,omitempty" example:"Li"`
	Correo   *string `json:"correo,omitempty" example:"ana@example.com"`
}

// swagger:model api.UserCreatedResponse
type UserCreatedResponse struct {
	ID       int    `json:"id" example:"1"`
	Nombre   string `json:"nombre" example:"Ana"`
	Apellido string `json:"apellido" example:"Li"`
	Correo   string `json:"correo" example:"ana@example.com"`
}
