package api

// swagger:model api.OKResponse
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// swagger:model api.UpdatedResponse
type UpdatedResponse struct {
	OK bool `json:"ok" example:"true"`
	ID int  `json:"id" example:"1"`
}

// swagger:model api.HealthResponse
type HealthResponse struct {
	OK  bool   `json:"ok" example:"true"`
	Msg string `json:"msg" example:"API funcionando"`
}
