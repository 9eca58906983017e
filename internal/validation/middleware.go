package validation

import (
	"encoding/json"
	"io"
	"net/http"

	"tienda-api/internal/api"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const inputKey = "validation.input"

// Input 通過驗證後的正規化值；只包含規則宣告過且出現在請求中的欄位
type Input struct {
	Params map[string]any
	Body   map[string]any
}

// Has 欄位是否出現在請求 body（包含明確的 null）
func (in *Input) Has(field string) bool {
	_, ok := in.Body[field]
	return ok
}

func (in *Input) Value(field string) any {
	return in.Body[field]
}

func (in *Input) String(field string) string {
	s, _ := in.Body[field].(string)
	return s
}

// StringPtr null 或缺席時回傳 nil
func (in *Input) StringPtr(field string) *string {
	s, ok := in.Body[field].(string)
	if !ok {
		return nil
	}
	return &s
}

func (in *Input) Float(field string) float64 {
	f, _ := in.Body[field].(float64)
	return f
}

func (in *Input) Int(field string) int {
	i, _ := in.Body[field].(int)
	return i
}

// ID 已驗證的 path 參數 id
func (in *Input) ID() int {
	i, _ := in.Params["id"].(int)
	return i
}

// Run 執行所有規則並累積違規，不會因第一個違規就停止
func Run(v *validator.Validate, rules []*Rule, params, body map[string]any) (*Input, []api.Violation) {
	in := &Input{Params: map[string]any{}, Body: map[string]any{}}
	var violations []api.Violation
	for _, r := range rules {
		src, dst := body, in.Body
		if r.in == InParam {
			src, dst = params, in.Params
		}
		value, present, msg := r.evaluate(v, src)
		if msg != "" {
			violations = append(violations, api.Violation{Field: r.field, Message: msg})
			continue
		}
		if present {
			dst[r.field] = value
		}
	}
	return in, violations
}

// Validate 在 handler 前執行規則；有任何違規就回 400 並結束請求
func Validate(v *validator.Validate, rules ...*Rule) echo.MiddlewareFunc {
	needsBody := false
	for _, r := range rules {
		if r.in == InBody {
			needsBody = true
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			params := make(map[string]any, len(c.ParamNames()))
			for _, name := range c.ParamNames() {
				params[name] = c.Param(name)
			}

			body := map[string]any{}
			if needsBody {
				var err error
				body, err = decodeBody(c.Request())
				if err != nil {
					return c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{
						Errors: []api.Violation{{Field: "body", Message: "must be a JSON object"}},
					})
				}
			}

			in, violations := Run(v, rules, params, body)
			if len(violations) > 0 {
				return c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Errors: violations})
			}
			c.Set(inputKey, in)
			return next(c)
		}
	}
}

// FromContext 取出 Validate 存入的 Input；未經驗證的路由回傳空 Input
func FromContext(c echo.Context) *Input {
	if in, ok := c.Get(inputKey).(*Input); ok {
		return in
	}
	return &Input{Params: map[string]any{}, Body: map[string]any{}}
}

// 空 body 視為空物件
func decodeBody(r *http.Request) (map[string]any, error) {
	if r.Body == nil {
		return map[string]any{}, nil
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}
