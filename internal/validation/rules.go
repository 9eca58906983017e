// Package validation 宣告式欄位規則：每個 Rule 對應一個欄位與一串檢查，
// 所有規則都會執行並累積違規，任何違規都讓請求在進入 handler 前結束。
package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Location int

const (
	InParam Location = iota
	InBody
)

// check 回傳正規化後的值；msg 非空表示失敗
type check func(v *validator.Validate, value any) (out any, msg string)

type Rule struct {
	field    string
	in       Location
	optional bool
	nullable bool
	checks   []check
	message  string
}

// Param 建立 path 參數規則
func Param(name string) *Rule { return &Rule{field: name, in: InParam} }

// Body 建立 JSON body 欄位規則
func Body(name string) *Rule { return &Rule{field: name, in: InBody} }

func (r *Rule) Field() string      { return r.field }
func (r *Rule) Location() Location { return r.in }

// Optional 欄位缺席時略過整條規則；出現時仍完整檢查
func (r *Rule) Optional() *Rule {
	r.optional = true
	return r
}

// Nullable 允許明確的 null
func (r *Rule) Nullable() *Rule {
	r.nullable = true
	return r
}

// WithMessage 覆寫此規則所有失敗訊息
func (r *Rule) WithMessage(msg string) *Rule {
	r.message = msg
	return r
}

func (r *Rule) add(c check) *Rule {
	r.checks = append(r.checks, c)
	return r
}

func (r *Rule) IsString() *Rule {
	return r.add(func(_ *validator.Validate, value any) (any, string) {
		if _, ok := value.(string); !ok {
			return value, "must be a string"
		}
		return value, ""
	})
}

func (r *Rule) Trim() *Rule {
	return r.add(func(_ *validator.Validate, value any) (any, string) {
		if s, ok := value.(string); ok {
			return strings.TrimSpace(s), ""
		}
		return value, ""
	})
}

func (r *Rule) MinLength(n int) *Rule {
	msg := fmt.Sprintf("must be at least %d characters", n)
	return r.add(func(v *validator.Validate, value any) (any, string) {
		s, ok := value.(string)
		if !ok || v.Var(s, fmt.Sprintf("min=%d", n)) != nil {
			return value, msg
		}
		return value, ""
	})
}

// IsEmail 驗證格式並正規化 (見 NormalizeEmail)
func (r *Rule) IsEmail() *Rule {
	return r.add(func(v *validator.Validate, value any) (any, string) {
		s, ok := value.(string)
		if !ok {
			return value, "must be a valid email"
		}
		s = strings.TrimSpace(s)
		if v.Var(s, "required,email") != nil {
			return value, "must be a valid email"
		}
		return NormalizeEmail(s), ""
	})
}

// IsFloat 接受 JSON 數字或數字字串，正規化為 float64
func (r *Rule) IsFloat() *Rule {
	return r.add(func(_ *validator.Validate, value any) (any, string) {
		const msg = "must be a number"
		switch n := value.(type) {
		case float64:
			return n, ""
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
			if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
				return value, msg
			}
			return f, ""
		default:
			return value, msg
		}
	})
}

// Min 數值需 >= min，需接在 IsFloat 之後
func (r *Rule) Min(min float64) *Rule {
	tag := "gte=" + strconv.FormatFloat(min, 'f', -1, 64)
	msg := "must be greater than or equal to " + strconv.FormatFloat(min, 'f', -1, 64)
	return r.add(func(v *validator.Validate, value any) (any, string) {
		f, ok := value.(float64)
		if !ok || v.Var(f, tag) != nil {
			return value, msg
		}
		return value, ""
	})
}

// Max 數值需 <= max，需接在 IsFloat 之後
func (r *Rule) Max(max float64) *Rule {
	tag := "lte=" + strconv.FormatFloat(max, 'f', -1, 64)
	msg := "must be less than or equal to " + strconv.FormatFloat(max, 'f', -1, 64)
	return r.add(func(v *validator.Validate, value any) (any, string) {
		f, ok := value.(float64)
		if !ok || v.Var(f, tag) != nil {
			return value, msg
		}
		return value, ""
	})
}

// IsInt 接受十進位整數字串或整數值的 JSON 數字，範圍限 int4，正規化為 int
func (r *Rule) IsInt() *Rule {
	return r.add(func(_ *validator.Validate, value any) (any, string) {
		const msg = "must be an integer"
		switch n := value.(type) {
		case int:
			return n, ""
		case float64:
			if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
				return value, msg
			}
			return int(n), ""
		case string:
			if n == "" || strings.TrimLeft(n, "0123456789") != "" {
				return value, msg
			}
			// 上限與 SERIAL (int4) 欄位一致
			i, err := strconv.ParseInt(n, 10, 32)
			if err != nil {
				return value, msg
			}
			return int(i), ""
		default:
			return value, msg
		}
	})
}

// Positive 整數需 > 0，需接在 IsInt 之後
func (r *Rule) Positive() *Rule {
	return r.add(func(v *validator.Validate, value any) (any, string) {
		const msg = "must be a positive integer"
		i, ok := value.(int)
		if !ok || v.Var(i, "gt=0") != nil {
			return value, msg
		}
		return value, ""
	})
}

// PositiveInt 是 path id 的常用組合
func (r *Rule) PositiveInt() *Rule {
	return r.IsInt().Positive().WithMessage(r.field + " must be a positive integer")
}

// evaluate 回傳正規化值；present=false 表示欄位缺席且規則可選
func (r *Rule) evaluate(v *validator.Validate, src map[string]any) (value any, present bool, msg string) {
	value, ok := src[r.field]
	if !ok {
		if r.optional {
			return nil, false, ""
		}
		return nil, false, r.fail("is required")
	}
	if value == nil && r.nullable {
		return nil, true, ""
	}
	for _, c := range r.checks {
		out, failed := c(v, value)
		if failed != "" {
			return nil, true, r.fail(failed)
		}
		value = out
	}
	return value, true, ""
}

func (r *Rule) fail(msg string) string {
	if r.message != "" {
		return r.message
	}
	return msg
}

// NormalizeEmail 轉小寫；gmail 位址另外移除點與 +tag 並統一網域
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	local, domain := email[:at], email[at+1:]
	if domain == "gmail.com" || domain == "googlemail.com" {
		if i := strings.Index(local, "+"); i >= 0 {
			local = local[:i]
		}
		local = strings.ReplaceAll(local, ".", "")
		domain = "gmail.com"
	}
	return local + "@" + domain
}
