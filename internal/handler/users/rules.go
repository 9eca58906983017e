package users

import "tienda-api/internal/validation"

// IDRules GET/DELETE /usuarios/:id
func IDRules() []*validation.Rule {
	return []*validation.Rule{validation.Param("id").PositiveInt()}
}

func CreateRules() []*validation.Rule {
	return []*validation.Rule{
		validation.Body("nombre").IsString().Trim().MinLength(2),
		validation.Body("apellido").IsString().Trim().MinLength(2),
		validation.Body("correo").IsEmail(),
	}
}

// UpdateRules 每個欄位都可省略，出現時套用與建立相同的檢查
func UpdateRules() []*validation.Rule {
	return []*validation.Rule{
		validation.Param("id").PositiveInt(),
		validation.Body("nombre").IsString().Trim().MinLength(2).Optional(),
		validation.Body("apellido").IsString().Trim().MinLength(2).Optional(),
		validation.Body("correo").IsEmail().Optional(),
	}
}
