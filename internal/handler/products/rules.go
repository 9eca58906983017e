package products

import "tienda-api/internal/validation"

// maxPrecio NUMERIC(10,2) 可存的最大值
const maxPrecio = 99999999.99

func IDRules() []*validation.Rule {
	return []*validation.Rule{validation.Param("id").PositiveInt()}
}

// CreateRules descripcion 與 precio 可省略，precio 預設 0
func CreateRules() []*validation.Rule {
	return []*validation.Rule{
		validation.Body("nombre").IsString().Trim().MinLength(2),
		validation.Body("descripcion").IsString().Trim().Optional().Nullable(),
		validation.Body("precio").IsFloat().Min(0).Max(maxPrecio).Optional(),
	}
}

func UpdateRules() []*validation.Rule {
	return []*validation.Rule{
		validation.Param("id").PositiveInt(),
		validation.Body("nombre").IsString().Trim().MinLength(2).Optional(),
		validation.Body("descripcion").IsString().Trim().Optional().Nullable(),
		validation.Body("precio").IsFloat().Min(0).Max(maxPrecio).Optional(),
	}
}
