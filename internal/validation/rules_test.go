package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestRuleChecks(t *testing.T) {
	v := validator.New()

	cases := []struct {
		name    string
		rule    *Rule
		src     map[string]any
		want    any
		present bool
		msg     string
	}{
		{"trimmed string", Body("nombre").IsString().Trim().MinLength(2), map[string]any{"nombre": "  Ana "}, "Ana", true, ""},
		{"too short after trim", Body("nombre").IsString().Trim().MinLength(2), map[string]any{"nombre": " A "}, nil, true, "must be at least 2 characters"},
		{"not a string", Body("nombre").IsString().Trim().MinLength(2), map[string]any{"nombre": 12.0}, nil, true, "must be a string"},
		{"required missing", Body("nombre").IsString(), map[string]any{}, nil, false, "is required"},
		{"optional missing", Body("nombre").IsString().Optional(), map[string]any{}, nil, false, ""},
		{"optional present is checked", Body("nombre").IsString().MinLength(2).Optional(), map[string]any{"nombre": ""}, nil, true, "must be at least 2 characters"},
		{"nullable null", Body("descripcion").IsString().Nullable(), map[string]any{"descripcion": nil}, nil, true, ""},
		{"null not nullable", Body("nombre").IsString(), map[string]any{"nombre": nil}, nil, true, "must be a string"},
		{"email normalized", Body("correo").IsEmail(), map[string]any{"correo": "ANA@Example.com"}, "ana@example.com", true, ""},
		{"email invalid", Body("correo").IsEmail(), map[string]any{"correo": "not-an-email"}, nil, true, "must be a valid email"},
		{"float number", Body("precio").IsFloat().Min(0), map[string]any{"precio": 9.5}, 9.5, true, ""},
		{"float string", Body("precio").IsFloat().Min(0), map[string]any{"precio": "12.30"}, 12.3, true, ""},
		{"float negative", Body("precio").IsFloat().Min(0), map[string]any{"precio": -1.0}, nil, true, "must be greater than or equal to 0"},
		{"float garbage", Body("precio").IsFloat().Min(0), map[string]any{"precio": "abc"}, nil, true, "must be a number"},
		{"int string", Param("id").PositiveInt(), map[string]any{"id": "42"}, 42, true, ""},
		{"int zero", Param("id").PositiveInt(), map[string]any{"id": "0"}, nil, true, "id must be a positive integer"},
		{"int negative", Param("id").PositiveInt(), map[string]any{"id": "-3"}, nil, true, "id must be a positive integer"},
		{"int letters", Param("id").PositiveInt(), map[string]any{"id": "abc"}, nil, true, "id must be a positive integer"},
		{"int above int4", Param("id").PositiveInt(), map[string]any{"id": "2147483648"}, nil, true, "id must be a positive integer"},
		{"int far above int4", Param("id").PositiveInt(), map[string]any{"id": "3000000000"}, nil, true, "id must be a positive integer"},
		{"int4 max", Param("id").PositiveInt(), map[string]any{"id": "2147483647"}, 2147483647, true, ""},
		{"float above max", Body("precio").IsFloat().Min(0).Max(99999999.99), map[string]any{"precio": 1e9}, nil, true, "must be less than or equal to 99999999.99"},
		{"float at max", Body("precio").IsFloat().Min(0).Max(99999999.99), map[string]any{"precio": 99999999.99}, 99999999.99, true, ""},
		{"int fraction", Body("n").IsInt(), map[string]any{"n": 1.5}, nil, true, "must be an integer"},
		{"int json number", Body("n").IsInt().Positive(), map[string]any{"n": 7.0}, 7, true, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, present, msg := tc.rule.evaluate(v, tc.src)
			require.Equal(t, tc.msg, msg)
			require.Equal(t, tc.present, present)
			if tc.msg == "" {
				require.Equal(t, tc.want, got)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "ana@example.com", NormalizeEmail(" ANA@Example.com "))
	require.Equal(t, "analopez@gmail.com", NormalizeEmail("Ana.Lopez+tienda@GoogleMail.com"))
	require.Equal(t, "a.b+c@outlook.com", NormalizeEmail("A.B+c@outlook.com"))
	require.Equal(t, "nodomain", NormalizeEmail("NoDomain"))
}
