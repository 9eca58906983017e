package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"tienda-api/internal/database"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, validator.New())

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /",
		http.MethodGet + " /ping",
		http.MethodGet + " /usuarios",
		http.MethodGet + " /usuarios/:id",
		http.MethodPost + " /usuarios",
		http.MethodPut + " /usuarios/:id",
		http.MethodDelete + " /usuarios/:id",
		http.MethodGet + " /productos",
		http.MethodGet + " /productos/:id",
		http.MethodPost + " /productos",
		http.MethodPut + " /productos/:id",
		http.MethodDelete + " /productos/:id",
		http.MethodGet + " /swagger/*",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

type row struct {
	vals []any
	err  error
}

func (r row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, v := range r.vals {
		switch d := dest[i].(type) {
		case *int:
			*d = v.(int)
		case *time.Time:
			*d = v.(time.Time)
		}
	}
	return nil
}

// memUsers 以 map 模擬 usuarios 表，correo 唯一
type memUsers struct {
	mu     sync.Mutex
	nextID int
	correo map[int]string
	execs  []string
}

func (m *memUsers) db() *database.FakeDB {
	return &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			m.mu.Lock()
			defer m.mu.Unlock()
			if strings.HasPrefix(sql, "INSERT") {
				for _, c := range m.correo {
					if c == args[2] {
						return row{err: &pgconn.PgError{Code: "23505"}}
					}
				}
				m.nextID++
				m.correo[m.nextID] = args[2].(string)
				return row{vals: []any{m.nextID, time.Now()}}
			}
			return row{err: pgx.ErrNoRows}
		},
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.execs = append(m.execs, sql)
			id := args[len(args)-1].(int)
			if _, ok := m.correo[id]; !ok {
				return pgconn.NewCommandTag("DELETE 0"), nil
			}
			if strings.HasPrefix(sql, "DELETE") {
				delete(m.correo, id)
			}
			return pgconn.NewCommandTag("DELETE 1"), nil
		},
	}
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUsuariosFlow(t *testing.T) {
	m := &memUsers{correo: map[int]string{}}
	e := echo.New()
	Setup(e, m.db(), validator.New())

	rec := serve(e, http.MethodPost, "/usuarios", `{"nombre":"Ana","apellido":"Li","correo":"ANA@Example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"id":1,"nombre":"Ana","apellido":"Li","correo":"ana@example.com"}`, rec.Body.String())

	rec = serve(e, http.MethodPost, "/usuarios", `{"nombre":"Ana","apellido":"Li","correo":"ana@example.com"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.JSONEq(t, `{"error":"email already registered"}`, rec.Body.String())

	rec = serve(e, http.MethodGet, "/usuarios/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(e, http.MethodGet, "/usuarios/42", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Usuario no encontrado"}`, rec.Body.String())

	rec = serve(e, http.MethodPut, "/usuarios/1", `{"apellido":"Gomez"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true,"id":1}`, rec.Body.String())
	require.Equal(t, "UPDATE usuarios SET apellido = $1 WHERE id = $2", m.execs[len(m.execs)-1])

	rec = serve(e, http.MethodDelete, "/usuarios/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	for i := 0; i < 2; i++ {
		rec = serve(e, http.MethodDelete, "/usuarios/1", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	}
	rec = serve(e, http.MethodPut, "/usuarios/1", `{"nombre":"Ana"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductosValidation(t *testing.T) {
	e := echo.New()
	// FakeDB 沒有設定任何方法：只要有查詢就會 panic
	db := &database.FakeDB{}
	Setup(e, db, validator.New())

	rec := serve(e, http.MethodPut, "/productos/1", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"no fields to update"}`, rec.Body.String())

	rec = serve(e, http.MethodPost, "/productos", `{"nombre":"X","precio":"gratis"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"errors":[
		{"field":"nombre","message":"must be at least 2 characters"},
		{"field":"precio","message":"must be a number"}
	]}`, rec.Body.String())

	for _, id := range []string{"0", "-1", "abc"} {
		rec = serve(e, http.MethodDelete, "/productos/"+id, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}

	rec = serve(e, http.MethodGet, "/", "")
	require.JSONEq(t, `{"ok":true,"msg":"API funcionando"}`, rec.Body.String())
	require.Empty(t, db.Calls())
}

func TestOutOfRangeIDNeverReachesDatabase(t *testing.T) {
	db := &database.FakeDB{}
	e := echo.New()
	Setup(e, db, validator.New())

	for _, path := range []string{"/usuarios/2147483648", "/usuarios/3000000000", "/productos/9223372036854775808"} {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			rec := serve(e, method, path, `{"nombre":"Ana"}`)
			require.Equal(t, http.StatusBadRequest, rec.Code, "%s %s", method, path)
			require.JSONEq(t, `{"errors":[{"field":"id","message":"id must be a positive integer"}]}`, rec.Body.String())
		}
	}
	require.Empty(t, db.Calls())
}

func TestPrecioAboveColumnLimit(t *testing.T) {
	db := &database.FakeDB{}
	e := echo.New()
	Setup(e, db, validator.New())

	rec := serve(e, http.MethodPost, "/productos", `{"nombre":"Servidor","precio":1000000000}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"errors":[{"field":"precio","message":"must be less than or equal to 99999999.99"}]}`, rec.Body.String())

	rec = serve(e, http.MethodPut, "/productos/1", `{"precio":"100000000"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, db.Calls())
}

func TestProductosNotFound(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row { return row{err: pgx.ErrNoRows} },
	}, validator.New())

	rec := serve(e, http.MethodGet, "/productos/999999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Producto no encontrado"}`, rec.Body.String())
}
