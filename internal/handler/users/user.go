package users

import (
	"net/http"

	"tienda-api/internal/api"
	"tienda-api/internal/database"
	"tienda-api/internal/handler"
	"tienda-api/internal/model"
	"tienda-api/internal/store"
	"tienda-api/internal/validation"

	"github.com/labstack/echo/v4"
)

const msgNotFound = "Usuario no encontrado"

var (
	listUsers   = store.ListUsers
	getUserByID = store.GetUserByID
	createUser  = store.CreateUser
	updateUser  = store.UpdateUser
	deleteUser  = store.DeleteUser
)

// @Summary     List users
// @Description 回傳所有使用者，依 id 由新到舊
// @Tags        usuarios
// @Produce     json
// @Success     200 {array}  model.User
// @Failure     500 {object} api.ErrorResponse
// @Router      /usuarios [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(handler.QueryContext(c), db)
		if err != nil {
			return handler.Error(c, err, msgNotFound)
		}
		return c.JSON(http.StatusOK, users)
	}
}

// @Summary     Get a user by ID
// @Tags        usuarios
// @Produce     json
// @Param       id  path     int true "使用者 ID"
// @Success     200 {object} model.User
// @Failure     400 {object} api.ValidationErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /usuarios/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		in := validation.FromContext(c)
		user, err := getUserByID(handler.QueryContext(c), db, in.ID())
		if err != nil {
			return handler.Error(c, err, msgNotFound)
		}
		return c.JSON(http.StatusOK, user)
	}
}

// @Summary     Create a new user
// @Description 建立使用者；correo 會先正規化，重複時回 409
// @Tags        usuarios
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateUserRequest true "使用者資料"
// @Success     201  {object} api.UserCreatedResponse
// @Failure     400  {object} api.ValidationErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /usuarios [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		in := validation.FromContext(c)
		user, err := createUser(handler.QueryContext(c), db, &model.User{
			Nombre:   in.String("nombre"),
			Apellido: in.String("apellido"),
			Correo:   in.String("correo"),
		})
		if err != nil {
			return handler.Error(c, err, msgNotFound)
		}
		return c.JSON(http.StatusCreated, api.UserCreatedResponse{
			ID:       user.ID,
			Nombre:   user.Nombre,
			Apellido: user.Apellido,
			Correo:   user.Correo,
		})
	}
}

// @Summary     Update a user
// @Description 只更新 body 中出現的欄位
// @Tags        usuarios
// @Accept      json
// @Produce     json
// @Param       id   path     int                   true "使用者 ID"
// @Param       body body     api.UpdateUserRequest true "要更新的欄位"
// @Success     200  {object} api.UpdatedResponse
// @Failure     400  {object} api.BadRequestResponse "驗證失敗回 errors；沒有任何欄位回 error"
// @Failure     404  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /usuarios/{id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		in := validation.FromContext(c)
		set := store.Pick(store.UserColumns, in.Has, in.Value)
		if err := updateUser(handler.QueryContext(c), db, in.ID(), set); err != nil {
			return handler.Error(c, err, msgNotFound)
		}
		return c.JSON(http.StatusOK, api.UpdatedResponse{OK: true, ID: in.ID()})
	}
}

// @Summary     Delete a user
// @Tags        usuarios
// @Produce     json
// @Param       id  path     int true "使用者 ID"
// @Success     200 {object} api.OKResponse
// @Failure     400 {object} api.ValidationErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /usuarios/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		in := validation.FromContext(c)
		if err := deleteUser(handler.QueryContext(c), db, in.ID()); err != nil {
			return handler.Error(c, err, msgNotFound)
		}
		return c.JSON(http.StatusOK, api.OKResponse{OK: true})
	}
}
