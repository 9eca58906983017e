package store

import (
	"context"

	"tienda-api/internal/database"
	"tienda-api/internal/model"
)

// UserColumns 可被部分更新的 usuarios 欄位，順序即 SET 子句順序
var UserColumns = []string{"nombre", "apellido", "correo"}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, nombre, apellido, correo, created_at
		 FROM usuarios ORDER BY id DESC`,
	)
	if err != nil {
		return nil, wrap("ListUsers", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Correo, &u.CreatedAt); err != nil {
			return nil, wrap("ListUsers", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListUsers", err)
	}
	return users, nil
}

func GetUserByID(ctx context.Context, db database.DB, id int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, nombre, apellido, correo, created_at
		 FROM usuarios WHERE id = $1`,
		id,
	)
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Nombre, &u.Apellido, &u.Correo, &u.CreatedAt); err != nil {
		return nil, wrap("GetUserByID", err)
	}
	return u, nil
}

// CreateUser 寫入後回填 ID 與 CreatedAt
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO usuarios (nombre, apellido, correo)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		u.Nombre,
		u.Apellido,
		u.Correo,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		return nil, wrap("CreateUser", err)
	}
	return u, nil
}

func UpdateUser(ctx context.Context, db database.DB, id int, set []Assignment) error {
	return update(ctx, db, "UpdateUser", "usuarios", id, set)
}

func DeleteUser(ctx context.Context, db database.DB, id int) error {
	return execOne(ctx, db, "DeleteUser", `DELETE FROM usuarios WHERE id = $1`, id)
}
