// File: internal/model/user.go
package model

import "time"

type User struct {
	ID        int       `db:"id" json:"id"`
	Nombre    string    `db:"nombre" json:"nombre"`
	Apellido  string    `db:"apellido" json:"apellido"`
	Correo    string    `db:"correo" json:"correo"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
