// File: internal/model/product.go
package model

import "time"

// Product.Descripcion 可為 NULL
type Product struct {
	ID          int       `db:"id" json:"id"`
	Nombre      string    `db:"nombre" json:"nombre"`
	Descripcion *string   `db:"descripcion" json:"descripcion"`
	Precio      float64   `db:"precio" json:"precio"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
