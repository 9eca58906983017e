package store

import (
	"context"

	"tienda-api/internal/database"
	"tienda-api/internal/model"
)

// ProductColumns 可被部分更新的 productos 欄位
var ProductColumns = []string{"nombre", "descripcion", "precio"}

func ListProducts(ctx context.Context, db database.DB) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT id, nombre, descripcion, precio, created_at
		 FROM productos ORDER BY id DESC`,
	)
	if err != nil {
		return nil, wrap("ListProducts", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.CreatedAt); err != nil {
			return nil, wrap("ListProducts", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListProducts", err)
	}
	return products, nil
}

func GetProductByID(ctx context.Context, db database.DB, id int) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`SELECT id, nombre, descripcion, precio, created_at
		 FROM productos WHERE id = $1`,
		id,
	)
	p := &model.Product{}
	if err := row.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.CreatedAt); err != nil {
		return nil, wrap("GetProductByID", err)
	}
	return p, nil
}

// CreateProduct Descripcion 為 nil 時寫入 NULL
func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO productos (nombre, descripcion, precio)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		p.Nombre,
		p.Descripcion,
		p.Precio,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, wrap("CreateProduct", err)
	}
	return p, nil
}

func UpdateProduct(ctx context.Context, db database.DB, id int, set []Assignment) error {
	return update(ctx, db, "UpdateProduct", "productos", id, set)
}

func DeleteProduct(ctx context.Context, db database.DB, id int) error {
	return execOne(ctx, db, "DeleteProduct", `DELETE FROM productos WHERE id = $1`, id)
}
