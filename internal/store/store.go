// Package store 每個操作對應一條 SQL，並把資料庫結果轉成 ErrNotFound / ErrConflict
package store

import (
	"context"
	"errors"
	"fmt"

	"tienda-api/internal/database"

	"github.com/jackc/pgx/v5"
)

// wrap 加上操作名稱，並把可辨識的資料庫錯誤對應到 sentinel
func wrap(op string, err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case database.IsUniqueViolation(err):
		return fmt.Errorf("%s: %w: %w", op, ErrConflict, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// execOne 執行以 id 為範圍的 UPDATE/DELETE，沒有影響任何列視為 ErrNotFound
func execOne(ctx context.Context, db database.DB, op, sql string, args ...any) error {
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return wrap(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

func update(ctx context.Context, db database.DB, op, table string, id int, set []Assignment) error {
	sql, args, err := BuildUpdate(table, set, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return execOne(ctx, db, op, sql, args...)
}
