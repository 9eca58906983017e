package store

import "errors"

var (
	// ErrNotFound 查無資料列，或 UPDATE/DELETE 沒有影響任何列
	ErrNotFound = errors.New("not found")
	// ErrConflict 違反唯一索引 (23505)
	ErrConflict = errors.New("conflict")
	// ErrNoFields 部分更新沒有任何欄位
	ErrNoFields = errors.New("no fields to update")
)
