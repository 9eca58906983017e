package store

import (
	"fmt"
	"strings"
)

// Assignment 一個 SET 子句；Column 只能來自程式內的欄位常數
type Assignment struct {
	Column string
	Value  any
}

// BuildUpdate 依 assignments 順序組出單一 UPDATE，id 永遠是最後一個參數
func BuildUpdate(table string, set []Assignment, id int) (string, []any, error) {
	if len(set) == 0 {
		return "", nil, ErrNoFields
	}
	parts := make([]string, 0, len(set))
	args := make([]any, 0, len(set)+1)
	for i, a := range set {
		parts = append(parts, fmt.Sprintf("%s = $%d", a.Column, i+1))
		args = append(args, a.Value)
	}
	args = append(args, id)
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(parts, ", "), len(args))
	return sql, args, nil
}

// Pick 依 columns 順序挑出 body 中出現的欄位；出現但為 null 也會納入
func Pick(columns []string, has func(string) bool, value func(string) any) []Assignment {
	var set []Assignment
	for _, col := range columns {
		if has(col) {
			set = append(set, Assignment{Column: col, Value: value(col)})
		}
	}
	return set
}
