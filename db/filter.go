package db

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/techagentng/citizenrate/models"
	"github.com/techagentng/citizenrate/query"
	"gorm.io/gorm"
)

// Columns maps the logical field names used in filters to SQL expressions.
type Columns map[string]string

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ApplyPredicate adds pred to tx as a WHERE condition. Fields missing from
// columns are skipped.
func ApplyPredicate(tx *gorm.DB, pred query.Predicate, columns Columns) *gorm.DB {
	sql, args := render(pred, columns)
	if sql == "" {
		return tx
	}
	return tx.Where(sql, args...)
}

func render(pred query.Predicate, columns Columns) (string, []interface{}) {
	switch p := pred.(type) {
	case query.Equals:
		col, ok := columns[p.Field]
		if !ok {
			return "", nil
		}
		return col + " = ?", []interface{}{p.Value}
	case query.Contains:
		col, ok := columns[p.Field]
		if !ok {
			return "", nil
		}
		pattern := "%" + likeEscaper.Replace(strings.ToLower(p.Value)) + "%"
		return fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, col), []interface{}{pattern}
	case query.Range:
		col, ok := columns[p.Field]
		if !ok {
			return "", nil
		}
		var parts []string
		var args []interface{}
		if p.Gte != nil {
			parts = append(parts, col+" >= ?")
			args = append(args, p.Gte)
		}
		if p.Lte != nil {
			parts = append(parts, col+" <= ?")
			args = append(args, p.Lte)
		}
		return strings.Join(parts, " AND "), args
	case query.Or:
		sql, args := join(p.Items, columns, " OR ")
		if sql == "" {
			// nothing searchable matches nothing
			return "1 = 0", nil
		}
		return sql, args
	case query.And:
		return join(p.Items, columns, " AND ")
	}
	return "", nil
}

func join(items []query.Predicate, columns Columns, sep string) (string, []interface{}) {
	var parts []string
	var args []interface{}
	for _, item := range items {
		sql, a := render(item, columns)
		if sql == "" {
			continue
		}
		parts = append(parts, "("+sql+")")
		args = append(args, a...)
	}
	return strings.Join(parts, sep), args
}

// Paginate counts the rows matched by q and loads one page of them. The scopes
// (ordering, preloads, selects) only apply to the page query.
func Paginate[T any](q *gorm.DB, page query.Page, scopes ...func(*gorm.DB) *gorm.DB) (models.Page[T], error) {
	result := models.Page[T]{Data: make([]T, 0), CurrentPage: page.Number}

	if err := q.Session(&gorm.Session{}).Count(&result.Count).Error; err != nil {
		return result, errors.Wrap(err, "count failed")
	}
	result.Pages = query.Pages(result.Count, page.Limit)
	if int64(page.Offset()) >= result.Count {
		return result, nil
	}

	err := q.Session(&gorm.Session{}).
		Scopes(scopes...).
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&result.Data).Error
	if err != nil {
		return result, errors.Wrap(err, "page query failed")
	}
	if result.Data == nil {
		result.Data = make([]T, 0)
	}
	return result, nil
}
