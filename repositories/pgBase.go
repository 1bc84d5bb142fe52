package repositories

import (
	"context"
	"strings"

	"repair-server/db"

	"gorm.io/gorm"
)

// pgTable holds the gorm calls shared by every record kind.
type pgTable[T any] struct {
	db    db.Database
	order string
}

func (t pgTable[T]) conn(ctx context.Context) *gorm.DB {
	return t.db.GetDB().WithContext(ctx)
}

func (t pgTable[T]) create(ctx context.Context, record *T) error {
	return translate(t.conn(ctx).Create(record).Error)
}

func (t pgTable[T]) first(ctx context.Context, query string, args ...interface{}) (*T, error) {
	var record T
	if err := t.conn(ctx).Where(query, args...).First(&record).Error; err != nil {
		return nil, translate(err)
	}
	return &record, nil
}

func (t pgTable[T]) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var count int64
	err := t.conn(ctx).Model(new(T)).Where(query, args...).Limit(1).Count(&count).Error
	return count > 0, translate(err)
}

func (t pgTable[T]) find(ctx context.Context, skip, limit int, query string, args ...interface{}) ([]T, error) {
	tx := t.conn(ctx)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if t.order != "" {
		tx = tx.Order(t.order)
	}
	if skip > 0 {
		tx = tx.Offset(skip)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	records := []T{}
	err := tx.Find(&records).Error
	return records, translate(err)
}

// update writes only the named columns of the row with the given id. A row
// that no longer exists is reported as ErrNotFound and is not re-created.
func (t pgTable[T]) update(ctx context.Context, id string, record *T, columns ...string) error {
	res := t.conn(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Select(columns).
		Updates(record)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (t pgTable[T]) delete(ctx context.Context, id string) error {
	res := t.conn(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE operand matching s anywhere in the column.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
