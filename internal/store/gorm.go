package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pgUniqueViolation is the SQLSTATE postgres reports for a duplicate key.
const pgUniqueViolation = "23505"

type gormTxKey struct{}

// GormStore maps each collection onto a table of the same name.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ Store = (*GormStore)(nil)

// conn returns the transaction bound to ctx, or the root handle.
func (s *GormStore) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(gormTxKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return s.db.WithContext(ctx)
}

func (s *GormStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(gormTxKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, gormTxKey{}, tx))
	})
}

func (s *GormStore) GenerateID(string) string {
	return uuid.NewString()
}

func (s *GormStore) Get(ctx context.Context, collection, id string, dst any) error {
	err := s.conn(ctx).Table(collection).Where(clause.Eq{Column: clause.Column{Name: FieldID}, Value: id}).Take(dst).Error
	if err != nil {
		return translate(collection, id, err)
	}
	return nil
}

func (s *GormStore) Query(ctx context.Context, collection, field string, value any, dst any) error {
	err := s.conn(ctx).Table(collection).
		Where(clause.Eq{Column: clause.Column{Name: field}, Value: value}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: FieldCreatedAt}}).
		Find(dst).Error
	if err != nil {
		return translate(collection, "", err)
	}
	return nil
}

func (s *GormStore) List(ctx context.Context, collection string, dst any) error {
	err := s.conn(ctx).Table(collection).
		Order(clause.OrderByColumn{Column: clause.Column{Name: FieldCreatedAt}}).
		Find(dst).Error
	if err != nil {
		return translate(collection, "", err)
	}
	return nil
}

func (s *GormStore) Create(ctx context.Context, collection string, doc Document) error {
	if doc.DocumentID() == "" {
		return fmt.Errorf("%s: empty id: %w", collection, domain.ErrInvalidInput)
	}
	if err := s.conn(ctx).Table(collection).Create(doc).Error; err != nil {
		return translate(collection, doc.DocumentID(), err)
	}
	return nil
}

func (s *GormStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	patch := withUpdatedAt(fields)
	result := s.conn(ctx).Table(collection).
		Where(clause.Eq{Column: clause.Column{Name: FieldID}, Value: id}).
		Updates(patch)
	if result.Error != nil {
		return translate(collection, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return s.mustExist(ctx, collection, id)
	}
	return nil
}

func (s *GormStore) CompareAndSwap(ctx context.Context, collection, id, field string, expected any, fields map[string]any) error {
	patch := withUpdatedAt(fields)
	result := s.conn(ctx).Table(collection).
		Where(clause.Eq{Column: clause.Column{Name: FieldID}, Value: id}).
		Where(clause.Eq{Column: clause.Column{Name: field}, Value: expected}).
		Updates(patch)
	if result.Error != nil {
		return translate(collection, id, result.Error)
	}
	if result.RowsAffected == 0 {
		if err := s.mustExist(ctx, collection, id); err != nil {
			return err
		}
		return fmt.Errorf("%s/%s: %s is not %v: %w", collection, id, field, expected, domain.ErrInvalidTransition)
	}
	return nil
}

func (s *GormStore) Increment(ctx context.Context, collection, id string, deltas map[string]float64) error {
	patch := make(map[string]any, len(deltas)+1)
	for field, delta := range deltas {
		col := clause.Column{Name: field}
		patch[field] = gorm.Expr("CASE WHEN ? + ? < 0 THEN 0 ELSE ? + ? END", col, delta, col, delta)
	}
	patch[FieldUpdatedAt] = now()

	result := s.conn(ctx).Table(collection).
		Where(clause.Eq{Column: clause.Column{Name: FieldID}, Value: id}).
		Updates(patch)
	if result.Error != nil {
		return translate(collection, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return s.mustExist(ctx, collection, id)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, collection, id string) error {
	result := s.conn(ctx).Exec("DELETE FROM ? WHERE ? = ?", clause.Table{Name: collection}, clause.Column{Name: FieldID}, id)
	if result.Error != nil {
		return translate(collection, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	}
	return nil
}

// mustExist distinguishes "no row" from "row unchanged" after an update
// that affected nothing, which some drivers report for identical values.
func (s *GormStore) mustExist(ctx context.Context, collection, id string) error {
	var count int64
	err := s.conn(ctx).Table(collection).
		Where(clause.Eq{Column: clause.Column{Name: FieldID}, Value: id}).
		Count(&count).Error
	if err != nil {
		return translate(collection, id, err)
	}
	if count == 0 {
		return fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	}
	return nil
}

func withUpdatedAt(fields map[string]any) map[string]any {
	patch := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		patch[k] = v
	}
	patch[FieldUpdatedAt] = now()
	return patch
}

// translate maps driver errors onto the domain error kinds.
func translate(collection, id string, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s/%s: %w", collection, id, domain.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation:
		return fmt.Errorf("%s/%s: %w", collection, id, domain.ErrAlreadyExists)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s/%s: %w: %w", collection, id, domain.ErrTimeout, err)
	}
	return fmt.Errorf("%s/%s: %w", collection, id, err)
}
