package repository

import (
	"context"

	domainRepo "github.com/restopos/restopos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type txKey struct{}

type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a TxManager over the given database handle
func NewTxManager(db *gorm.DB) domainRepo.TxManager {
	return &txManager{db: db}
}

// Do runs fn inside one database transaction. The *gorm.DB transaction
// handle is stored in the context so that every repository call made with
// that context joins the transaction; commit happens only when fn returns
// nil, any error rolls back every write.
func (m *txManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFrom resolves the database handle for a call: the transaction in the
// context when one is open, the repository's base handle otherwise.
func dbFrom(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
