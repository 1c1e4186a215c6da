// Package db carries the gorm unit of work through context.
package db

import (
	"context"

	"gorm.io/gorm"
)

type ctxTx struct{}

// Runner runs fn inside one unit of work. Implementations commit when fn
// returns nil and roll back otherwise.
type Runner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TxRunner is the gorm-backed Runner.
type TxRunner struct {
	root *gorm.DB
}

func NewTxRunner(root *gorm.DB) *TxRunner {
	return &TxRunner{root: root}
}

// RunInTransaction opens a transaction, or a savepoint when ctx is already
// inside one, and hands fn a context bound to it.
func (r *TxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return Conn(ctx, r.root).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}

// WithTx binds tx to ctx so repositories called with the result share it.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, ctxTx{}, tx)
}

// Conn is the handle repositories query through: the bound transaction if
// any, else root scoped to ctx.
func Conn(ctx context.Context, root *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(ctxTx{}).(*gorm.DB); ok {
		return tx
	}
	return root.WithContext(ctx)
}
