package repository

import "context"

// TxManager runs a function inside a single database transaction. The
// transaction handle travels in the context; every repository method called
// with that context joins the same transaction. The transaction commits only
// if fn returns nil and rolls back on any error, so multi-repository writes
// are all-or-nothing.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
