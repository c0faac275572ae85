package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary over the address book.
// Client code manages the transaction lifecycle explicitly.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// DeliveryAddressRepository is bound to the transaction started by Begin.
	DeliveryAddressRepository() DeliveryAddressRepository
}
