// internal/repository/repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/dangerclosesec/tounesna/internal/domain"
	"github.com/dangerclosesec/tounesna/internal/store"
)

// Transaction runs a unit of work against the store all-or-nothing.
// Every repository shares the store it was built on, so a ctx handed out
// by WithinTx binds calls across repositories to the same transaction.
type Transaction = store.Transactor

// notFound rewrites a generic store miss into the entity specific error.
func notFound(err, entityErr error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %w", entityErr, err)
	}
	return err
}
