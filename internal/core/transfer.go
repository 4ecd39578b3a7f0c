package core

import "github.com/google/uuid"

// Transferer is the boundary to the external value-transfer subsystem.
// Accept pulls attached value from an account into the pool; Release
// pays pool funds out to an account. Either leg may fail, in which case
// the core rolls the whole operation back.
type Transferer interface {
	Accept(accountID uuid.UUID, amount int64) error
	Release(accountID uuid.UUID, amount int64) error
}

// NoopTransferer trusts the upstream settlement layer and never fails.
// Used in replay and in deployments where settlement is confirmed
// before events reach the core.
type NoopTransferer struct{}

func (NoopTransferer) Accept(uuid.UUID, int64) error  { return nil }
func (NoopTransferer) Release(uuid.UUID, int64) error { return nil }
