package commands

import (
	"context"

	"storefront/internal/domain/order"

	"github.com/google/uuid"
)

type AddressCommands interface {
	// Lookup resolves a postal code through the external service and
	// holds the structured result in the session for checkout.
	Lookup(ctx context.Context, sessionID uuid.UUID, postalCode string) (*order.Address, error)
}

type addressCommandsImpl struct {
	lookup   AddressLookup
	sessions SessionStore
}

func NewAddressCommands(lookup AddressLookup, sessions SessionStore) AddressCommands {
	return &addressCommandsImpl{
		lookup:   lookup,
		sessions: sessions,
	}
}

func (a *addressCommandsImpl) Lookup(ctx context.Context, sessionID uuid.UUID, postalCode string) (*order.Address, error) {
	address, err := a.lookup.Lookup(ctx, postalCode)
	if err != nil {
		return nil, err
	}

	state, err := a.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Address = address
	if err := a.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return address, nil
}
