package exttx

import (
	"github.com/axiom-labs-org/core/pkg/state"
	"github.com/axiom-labs-org/core/pkg/types"
)

// PreparedExternalTransaction is an external transaction that has passed
// authorization and is ready for execution planning.
type PreparedExternalTransaction struct {
	// Tx is the original user-submitted transaction.
	Tx *ExternalTransaction

	// NonceID is the signer's nonce object id.
	NonceID types.ObjectID

	// NonceUpdate is the forced nonce write that must land atomically with
	// the rest of the transaction's effects.
	NonceUpdate *state.StateObject
}

// Prepare authorizes an external transaction against current state.
//
// Only the nonce is checked here: signatures are out of scope and ownership
// is the planner's job. No state is mutated; the produced nonce update is
// applied only if the whole pipeline succeeds.
func Prepare(t *ExternalTransaction, store *state.Store) (*PreparedExternalTransaction, error) {
	nonceID, update, err := state.ValidateAndPrepareNonceUpdate(t.Signer, t.Nonce, store)
	if err != nil {
		return nil, err
	}

	return &PreparedExternalTransaction{
		Tx:          t,
		NonceID:     nonceID,
		NonceUpdate: update,
	}, nil
}
