package events

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/axiom-labs-org/core/pkg/types"
)

// Type discriminates event payloads.
type Type string

const (
	TypeTransactionApplied Type = "transaction.applied"
	TypeTransactionFailed  Type = "transaction.failed"
	TypeBlockExecuted      Type = "block.executed"
)

// Event is a chain lifecycle payload. Events are observability only:
// nothing consensus-critical may depend on them, which is why envelopes are
// allowed non-deterministic IDs and timestamps.
type Event interface {
	EventType() Type
}

// TransactionApplied reports a committed transaction.
type TransactionApplied struct {
	TxHash types.Hash
	Slot   types.Slot
	Fee    uint64
}

func (TransactionApplied) EventType() Type { return TypeTransactionApplied }

// TransactionFailed reports a transaction that produced a failure receipt.
type TransactionFailed struct {
	TxHash types.Hash
	Slot   types.Slot
	Reason string
}

func (TransactionFailed) EventType() Type { return TypeTransactionFailed }

// BlockExecuted reports a fully executed block.
type BlockExecuted struct {
	BlockHash    types.Hash
	StateRoot    types.Hash
	ReceiptsRoot types.Hash
	Slot         types.Slot
	TxCount      int
}

func (BlockExecuted) EventType() Type { return TypeBlockExecuted }

// Envelope wraps a payload with delivery metadata stamped at emit time.
type Envelope struct {
	ID      string
	At      time.Time
	Payload Event
}

// Bus fans events out to subscribers. Emission is synchronous: the chain
// executes blocks single-threaded anyway, so there is no pump goroutine to
// start or stop, and a slow subscriber loses events rather than stalling
// block execution.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]chan Envelope
	nextID int
}

// NewBus creates an event bus with no subscribers.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Envelope)}
}

// Subscribe registers a receiver with the given channel capacity and
// returns it along with a cancel function. Cancel is idempotent and closes
// the channel.
func (b *Bus) Subscribe(buffer int) (<-chan Envelope, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Envelope, buffer)
	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// Emit stamps the payload into an envelope and delivers it to every
// subscriber whose buffer has room. Full subscribers are skipped.
func (b *Bus) Emit(payload Event) {
	env := Envelope{
		ID:      uuid.NewString(),
		At:      time.Now(),
		Payload: payload,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- env:
		default:
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
