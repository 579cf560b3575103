package tx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiom-labs-org/core/pkg/state"
	"github.com/axiom-labs-org/core/pkg/types"
)

func testID(b byte) types.ObjectID {
	var id types.ObjectID
	id[0] = b
	return id
}

func TestNewCellRejectsWriteWithoutRead(t *testing.T) {
	_, err := NewTransactionCell(
		types.Slot(1),
		state.ReadSet{},
		WriteIntentSet{testID(1): IntentModify},
		CallData{Target: testID(1)},
	)

	var missing *WriteWithoutReadError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, testID(1), missing.Object)
}

func TestNewCellAcceptsCoveredWrites(t *testing.T) {
	cell, err := NewTransactionCell(
		types.Slot(1),
		state.ReadSet{testID(1): 4},
		WriteIntentSet{testID(1): IntentModify},
		CallData{Target: testID(1)},
	)
	require.NoError(t, err)
	assert.Equal(t, types.Slot(1), cell.Slot())
	assert.Equal(t, state.Version(4), cell.ReadSet()[testID(1)])
	assert.Equal(t, IntentModify, cell.WriteIntents()[testID(1)])
}

func TestCellIDIgnoresSlot(t *testing.T) {
	reads := state.ReadSet{testID(1): 0, testID(2): 7}
	intents := WriteIntentSet{testID(1): IntentModify}
	call := CallData{Target: testID(3), Selector: []byte("transfer"), Payload: []byte{1, 2}}

	a, err := NewTransactionCell(types.Slot(1), reads, intents, call)
	require.NoError(t, err)
	b, err := NewTransactionCell(types.Slot(99), reads, intents, call)
	require.NoError(t, err)

	assert.Equal(t, a.ID(), b.ID())
}

func TestCellIDCommitsToDeclaredIntent(t *testing.T) {
	call := CallData{Target: testID(3)}

	base, err := NewTransactionCell(types.Slot(1), state.ReadSet{testID(1): 0}, WriteIntentSet{}, call)
	require.NoError(t, err)

	// Different read version.
	readBump, err := NewTransactionCell(types.Slot(1), state.ReadSet{testID(1): 1}, WriteIntentSet{}, call)
	require.NoError(t, err)
	assert.NotEqual(t, base.ID(), readBump.ID())

	// Different intent kind on the same object.
	modify, err := NewTransactionCell(types.Slot(1), state.ReadSet{testID(1): 0}, WriteIntentSet{testID(1): IntentModify}, call)
	require.NoError(t, err)
	del, err := NewTransactionCell(types.Slot(1), state.ReadSet{testID(1): 0}, WriteIntentSet{testID(1): IntentDelete}, call)
	require.NoError(t, err)
	assert.NotEqual(t, modify.ID(), del.ID())

	// Different payload.
	payload, err := NewTransactionCell(types.Slot(1), state.ReadSet{testID(1): 0}, WriteIntentSet{}, CallData{Target: testID(3), Payload: []byte("x")})
	require.NoError(t, err)
	assert.NotEqual(t, base.ID(), payload.ID())
}

func TestCellIDStableAcrossConstruction(t *testing.T) {
	// Maps iterate in random order; the id must not depend on it.
	reads := state.ReadSet{}
	intents := WriteIntentSet{}
	for i := byte(1); i <= 16; i++ {
		reads[testID(i)] = state.Version(i)
		intents[testID(i)] = IntentModify
	}
	call := CallData{Target: testID(99), Selector: []byte("s"), Payload: []byte("p")}

	a, err := NewTransactionCell(types.Slot(1), reads, intents, call)
	require.NoError(t, err)

	want := a.ID()
	for i := 0; i < 8; i++ {
		b, err := NewTransactionCell(types.Slot(1), reads, intents, call)
		require.NoError(t, err)
		assert.Equal(t, want, b.ID())
	}
}

func TestCellCopiesInputMaps(t *testing.T) {
	reads := state.ReadSet{testID(1): 0}
	cell, err := NewTransactionCell(types.Slot(1), reads, WriteIntentSet{}, CallData{Target: testID(1)})
	require.NoError(t, err)

	id := cell.ID()
	reads[testID(2)] = 5

	assert.Equal(t, id, cell.ID())
	_, ok := cell.ReadSet()[testID(2)]
	assert.False(t, ok)
}
