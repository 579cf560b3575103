package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressFromBytes(t *testing.T) {
	raw := make([]byte, AddressLength)
	raw[0] = 0xab
	addr, err := AddressFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, addr.Bytes())

	_, err = AddressFromBytes(raw[:31])
	assert.Error(t, err)
}

func TestAddressFromHex(t *testing.T) {
	addr := Address{0xde, 0xad, 0xbe, 0xef}

	parsed, err := AddressFromHex(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr, parsed)

	prefixed, err := AddressFromHex("0x" + addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr, prefixed)

	_, err = AddressFromHex("not-hex")
	assert.Error(t, err)
}

func TestZeroValues(t *testing.T) {
	assert.True(t, Address{}.IsZero())
	assert.True(t, Hash{}.IsZero())

	var a Address
	a[31] = 1
	assert.False(t, a.IsZero())
}

func TestHashCmp(t *testing.T) {
	low := Hash{0x01}
	high := Hash{0x02}

	assert.Equal(t, -1, low.Cmp(high))
	assert.Equal(t, 1, high.Cmp(low))
	assert.Equal(t, 0, low.Cmp(low))
}

func TestObjectIDRoundTrip(t *testing.T) {
	h := Hash{0x11, 0x22}
	id := ObjectIDFromHash(h)

	assert.Equal(t, h, id.Hash())
	assert.Equal(t, h.Bytes(), id.Bytes())
	assert.Equal(t, h.String(), id.String())
}

func TestSlotEpochNext(t *testing.T) {
	assert.Equal(t, Slot(5), Slot(4).Next())
	assert.Equal(t, Epoch(1), Epoch(0).Next())
	assert.Equal(t, "7", Slot(7).String())
}
