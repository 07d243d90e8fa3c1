package switchtx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/records"
	"github.com/bc1plainview/opswitch-v2/deadswitch/switchtx"
)

// heartbeat lapse, trigger, cancel, re-trigger
func TestLifecycleScenario(t *testing.T) {
	db := newDeployedState(t)

	id, _, err := switchtx.CreateSwitch(db, at(50, owner), beneficiary, 10, 5)
	require.NoError(t, err)

	_, err = switchtx.Checkin(db, at(100, owner), id)
	require.NoError(t, err)

	for block := uint64(101); block <= 110; block++ {
		expired, err := switchtx.IsExpired(db, at(block, stranger), id)
		require.NoError(t, err)
		require.False(t, expired, "block %d", block)
	}

	expired, err := switchtx.IsExpired(db, at(111, stranger), id)
	require.NoError(t, err)
	require.True(t, expired)

	_, err = switchtx.Trigger(db, at(111, stranger), id)
	require.NoError(t, err)

	view, err := switchtx.GetSwitch(db, id)
	require.NoError(t, err)
	require.Equal(t, uint64(111), view.TriggerBlock)

	// 115 <= 111 + 5, still inside the grace window
	_, err = switchtx.Cancel(db, at(115, owner), id)
	require.NoError(t, err)

	view, err = switchtx.GetSwitch(db, id)
	require.NoError(t, err)
	require.Equal(t, uint8(records.StatusActive), view.Status)

	// cancelled at 115, so the next trigger opens at 126
	_, err = switchtx.Trigger(db, at(126, stranger), id)
	require.NoError(t, err)

	// grace deadline is 126 + 5; one block too late
	_, err = switchtx.Cancel(db, at(132, owner), id)
	require.ErrorIs(t, err, switchtx.ErrGraceElapsed)

	// the key is now reachable for good
	require.ErrorIs(t, switchtx.StoreDecryptionKey(db, at(133, owner), id, []byte("x")), switchtx.ErrNotActive)
}

// sparse chunk writes and the released key
func TestPayloadScenario(t *testing.T) {
	db := newDeployedState(t)

	id, _, err := switchtx.CreateSwitch(db, at(100, owner), beneficiary, 10, 5)
	require.NoError(t, err)

	_, err = switchtx.StoreData(db, at(101, owner), id, 0, []byte("abc"))
	require.NoError(t, err)
	_, err = switchtx.StoreData(db, at(101, owner), id, 2, []byte("xyz"))
	require.NoError(t, err)
	require.NoError(t, switchtx.StoreDecryptionKey(db, at(101, owner), id, []byte("aes-key-ciphertext")))

	view, err := switchtx.GetSwitch(db, id)
	require.NoError(t, err)
	require.Equal(t, uint64(3), view.ChunkCount)

	hole, err := switchtx.GetData(db, id, 1)
	require.NoError(t, err)
	require.Empty(t, hole)

	_, err = switchtx.Trigger(db, at(111, stranger), id)
	require.NoError(t, err)

	key, err := switchtx.GetDecryptionKey(db, id)
	require.NoError(t, err)
	require.Equal(t, []byte("aes-key-ciphertext"), key)

	// triggered status does not block data reads
	data, err := switchtx.GetData(db, id, 2)
	require.NoError(t, err)
	require.Equal(t, []byte("xyz"), data)
}
