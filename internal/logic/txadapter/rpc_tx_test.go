package txadapter

import (
	"testing"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/rpc"
	sdktypes "github.com/blocto/solana-go-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dex-idl-sol/internal/pkg/types"
)

func sampleRpcTx() *client.Transaction {
	blockTime := int64(1_700_000_000)
	lookup := types.Pubkey{9}
	return &client.Transaction{
		Slot:      321,
		BlockTime: &blockTime,
		Transaction: sdktypes.Transaction{
			Signatures: []sdktypes.Signature{sig()},
			Message: sdktypes.Message{
				Header:   sdktypes.MessageHeader{NumRequireSignatures: 1},
				Accounts: []common.PublicKey{{0}, {1}, {2}},
				Instructions: []sdktypes.CompiledInstruction{
					{ProgramIDIndex: 2, Accounts: []int{0, 3}, Data: []byte{0x01}},
				},
			},
		},
		Meta: &client.TransactionMeta{
			LogMessages: []string{"Program 11111111111111111111111111111111 invoke [1]"},
			LoadedAddresses: rpc.TransactionLoadedAddresses{
				Writable: []string{lookup.String()},
			},
			InnerInstructions: []client.InnerInstruction{
				{Index: 0, Instructions: []sdktypes.CompiledInstruction{
					{ProgramIDIndex: 1, Accounts: []int{3}, Data: []byte{0x02}},
				}},
			},
		},
	}
}

func TestAdaptRpcTx(t *testing.T) {
	tx, err := AdaptRpcTx(sampleRpcTx())
	require.NoError(t, err)

	assert.Equal(t, uint64(321), tx.TxCtx.Slot)
	assert.Equal(t, int64(1_700_000_000), tx.TxCtx.BlockTime)
	assert.Len(t, tx.LogMessages, 1)
	require.Len(t, tx.Instructions, 2)

	outer := tx.Instructions[0]
	assert.Equal(t, types.Pubkey{2}, outer.ProgramID)
	assert.Equal(t, []types.Pubkey{{0}, {9}}, outer.Accounts)
	assert.Equal(t, uint8(1), outer.StackDepth)

	inner := tx.Instructions[1]
	assert.Equal(t, uint16(0), inner.IxIndex)
	assert.Equal(t, uint16(1), inner.InnerIndex)
	assert.Equal(t, types.Pubkey{1}, inner.ProgramID)
	assert.Equal(t, []types.Pubkey{{9}}, inner.Accounts)
}

func TestAdaptRpcTxErrors(t *testing.T) {
	_, err := AdaptRpcTx(nil)
	assert.Error(t, err)

	bad := sampleRpcTx()
	bad.Meta.LoadedAddresses.Readonly = []string{"not-base58-0OIl"}
	_, err = AdaptRpcTx(bad)
	assert.ErrorContains(t, err, "invalid loaded address")

	outOfRange := sampleRpcTx()
	outOfRange.Transaction.Message.Instructions[0].Accounts = []int{42}
	_, err = AdaptRpcTx(outOfRange)
	assert.ErrorContains(t, err, "out of range")
}
