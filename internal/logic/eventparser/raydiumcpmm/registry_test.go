package raydiumcpmm

import (
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

// https://solscan.io/tx/4kKAK8GFTrdmqsMqny7Bvh4Ume5vWqsw9BHeVUwEiPefbdxAYSnzWF38QV4iV1Y7Q3WnddGkfKbCyxtn4NoqoKuD
const swapEventV1Hex = "40c6cde8260871e27051dfc31066d13f0dbe95dadb1c3d61fcf52328291b6ff93f00ae384dddd1acb1fdadd90d000000feb6e876d7260100c00fb64c000000005c3b51833a0600000000000000000000000000000000000001"

// https://solscan.io/tx/gz8KEqNmnNpthq31nQogLWkLNMm3eT3FzQKcNwoJ6wAhLxUVk6qCbGvRPhFw5et8dxrS6psBnMFcbuAdtbGFQta
const swapEventV2B64 = "QMbN6CYIceLDaOKRwjNXP6I2Olk7UZ+dmtkrhhO8crfwIq0BUi5EJ1h+UMWwFgAABwYi+rIBAAApSLsuAAAAAJiTfQMAAAAAAAAAAAAAAAAAAAAAAAAAAAFapfStVf3ObMBLO2gYyo3hrXzhGzL3/H46j2BlPPT19QabiFf+q4GE+2h/Y0YYwDXaxDncGus7VZig8AAAAAABgegdAAAAAAAAAAAAAAAAAAE="

func TestDiscriminatorsMatchAnchor(t *testing.T) {
	for name, v := range map[string]uint64{
		"swap_base_input":  SwapBaseInput,
		"swap_base_output": SwapBaseOutput,
		"deposit":          Deposit,
		"withdraw":         Withdraw,
		"initialize":       Initialize,
	} {
		assert.Equal(t, idl.AnchorInstruction(name), idl.Tag8(v), name)
	}
	assert.Equal(t, idl.AnchorEvent("LpChangeEvent"), idl.Tag8(LpChangeEvent))
	assert.Equal(t, idl.AnchorEvent("SwapEvent"), idl.Tag8(SwapEvent))
	assert.Equal(t, 81, SwapEventLenV1)
	assert.Equal(t, 162, SwapEventLenV2)
}

func TestDecodeSwapEventV1(t *testing.T) {
	data, err := hex.DecodeString(swapEventV1Hex)
	require.NoError(t, err)

	d, err := Events.Decode(data, idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, "swap_event_v1", d.Name)

	ev, ok := d.Value.(SwapEventV1)
	require.True(t, ok, "期望 SwapEventV1，实际 %T", d.Value)
	assert.Equal(t, "8ZT5BBW3WRpvCwPiadE6jiocQfriMjW7DSfXR2pF6YcT", ev.PoolID.String())
	assert.Equal(t, uint64(59_486_633_393), ev.InputVaultBefore)
	assert.Equal(t, uint64(324_181_831_497_470), ev.OutputVaultBefore)
	assert.Equal(t, uint64(1_287_000_000), ev.InputAmount)
	assert.Equal(t, uint64(6_848_381_008_732), ev.OutputAmount)
	assert.True(t, ev.BaseInput)
}

func TestDecodeSwapEventV2(t *testing.T) {
	data, err := base64.StdEncoding.DecodeString(swapEventV2B64)
	require.NoError(t, err)

	d, err := Events.Decode(data, idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, "swap_event_v2", d.Name)

	ev, ok := d.Value.(SwapEventV2)
	require.True(t, ok, "期望 SwapEventV2，实际 %T", d.Value)
	assert.Equal(t, "E9oGC72mZWYqmzR5ggB9DAoGyRssR3uhFWHG1L75RZve", ev.PoolID.String())
	assert.True(t, ev.BaseInput)
	assert.Equal(t, uint64(784_025_641), ev.InputAmount)
	assert.Equal(t, uint64(58_561_432), ev.OutputAmount)
	assert.Equal(t, uint64(1_960_065), ev.TradeFee)
	assert.Equal(t, uint64(0), ev.CreatorFee)
	assert.True(t, ev.CreatorFeeOnInput)
	assert.Equal(t, "76rTxzztXjJe7AUaBi7jQ5J61MFgpQgB4Cc934sWbonk", ev.InputMint.String())
	assert.Equal(t, consts.WSOLMint, ev.OutputMint)
}

func TestDecodeSwapEventUnexpectedLength(t *testing.T) {
	data, err := hex.DecodeString(swapEventV1Hex)
	require.NoError(t, err)

	// 程序按 Unknown 处理未知版本
	d, err := Events.Decode(data[:len(data)-1], idl.ReturnUnknownVariant)
	require.NoError(t, err)
	assert.True(t, d.Unknown)
	assert.Equal(t, "swap_event", d.Name)
	assert.Equal(t, idl.Tag8(SwapEvent), d.Discriminator)

	_, err = Events.Decode(data[:len(data)-1], idl.ReturnError)
	var mismatch *idl.LengthMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, SwapEventLenV2, mismatch.Want)
	assert.Equal(t, SwapEventLenV1-1, mismatch.Got)
}

func TestDecodeLpChangeEvent(t *testing.T) {
	want := LpChangeEventData{
		PoolID:            types.Pubkey{0x42},
		LpAmountBefore:    1_000,
		Token0VaultBefore: 50_000,
		Token1VaultBefore: 70_000,
		Token0Amount:      500,
		Token1Amount:      700,
		ChangeType:        1,
	}
	payload, err := borsh.Serialize(want)
	require.NoError(t, err)

	d, err := Events.Decode(append(idl.Tag8(LpChangeEvent).Bytes(), payload...), idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, "lp_change_event", d.Name)
	assert.Equal(t, want, d.Value)
}

func TestDecodeSwapBaseInputAccounts(t *testing.T) {
	args := SwapBaseInputArgs{AmountIn: 1_000_000, MinimumAmountOut: 990_000}
	payload, err := borsh.Serialize(args)
	require.NoError(t, err)

	accounts := make([]types.Pubkey, 13)
	for i := range accounts {
		accounts[i] = types.Pubkey{byte(i), 0xCC}
	}
	ix, err := Instructions.DecodeInstruction(append(idl.Tag8(SwapBaseInput).Bytes(), payload...), accounts, idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, args, ix.Value)

	bound, err := idl.Bind[SwapAccounts](ix.Accounts)
	require.NoError(t, err)
	assert.Equal(t, accounts[3], bound.PoolState)
	assert.Equal(t, accounts[10], bound.InputTokenMint)
}

func TestDecodeInitializeWithPermissionEnum(t *testing.T) {
	disc := idl.AnchorInstruction("initialize_with_permission").Bytes()
	payload := make([]byte, 24)
	payload[0] = 1

	d, err := Instructions.Decode(append(append(disc, payload...), byte(CreatorFeeOnlyToken1)), idl.ReturnError)
	require.NoError(t, err)
	args := d.Value.(InitializeWithPermissionArgs)
	assert.Equal(t, uint64(1), args.InitAmount0)
	assert.Equal(t, CreatorFeeOnlyToken1, args.CreatorFeeOn)
	assert.Equal(t, "only_token_1", args.CreatorFeeOn.String())

	_, err = Instructions.Decode(append(append(disc, payload...), 3), idl.ReturnError)
	assert.ErrorIs(t, err, idl.ErrInvalidTag)
}

func TestUnknownDiscriminatorIsNotAnError(t *testing.T) {
	m := make(map[types.Pubkey]*common.Program)
	Register(m)
	prog := m[consts.RaydiumCPMMProgram]
	require.NotNil(t, prog)
	require.NoError(t, prog.Validate())

	d, err := prog.Instructions.Decode([]byte{1, 2, 3, 4, 5, 6, 7, 8}, prog.OnUnrecognized)
	require.NoError(t, err)
	assert.True(t, d.Unknown)
	assert.Equal(t, consts.ProtocolRaydiumCPMM, d.Program)
}
