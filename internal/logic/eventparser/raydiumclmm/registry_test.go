package raydiumclmm

import (
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

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func accountList(n int) []types.Pubkey {
	out := make([]types.Pubkey, n)
	for i := range out {
		out[i] = types.Pubkey{0xC1, byte(i)}
	}
	return out
}

func TestExportedDiscriminators(t *testing.T) {
	assert.Equal(t, idl.AnchorInstruction("swap"), idl.Tag8(Swap))
	assert.Equal(t, idl.AnchorInstruction("swap_v2"), idl.Tag8(SwapV2))
	assert.Equal(t, idl.AnchorEvent("SwapEvent"), idl.Tag8(SwapEvent))
	assert.Equal(t, 25, Instructions.Len())
	assert.Equal(t, 11, Events.Len())
}

func TestDecodeSwap(t *testing.T) {
	// https://solscan.io/tx/36pQ8ChCf4Jje7YWM22BBMszvix6HoK6S4zH31p3nJn3eiVGLPEEhUKTEqhdFjDbVm5dQ8djXfDH3qwzQUZUFXfL
	data := mustHex(t, "f8c69e91e17587c80065cd1d0000000000000000000000009a57694ea91a5c84b1c4feff0000000001")

	ix, err := Instructions.DecodeInstruction(data, accountList(10), idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, "swap", ix.Name)

	args, ok := ix.Value.(SwapArgs)
	require.True(t, ok, "期望 SwapArgs，实际 %T", ix.Value)
	assert.Equal(t, uint64(500_000_000), args.Amount)
	assert.Equal(t, uint64(0), args.OtherAmountThreshold)
	assert.Equal(t, "79226673521066979257578248090", args.SqrtPriceLimitX64.String())
	assert.True(t, args.IsBaseInput)
	assert.Equal(t, accountList(10)[2], ix.Accounts.MustGet("pool_state"))
	assert.Equal(t, accountList(10)[9], ix.Accounts.MustGet("tick_array"))
}

func TestDecodeSwapV2(t *testing.T) {
	// https://solscan.io/tx/3iuj2NSLKVwLx5GA3gK8JBKGcE4x4w6dTzmsFXGJRrF5R6pYLJXZ59xTh6awypDW5LSAMJvcRxxMbpxqprjYkECN
	data := mustHex(t, "2b04ed0b1ac91e6280af2a230000000087cdca4621070000513b010001000000000000000000000001")

	ix, err := Instructions.DecodeInstruction(data, accountList(15), idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, "swap_v2", ix.Name)
	assert.Equal(t, SwapArgs{
		Amount:               590_000_000,
		OtherAmountThreshold: 7_839_503_011_207,
		SqrtPriceLimitX64:    idl.Uint128{Lo: 4_295_048_017},
		IsBaseInput:          true,
	}, ix.Value)
	assert.Equal(t, 13, ix.Accounts.Len())
	assert.Equal(t, accountList(15)[12], ix.Accounts.MustGet("output_vault_mint"))

	_, err = Instructions.DecodeInstruction(data, accountList(9), idl.ReturnError)
	var missing *idl.MissingAccountError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "token_program_2022", missing.Name)
}

func TestDecodeSwapRejectsBadBool(t *testing.T) {
	data := mustHex(t, "f8c69e91e17587c80065cd1d0000000000000000000000009a57694ea91a5c84b1c4feff0000000002")
	_, err := Instructions.Decode(data, idl.ReturnError)
	assert.ErrorIs(t, err, idl.ErrInvalidTag)
}

func TestDecodeSwapEvent(t *testing.T) {
	want := SwapEventData{
		PoolState:     types.Pubkey{1},
		Sender:        types.Pubkey{2},
		TokenAccount0: types.Pubkey{3},
		TokenAccount1: types.Pubkey{4},
		Amount0:       1_000_000,
		Amount1:       2_500,
		TransferFee1:  3,
		ZeroForOne:    true,
		SqrtPriceX64:  idl.Uint128{Lo: 0x845c1aa94e69579a, Hi: 0xfffec4b1},
		Liquidity:     idl.Uint128{Lo: 123_456},
		Tick:          -18_250,
	}
	payload, err := borsh.Serialize(want)
	require.NoError(t, err)

	data := append(idl.Tag8(SwapEvent).Bytes(), payload...)
	d, err := Events.Decode(data, idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, "swap_event", d.Name)
	assert.Equal(t, want, d.Value)

	// self-CPI 包装
	wrapped := append(idl.SelfCPITag.Bytes(), data...)
	d, err = Events.Decode(wrapped, idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, want, d.Value)
}

func TestDecodeIncreaseLiquidityV2OptionalFlag(t *testing.T) {
	base := true
	want := IncreaseLiquidityV2Args{
		IncreaseLiquidityArgs: IncreaseLiquidityArgs{Liquidity: idl.Uint128{Lo: 99}, Amount0Max: 10, Amount1Max: 20},
		BaseFlag:              &base,
	}
	payload, err := borsh.Serialize(want)
	require.NoError(t, err)

	ix, err := Instructions.DecodeInstruction(append(idl.AnchorInstruction("increase_liquidity_v2").Bytes(), payload...), accountList(15), idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, want, ix.Value)
	assert.Equal(t, accountList(15)[0], ix.Accounts.MustGet("nft_owner"))
}

func TestDecodeUpdateOperationAccountVec(t *testing.T) {
	want := UpdateOperationAccountArgs{Param: 1, Keys: []types.Pubkey{{7}, {8}, {9}}}
	payload, err := borsh.Serialize(want)
	require.NoError(t, err)

	d, err := Instructions.Decode(append(idl.AnchorInstruction("update_operation_account").Bytes(), payload...), idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, want, d.Value)
}

func TestRegister(t *testing.T) {
	m := make(map[types.Pubkey]*common.Program)
	Register(m)
	prog := m[consts.RaydiumCLMMProgram]
	require.NotNil(t, prog)
	require.NoError(t, prog.Validate())
	assert.Equal(t, idl.ReturnError, prog.OnUnrecognized)
}
