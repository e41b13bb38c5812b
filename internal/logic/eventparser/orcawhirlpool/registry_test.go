package orcawhirlpool

import (
	"encoding/binary"
	"testing"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

func accountList(n int) []types.Pubkey {
	out := make([]types.Pubkey, n)
	for i := range out {
		out[i] = types.Pubkey{0x0C, byte(i)}
	}
	return out
}

func TestExportedDiscriminators(t *testing.T) {
	names := map[string]uint64{
		"swap":                  Swap,
		"swap_v2":               Swap2,
		"initialize_pool":       InitializePool,
		"initialize_pool_v2":    InitializePoolV2,
		"increase_liquidity":    IncreaseLiquidity,
		"increase_liquidity_v2": IncreaseLiquidityV2,
		"decrease_liquidity":    DecreaseLiquidity,
		"decrease_liquidity_v2": DecreaseLiquidityV2,
	}
	for name, v := range names {
		assert.Equal(t, idl.AnchorInstruction(name), idl.Tag8(v), name)
	}
	assert.Equal(t, idl.AnchorEvent("Traded"), idl.Tag8(TradedEvent))
	assert.Equal(t, 49, Instructions.Len())
	assert.Equal(t, 4, Events.Len())
}

func TestDecodeSwap(t *testing.T) {
	want := SwapArgs{
		Amount:                 2_500_000_000,
		OtherAmountThreshold:   31_000_000,
		SqrtPriceLimit:         idl.Uint128{Lo: 4_295_048_016},
		AmountSpecifiedIsInput: true,
		AToB:                   true,
	}
	payload, err := borsh.Serialize(want)
	require.NoError(t, err)

	accounts := accountList(11)
	ix, err := Instructions.DecodeInstruction(append(idl.Tag8(Swap).Bytes(), payload...), accounts, idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, "swap", ix.Name)
	assert.Equal(t, want, ix.Value)

	bound, err := idl.Bind[SwapAccounts](ix.Accounts)
	require.NoError(t, err)
	assert.Equal(t, accounts[2], bound.Whirlpool)
	assert.Equal(t, accounts[4], bound.TokenVaultA)
	assert.Equal(t, accounts[10], bound.Oracle)
}

func TestDecodeSwapV2OptionalRemainingAccounts(t *testing.T) {
	base := binary.LittleEndian.AppendUint64(nil, 1_000)
	base = binary.LittleEndian.AppendUint64(base, 900)
	base = append(base, make([]byte, 16)...) // sqrt_price_limit = 0
	base = append(base, 0, 1)                // exact out, a_to_b

	// None
	data := append(idl.Tag8(Swap2).Bytes(), base...)
	data = append(data, 0)
	ix, err := Instructions.DecodeInstruction(data, accountList(15), idl.ReturnError)
	require.NoError(t, err)
	args, ok := ix.Value.(SwapV2Args)
	require.True(t, ok, "期望 SwapV2Args，实际 %T", ix.Value)
	assert.False(t, args.AmountSpecifiedIsInput)
	assert.True(t, args.AToB)
	assert.Nil(t, args.RemainingAccountsInfo)
	assert.Equal(t, accountList(15)[5], ix.Accounts.MustGet("token_mint_a"))

	// Some([SupplementalTickArrays × 3])
	data = append(idl.Tag8(Swap2).Bytes(), base...)
	data = append(data, 1, 1, 0, 0, 0, 6, 3)
	d, err := Instructions.Decode(data, idl.ReturnError)
	require.NoError(t, err)
	args = d.Value.(SwapV2Args)
	require.NotNil(t, args.RemainingAccountsInfo)
	assert.Equal(t, []RemainingAccountsSlice{{AccountsType: 6, Length: 3}}, args.RemainingAccountsInfo.Slices)

	// accounts_type 超出 9 个变体
	data[len(data)-2] = 9
	_, err = Instructions.Decode(data, idl.ReturnError)
	assert.ErrorIs(t, err, idl.ErrInvalidTag)
}

func TestDecodeIncreaseLiquidityAccounts(t *testing.T) {
	want := IncreaseLiquidityArgs{
		LiquidityAmount: idl.Uint128{Lo: 123_456_789},
		TokenMaxA:       10_000,
		TokenMaxB:       20_000,
	}
	payload, err := borsh.Serialize(want)
	require.NoError(t, err)

	accounts := accountList(11)
	ix, err := Instructions.DecodeInstruction(append(idl.Tag8(IncreaseLiquidity).Bytes(), payload...), accounts, idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, want, ix.Value)
	assert.Equal(t, accounts[2], ix.Accounts.MustGet("position_authority"))

	_, err = Instructions.DecodeInstruction(append(idl.Tag8(IncreaseLiquidity).Bytes(), payload...), accounts[:10], idl.ReturnError)
	var missing *idl.MissingAccountError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "tick_array_upper", missing.Name)
	assert.Equal(t, 10, missing.Index)
}

func TestDecodeInitializePoolV2(t *testing.T) {
	want := InitializePoolV2Args{TickSpacing: 64, InitialSqrtPrice: idl.Uint128{Lo: 1 << 40, Hi: 3}}
	payload, err := borsh.Serialize(want)
	require.NoError(t, err)

	accounts := accountList(14)
	ix, err := Instructions.DecodeInstruction(append(idl.Tag8(InitializePoolV2).Bytes(), payload...), accounts, idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, want, ix.Value)

	bound, err := idl.Bind[InitializePoolV2Accounts](ix.Accounts)
	require.NoError(t, err)
	assert.Equal(t, accounts[6], bound.Whirlpool)
	assert.Equal(t, accounts[5], bound.Funder)
	assert.Equal(t, accounts[11], bound.TokenProgramB)
}

func TestDecodeTradedEvent(t *testing.T) {
	want := TradedEventData{
		Whirlpool:     types.Pubkey{0x77},
		AToB:          false,
		PreSqrtPrice:  idl.Uint128{Lo: 9_000},
		PostSqrtPrice: idl.Uint128{Lo: 9_100},
		InputAmount:   5_000_000,
		OutputAmount:  31_337,
		LpFee:         1_500,
		ProtocolFee:   165,
	}
	payload, err := borsh.Serialize(want)
	require.NoError(t, err)

	d, err := Events.Decode(append(idl.Tag8(TradedEvent).Bytes(), payload...), idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, "traded", d.Name)
	assert.Equal(t, want, d.Value)
}

func TestDecodeLiquidityDecreasedEvent(t *testing.T) {
	want := LiquidityEventData{
		Whirlpool:      types.Pubkey{0x01},
		Position:       types.Pubkey{0x02},
		TickLowerIndex: -443_584,
		TickUpperIndex: 443_584,
		Liquidity:      idl.Uint128{Lo: 77},
		TokenAAmount:   1,
		TokenBAmount:   2,
	}
	payload, err := borsh.Serialize(want)
	require.NoError(t, err)

	d, err := Events.Decode(append(idl.AnchorEvent("LiquidityDecreased").Bytes(), payload...), idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, "liquidity_decreased", d.Name)
	assert.Equal(t, want, d.Value)
}

func TestLockPositionRejectsUnknownLockType(t *testing.T) {
	disc := idl.AnchorInstruction("lock_position").Bytes()

	d, err := Instructions.Decode(append(disc, 0), idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, LockPositionArgs{}, d.Value)

	_, err = Instructions.Decode(append(disc, 1), idl.ReturnError)
	assert.ErrorIs(t, err, idl.ErrInvalidTag)
}

func TestRegister(t *testing.T) {
	m := make(map[types.Pubkey]*common.Program)
	Register(m)

	prog, ok := m[consts.OrcaWhirlpoolProgram]
	require.True(t, ok)
	require.NoError(t, prog.Validate())
	assert.Equal(t, consts.ProtocolOrcaWhirlpool, prog.Name)
	assert.Equal(t, idl.ReturnError, prog.OnUnrecognized)

	_, err := prog.Instructions.Decode(idl.AnchorInstruction("initialize_config_extension").Bytes(), prog.OnUnrecognized)
	var unrec *idl.UnrecognizedError
	require.ErrorAs(t, err, &unrec)
	assert.Equal(t, consts.ProtocolOrcaWhirlpool, unrec.Program)
}
