package raydiumv4

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

// 一笔 swap_base_in 交易的 ray_log 日志
const swapBaseInLogB64 = "AwBOclMAAAAAmOUFnQ4AAAACAAAAAAAAAABOclMAAAAAfTDHRyEBAAAR7JIChTUAAIVC62EPAAAA"

func accountList(n int) []types.Pubkey {
	out := make([]types.Pubkey, n)
	for i := range out {
		out[i] = types.Pubkey{byte(i + 1), 0x44}
	}
	return out
}

func swapData(tag byte, a, b uint64, trailing ...byte) []byte {
	data := make([]byte, 1+SwapArgsLen, 1+SwapArgsLen+len(trailing))
	data[0] = tag
	binary.LittleEndian.PutUint64(data[1:], a)
	binary.LittleEndian.PutUint64(data[9:], b)
	return append(data, trailing...)
}

func TestDecodeRayLogSwapBaseIn(t *testing.T) {
	data, err := base64.StdEncoding.DecodeString(swapBaseInLogB64)
	require.NoError(t, err)

	d, err := LogEvents.Decode(data, idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, "swap_base_in", d.Name)
	assert.Equal(t, idl.Tag1(LogSwapBaseIn), d.Discriminator)

	swap, ok := d.Value.(SwapBaseInLog)
	require.True(t, ok, "期望 SwapBaseInLog，实际 %T", d.Value)
	assert.Equal(t, uint64(1_400_000_000), swap.AmountIn)
	assert.Equal(t, uint64(62_763_951_512), swap.MinimumOut)
	assert.Equal(t, uint64(2), swap.Direction)
	assert.Equal(t, uint64(1_400_000_000), swap.UserSource)
	assert.Equal(t, uint64(1_242_449_784_957), swap.PoolCoin)
	assert.Equal(t, uint64(58_845_390_105_617), swap.PoolPc)
	assert.Equal(t, uint64(66_067_317_381), swap.OutAmount)
}

func TestDecodeRayLogDeposit(t *testing.T) {
	want := DepositLog{
		MaxCoin:  1_000,
		MaxPc:    2_000,
		Base:     1,
		PoolCoin: 10_000,
		PoolPc:   20_000,
		PoolLp:   5_000,
		CalcPnlX: idl.Uint128{Lo: 7, Hi: 1},
		CalcPnlY: idl.Uint128{Lo: 9},
		MintLp:   250,
	}
	payload, err := borsh.Serialize(want)
	require.NoError(t, err)

	d, err := LogEvents.Decode(append([]byte{LogDeposit}, payload...), idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, "deposit", d.Name)
	assert.Equal(t, want, d.Value)
	assert.Equal(t, "18446744073709551623", d.Value.(DepositLog).CalcPnlX.String())
}

func TestDecodeRayLogUnknownType(t *testing.T) {
	_, err := LogEvents.Decode([]byte{9, 1, 2, 3}, idl.ReturnError)
	assert.True(t, errors.Is(err, idl.ErrUnrecognized))

	_, err = LogEvents.Decode([]byte{LogSwapBaseOut, 1, 2}, idl.ReturnError)
	assert.True(t, errors.Is(err, idl.ErrTooShort))
}

func TestDecodeSwapBaseInIgnoresTrailingBytes(t *testing.T) {
	accounts := accountList(18)
	exact, err := Instructions.DecodeInstruction(swapData(SwapBaseIn, 5_000_000, 4_900), accounts, idl.ReturnError)
	require.NoError(t, err)
	padded, err := Instructions.DecodeInstruction(swapData(SwapBaseIn, 5_000_000, 4_900, 0x40), accounts, idl.ReturnError)
	require.NoError(t, err)

	assert.Equal(t, SwapBaseInArgs{AmountIn: 5_000_000, MinimumAmountOut: 4_900}, exact.Value)
	assert.Equal(t, exact.Value, padded.Value)
	assert.Equal(t, exact.Accounts.Map(), padded.Accounts.Map())
}

func TestDecodeSwapAccountLayouts(t *testing.T) {
	full, err := Instructions.DecodeInstruction(swapData(SwapBaseOut, 10, 20), accountList(18), idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, SwapBaseOutArgs{MaxAmountIn: 10, AmountOut: 20}, full.Value)
	assert.Equal(t, accountList(18)[4], full.Accounts.MustGet("amm_target_orders"))
	assert.Equal(t, accountList(18)[17], full.Accounts.MustGet("user_source_owner"))

	short, err := Instructions.DecodeInstruction(swapData(SwapBaseOut, 10, 20), accountList(17), idl.ReturnError)
	require.NoError(t, err)
	assert.False(t, short.Accounts.Has("amm_target_orders"))
	assert.Equal(t, accountList(17)[4], short.Accounts.MustGet("pool_coin_token_account"))
	assert.Equal(t, accountList(17)[16], short.Accounts.MustGet("user_source_owner"))

	bound, err := idl.Bind[SwapAccountsNoTarget](short.Accounts)
	require.NoError(t, err)
	assert.Equal(t, accountList(17)[1], bound.Amm)

	_, err = Instructions.DecodeInstruction(swapData(SwapBaseIn, 1, 1), accountList(12), idl.ReturnError)
	var missing *idl.MissingAccountError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 12, missing.Index)
}

func TestDecodeSwapTooShortPayload(t *testing.T) {
	_, err := Instructions.Decode([]byte{SwapBaseIn, 1, 2, 3, 4, 5, 6, 7, 8, 9}, idl.ReturnError)
	var mismatch *idl.LengthMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, SwapArgsLen, mismatch.Want)
	assert.Equal(t, 9, mismatch.Got)
}

func TestDecodeLiquidityInstructions(t *testing.T) {
	minOther := uint64(77)
	deposit := DepositArgs{MaxCoinAmount: 100, MaxPcAmount: 200, BaseSide: 1, OtherAmountMin: &minOther}
	payload, err := borsh.Serialize(deposit)
	require.NoError(t, err)
	ix, err := Instructions.DecodeInstruction(append([]byte{Deposit}, payload...), accountList(14), idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, deposit, ix.Value)
	assert.Equal(t, accountList(14)[12], ix.Accounts.MustGet("user_owner"))

	withdraw := WithdrawArgs{Amount: 50}
	payload, err = borsh.Serialize(withdraw)
	require.NoError(t, err)
	ix, err = Instructions.DecodeInstruction(append([]byte{Withdraw}, payload...), accountList(19), idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, withdraw, ix.Value)
	assert.Nil(t, ix.Value.(WithdrawArgs).MinCoinAmount)
	assert.False(t, ix.Accounts.Has("serum_bids"))

	init2 := Initialize2Args{Nonce: 254, OpenTime: 1_700_000_000, InitPcAmount: 1e9, InitCoinAmount: 2e9}
	payload, err = borsh.Serialize(init2)
	require.NoError(t, err)
	d, err := Instructions.Decode(append([]byte{Initialize2}, payload...), idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, "initialize2", d.Name)
	assert.Equal(t, init2, d.Value)
}

func TestUnknownInstructionTag(t *testing.T) {
	_, err := Instructions.Decode([]byte{200, 0, 0}, idl.ReturnError)
	var unrecognized *idl.UnrecognizedError
	require.ErrorAs(t, err, &unrecognized)
	assert.Equal(t, idl.Tag1(200), unrecognized.Discriminator)

	d, err := Instructions.Decode([]byte{200}, idl.ReturnUnknownVariant)
	require.NoError(t, err)
	assert.True(t, d.Unknown)
}

func TestRegister(t *testing.T) {
	m := make(map[types.Pubkey]*common.Program)
	Register(m)

	prog := m[consts.RaydiumV4Program]
	require.NotNil(t, prog)
	require.NoError(t, prog.Validate())
	assert.Equal(t, LogPrefix, prog.LogPrefix)
	assert.Same(t, LogEvents, prog.LogEvents)
	assert.Nil(t, prog.Events)
}
