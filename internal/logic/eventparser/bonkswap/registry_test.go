package bonkswap

import (
	"crypto/sha256"
	"testing"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

func swapData(t *testing.T, args SwapArgs) []byte {
	t.Helper()
	payload, err := borsh.Serialize(args)
	require.NoError(t, err)
	return append(idl.Tag8(Swap).Bytes(), payload...)
}

func accountList(n int) []types.Pubkey {
	out := make([]types.Pubkey, n)
	for i := range out {
		out[i] = types.Pubkey{0xB0, byte(i)}
	}
	return out
}

func TestCamelCaseDiscriminators(t *testing.T) {
	for name, v := range map[string]uint64{
		"createPool":     CreatePool,
		"addTokens":      AddTokens,
		"withdrawShares": WithdrawShares,
		"updateFees":     UpdateFees,
	} {
		sum := sha256.Sum256([]byte("global:" + name))
		assert.Equal(t, sum[:8], idl.Tag8(v).Bytes(), name)
	}
	assert.Equal(t, idl.AnchorInstruction("swap"), idl.Tag8(Swap))
}

func TestDecodeSwap(t *testing.T) {
	args := SwapArgs{DeltaIn: Token{V: 1}, PriceLimit: FixedPoint{V: idl.Uint128{Lo: 2}}, XToY: true}

	ix, err := Instructions.DecodeInstruction(swapData(t, args), accountList(9), idl.ReturnError)
	require.NoError(t, err)
	assert.Equal(t, "swap", ix.Name)

	got, ok := ix.Value.(SwapArgs)
	require.True(t, ok, "期望 SwapArgs，实际 %T", ix.Value)
	assert.Equal(t, uint64(1), got.DeltaIn.V)
	assert.Equal(t, "2", got.PriceLimit.V.String())
	assert.True(t, got.XToY)

	assert.Equal(t, 8, ix.Accounts.Len())
	assert.Equal(t, accountList(9)[1], ix.Accounts.MustGet("pool"))
	assert.Equal(t, accountList(9)[8], ix.Accounts.MustGet("swapper"))
	assert.False(t, ix.Accounts.Has("referrer"))
}

func TestDecodeSwapWithReferrer(t *testing.T) {
	args := SwapArgs{DeltaIn: Token{V: 5_000}, PriceLimit: FixedPoint{V: idl.Uint128{Hi: 1}}}

	ix, err := Instructions.DecodeInstruction(swapData(t, args), accountList(12), idl.ReturnError)
	require.NoError(t, err)

	bound, err := idl.Bind[SwapAccounts](ix.Accounts)
	require.NoError(t, err)
	require.NotNil(t, bound.Referrer)
	assert.Equal(t, accountList(12)[11], *bound.Referrer)
	assert.Equal(t, accountList(12)[9], *bound.ReferrerXAccount)

	_, err = Instructions.DecodeInstruction(swapData(t, args), accountList(8), idl.ReturnError)
	var missing *idl.MissingAccountError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "swapper", missing.Name)
}

func TestTokenJSON(t *testing.T) {
	text, err := Token{V: 42}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "42", string(text))

	text, err = FixedPoint{V: idl.Uint128{Hi: 1}}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551616", string(text))
}

func TestRegister(t *testing.T) {
	m := make(map[types.Pubkey]*common.Program)
	Register(m)
	prog := m[consts.BonkSwapProgram]
	require.NotNil(t, prog)
	require.NoError(t, prog.Validate())
	assert.Nil(t, prog.Events)
	assert.Equal(t, 19, prog.Instructions.Len())
}
