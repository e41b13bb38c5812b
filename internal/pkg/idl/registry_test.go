package idl

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dex-idl-sol/internal/pkg/types"
)

type testSwap struct {
	AmountIn     uint64
	MinAmountOut uint64
}

type testTradeV1 struct {
	Amount uint64
}

type testTradeV2 struct {
	Amount uint64
	Fee    uint64
}

func newLegacyRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry("legacy", LayoutTag1,
		Entry{
			Name:          "swap",
			Discriminator: Tag1(9),
			Decode:        Payload[testSwap](),
			FixedLen:      16,
			Accounts: MustAccountSchema("swap",
				Required(0, "pool"),
				Required(1, "user"),
				Optional(2, "referrer"),
			),
		},
	)
	require.NoError(t, err)
	return r
}

func TestRegistryLegacyFixedLength(t *testing.T) {
	r := newLegacyRegistry(t)
	canonical := mustHex(t, "09"+"00ca9a3b00000000"+"0100000000000000")

	d, err := r.Decode(canonical, ReturnError)
	require.NoError(t, err)
	assert.Equal(t, "swap", d.Name)
	assert.Equal(t, testSwap{AmountIn: 1_000_000_000, MinAmountOut: 1}, d.Value)

	// 尾部多余字节被忽略，结果与规范长度输入一致
	padded := append(append([]byte{}, canonical...), 0xde, 0xad, 0xbe, 0xef)
	d2, err := r.Decode(padded, ReturnError)
	require.NoError(t, err)
	assert.Equal(t, d, d2)

	_, err = r.Decode(canonical[:10], ReturnError)
	var lm *LengthMismatchError
	require.True(t, errors.As(err, &lm))
	assert.Equal(t, 16, lm.Want)
	assert.Equal(t, 9, lm.Got)
	assert.Contains(t, err.Error(), "legacy.swap")
}

func TestRegistryMissPolicy(t *testing.T) {
	r := newLegacyRegistry(t)

	d, err := r.Decode([]byte{200, 1, 2}, ReturnUnknownVariant)
	require.NoError(t, err)
	assert.True(t, d.Unknown)
	assert.Equal(t, Tag1(200), d.Discriminator)
	assert.Nil(t, d.Value)

	_, err = r.Decode([]byte{200, 1, 2}, ReturnError)
	var unrec *UnrecognizedError
	require.True(t, errors.As(err, &unrec))
	assert.Equal(t, []byte{200}, unrec.Discriminator.Bytes())
	assert.Equal(t, "legacy", unrec.Program)

	_, err = r.Decode(nil, ReturnUnknownVariant)
	assert.ErrorIs(t, err, ErrTooShort, "长度不足与策略无关，总是报错")
}

func TestRegistryVariantsByLength(t *testing.T) {
	r := MustNewRegistry("events", LayoutSelfCPI, Entry{
		Name:          "trade",
		Discriminator: Tag8(0xbddb7fd34ee661ee),
		Variants: []Variant{
			{Len: 8, Name: "trade_v1", Decode: Payload[testTradeV1]()},
			{Len: 16, Name: "trade_v2", Decode: Payload[testTradeV2]()},
		},
	})

	v1 := mustHex(t, "e445a52e51cb9a1d"+"bddb7fd34ee661ee"+"0500000000000000")
	d, err := r.Decode(v1, ReturnError)
	require.NoError(t, err)
	assert.Equal(t, "trade_v1", d.Name)
	assert.Equal(t, testTradeV1{Amount: 5}, d.Value)

	v2 := mustHex(t, "bddb7fd34ee661ee"+"0500000000000000"+"0100000000000000")
	d, err = r.Decode(v2, ReturnError)
	require.NoError(t, err)
	assert.Equal(t, "trade_v2", d.Name)
	assert.Equal(t, testTradeV2{Amount: 5, Fee: 1}, d.Value)

	_, err = r.Decode(mustHex(t, "bddb7fd34ee661ee"+"05"), ReturnError)
	var lm *LengthMismatchError
	require.True(t, errors.As(err, &lm))
	assert.Equal(t, 16, lm.Want)
	assert.Equal(t, 1, lm.Got)

	// 未知长度版本在 ReturnUnknownVariant 下按 Unknown 返回，不报错
	d, err = r.Decode(mustHex(t, "bddb7fd34ee661ee"+"05"), ReturnUnknownVariant)
	require.NoError(t, err)
	assert.True(t, d.Unknown)
	assert.Equal(t, "trade", d.Name)
	assert.Equal(t, Tag8(0xbddb7fd34ee661ee), d.Discriminator)
	assert.Nil(t, d.Value)
}

func TestRegistryValidation(t *testing.T) {
	_, err := NewRegistry("dup", LayoutTag8,
		Entry{Name: "a", Discriminator: Tag8(1), Decode: Payload[testSwap]()},
		Entry{Name: "b", Discriminator: Tag8(1), Decode: Payload[testSwap]()},
	)
	assert.ErrorContains(t, err, "duplicate discriminator")

	_, err = NewRegistry("width", LayoutTag1,
		Entry{Name: "a", Discriminator: Tag8(1), Decode: Payload[testSwap]()},
	)
	assert.ErrorContains(t, err, "discriminator width")

	_, err = NewRegistry("nodecoder", LayoutTag8, Entry{Name: "a", Discriminator: Tag8(1)})
	assert.ErrorContains(t, err, "no payload decoder")

	_, err = NewRegistry("noname", LayoutTag8, Entry{Discriminator: Tag8(1), Decode: Payload[testSwap]()})
	assert.ErrorContains(t, err, "empty name")

	_, err = NewRegistry("variants", LayoutTag8, Entry{
		Name: "a", Discriminator: Tag8(1),
		Variants: []Variant{{Len: 8, Decode: Payload[testTradeV1]()}, {Len: 8, Decode: Payload[testTradeV1]()}},
	})
	assert.ErrorContains(t, err, "duplicate variant")

	assert.Panics(t, func() { MustNewRegistry("bad", Layout(0)) })
}

func TestRegistryLookupAndEntries(t *testing.T) {
	r := MustNewRegistry("p", LayoutTag8,
		Entry{Name: "sell", Discriminator: Tag8(0x33e685a4017f83ad), Decode: Payload[testSwap]()},
		Entry{Name: "buy", Discriminator: Tag8(0x66063d1201daebea), Decode: Payload[testSwap]()},
	)
	assert.Equal(t, "p", r.Program())
	assert.Equal(t, LayoutTag8, r.Layout())
	assert.Equal(t, 2, r.Len())

	e, ok := r.Lookup(AnchorInstruction("buy"))
	require.True(t, ok)
	assert.Equal(t, "buy", e.Name)

	_, ok = r.Lookup(Tag8(0x66063d1201daebeb))
	assert.False(t, ok, "只做精确匹配")

	entries := r.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "buy", entries[0].Name)
	assert.Equal(t, "sell", entries[1].Name)
}

func TestRegistryDecodeInstruction(t *testing.T) {
	r := newLegacyRegistry(t)
	data := mustHex(t, "09"+"0100000000000000"+"0200000000000000")
	pool, user, referrer := types.Pubkey{1}, types.Pubkey{2}, types.Pubkey{3}

	ix, err := r.DecodeInstruction(data, []types.Pubkey{pool, user}, ReturnError)
	require.NoError(t, err)
	assert.Equal(t, testSwap{AmountIn: 1, MinAmountOut: 2}, ix.Value)
	assert.Equal(t, pool, ix.Accounts.MustGet("pool"))
	assert.False(t, ix.Accounts.Has("referrer"))

	ix, err = r.DecodeInstruction(data, []types.Pubkey{pool, user, referrer, {4}}, ReturnError)
	require.NoError(t, err)
	got, ok := ix.Accounts.Get("referrer")
	require.True(t, ok)
	assert.Equal(t, referrer, got)

	ix, err = r.DecodeInstruction(data, []types.Pubkey{pool}, ReturnError)
	var missing *MissingAccountError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "user", missing.Name)
	assert.Equal(t, 1, missing.Index)
	assert.Equal(t, testSwap{AmountIn: 1, MinAmountOut: 2}, ix.Value, "负载解码结果仍然返回")

	ix, err = r.DecodeInstruction([]byte{7}, nil, ReturnUnknownVariant)
	require.NoError(t, err)
	assert.True(t, ix.Unknown)
	assert.Equal(t, 0, ix.Accounts.Len())
}

func TestRegistryAccountLayoutsByLength(t *testing.T) {
	short := MustAccountSchema("swap17", Required(0, "amm"), Required(1, "coin_vault"))
	long := MustAccountSchema("swap18", Required(0, "amm"), Required(1, "target_orders"), Required(2, "coin_vault"))
	r := MustNewRegistry("layouts", LayoutTag1, Entry{
		Name: "swap", Discriminator: Tag1(9), Decode: Payload[testSwap](), FixedLen: 16,
		Accounts:       long,
		AccountLayouts: map[int]*AccountSchema{2: short},
	})
	data := append([]byte{9}, make([]byte, 16)...)

	ix, err := r.DecodeInstruction(data, []types.Pubkey{{1}, {2}}, ReturnError)
	require.NoError(t, err)
	assert.Equal(t, types.Pubkey{2}, ix.Accounts.MustGet("coin_vault"))

	ix, err = r.DecodeInstruction(data, []types.Pubkey{{1}, {2}, {3}}, ReturnError)
	require.NoError(t, err)
	assert.Equal(t, types.Pubkey{3}, ix.Accounts.MustGet("coin_vault"))
}

func TestRegistryConcurrentReaders(t *testing.T) {
	r := newLegacyRegistry(t)
	data := mustHex(t, "09" + "0100000000000000" + "0200000000000000")
	want, err := r.Decode(data, ReturnError)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.Decode(data, ReturnError)
			if err != nil {
				errs <- err
				return
			}
			if got.Value != want.Value {
				errs <- errors.New("并发解码结果不一致")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
