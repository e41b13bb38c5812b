package idl

import (
	"errors"
	"testing"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dex-idl-sol/internal/pkg/types"
)

type sampleInner struct {
	Decimals uint8
	Symbol   string
}

type sampleEvent struct {
	Mint      types.Pubkey
	Amount    uint64
	Delta     int64
	IsBuy     bool
	Index     uint16
	Price     Uint128
	Inner     sampleInner
	Fees      []uint32
	Memo      *string
	Limit     *uint64
	Recipient [2]types.Pubkey
	Raw       []byte
	Ratio     float64
}

type sampleWithSkip struct {
	A     uint8
	Cache string `idl:"-"`
	B     uint8
}

type sampleDirection uint8

type sampleEnumHolder struct {
	Direction sampleDirection `idl:"enum=2"`
	Amount    uint64
}

func TestUnmarshalDecodeAfterEncode(t *testing.T) {
	memo := "gm"
	in := sampleEvent{
		Mint:      types.PubkeyFromBase58("So11111111111111111111111111111111111111112"),
		Amount:    49009900,
		Delta:     -7,
		IsBuy:     true,
		Index:     513,
		Price:     Uint128{Lo: 4295048017, Hi: 1},
		Inner:     sampleInner{Decimals: 6, Symbol: "BONK"},
		Fees:      []uint32{1, 2, 300000},
		Memo:      &memo,
		Recipient: [2]types.Pubkey{{1}, {2}},
		Raw:       []byte{0xde, 0xad},
		Ratio:     0.25,
	}
	// borsh-go 作为独立的编码实现
	payload, err := borsh.Serialize(in)
	require.NoError(t, err)

	out, err := DecodeAs[sampleEvent](payload)
	require.NoError(t, err)
	assert.Equal(t, in, out, "解码结果应与编码前完全一致")

	again, err := DecodeAs[sampleEvent](payload)
	require.NoError(t, err)
	assert.Equal(t, out, again, "同一输入两次解码结果一致")
}

func TestUnmarshalLeftoverBytesIgnored(t *testing.T) {
	payload, err := borsh.Serialize(sampleInner{Decimals: 9, Symbol: "SOL"})
	require.NoError(t, err)
	payload = append(payload, 0xaa, 0xbb, 0xcc)

	out, err := DecodeAs[sampleInner](payload)
	require.NoError(t, err)
	assert.Equal(t, sampleInner{Decimals: 9, Symbol: "SOL"}, out)
}

func TestUnmarshalFieldErrorPath(t *testing.T) {
	_, err := DecodeAs[sampleEvent](make([]byte, 10))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooShort)
	assert.Contains(t, err.Error(), "sampleEvent.Mint")

	var tooShort *TooShortError
	require.True(t, errors.As(err, &tooShort))
	assert.Equal(t, 10, tooShort.Len)
}

func TestUnmarshalSkipAndEnum(t *testing.T) {
	out, err := DecodeAs[sampleWithSkip]([]byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, sampleWithSkip{A: 1, B: 2}, out)

	holder, err := DecodeAs[sampleEnumHolder]([]byte{1, 5, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, sampleDirection(1), holder.Direction)
	assert.Equal(t, uint64(5), holder.Amount)

	_, err = DecodeAs[sampleEnumHolder]([]byte{2, 5, 0, 0, 0, 0, 0, 0, 0})
	assert.ErrorIs(t, err, ErrInvalidTag)
	assert.Contains(t, err.Error(), "Direction")
}

func TestUnmarshalInvalidOptionTag(t *testing.T) {
	type withOption struct {
		Limit *uint64
	}
	_, err := DecodeAs[withOption]([]byte{7})
	var tagErr *InvalidTagError
	require.True(t, errors.As(err, &tagErr))
	assert.Equal(t, "option", tagErr.Kind)
	assert.Equal(t, uint8(7), tagErr.Tag)
}

func TestUnmarshalImplausibleVec(t *testing.T) {
	type withVec struct {
		Keys []types.Pubkey
	}
	_, err := DecodeAs[withVec]([]byte{0x10, 0, 0, 0, 1, 2, 3})
	var lm *LengthMismatchError
	require.True(t, errors.As(err, &lm))
	assert.Equal(t, 16*32, lm.Want)
	assert.Equal(t, 3, lm.Got)
}

// sampleCurve 是带内联数据的枚举，验证 Unmarshaler 扩展点
type sampleCurve struct {
	Kind   uint8
	Supply uint64
	Rate   *uint16
}

func (s *sampleCurve) UnmarshalIDL(c *Cursor) error {
	kind, err := EnumTag(c, 2)
	if err != nil {
		return err
	}
	s.Kind = kind
	if s.Supply, err = U64(c); err != nil {
		return err
	}
	if kind == 1 {
		rate, err := U16(c)
		if err != nil {
			return err
		}
		s.Rate = &rate
	}
	return nil
}

func TestUnmarshalCustomUnmarshaler(t *testing.T) {
	type holder struct {
		Curve sampleCurve
		Tail  uint8
	}
	out, err := DecodeAs[holder]([]byte{1, 10, 0, 0, 0, 0, 0, 0, 0, 0x2c, 0x01, 9})
	require.NoError(t, err)
	require.NotNil(t, out.Curve.Rate)
	assert.Equal(t, uint16(300), *out.Curve.Rate)
	assert.Equal(t, uint64(10), out.Curve.Supply)
	assert.Equal(t, uint8(9), out.Tail)

	_, err = DecodeAs[holder]([]byte{5})
	assert.ErrorIs(t, err, ErrInvalidTag)
}

func TestUnmarshalRejectsNonPointer(t *testing.T) {
	err := Unmarshal(NewCursor(nil), sampleInner{})
	assert.Error(t, err)

	type unsupported struct {
		M map[string]int
	}
	_, err = DecodeAs[unsupported]([]byte{0, 0, 0, 0})
	assert.ErrorContains(t, err, "unsupported kind")
}
