package idl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnchorDiscriminators(t *testing.T) {
	tests := []struct {
		name string
		got  Discriminator
		want Discriminator
	}{
		{"global:buy", AnchorInstruction("buy"), Tag8(0x66063d1201daebea)},
		{"global:sell", AnchorInstruction("sell"), Tag8(0x33e685a4017f83ad)},
		{"global:swap_v2", AnchorInstruction("swap_v2"), Tag8(0x2b04ed0b1ac91e62)},
		{"event:TradeEvent", AnchorEvent("TradeEvent"), Tag8(0xbddb7fd34ee661ee)},
		{"event:SellEvent", AnchorEvent("SellEvent"), Tag8Bytes([8]byte{62, 47, 55, 10, 165, 3, 220, 42})},
		{"event:SwapEvent", AnchorEvent("SwapEvent"), Tag8(0x40c6cde8260871e2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.NotEqual(t, AnchorAccount("Pool"), AnchorEvent("Pool"))
}

func TestDiscriminatorForms(t *testing.T) {
	d := Tag8(0xe445a52e51cb9a1d)
	assert.Equal(t, SelfCPITag, d)
	assert.Equal(t, 8, d.Width())
	assert.Equal(t, "e445a52e51cb9a1d", d.String())
	assert.Equal(t, []byte{0xe4, 0x45, 0xa5, 0x2e, 0x51, 0xcb, 0x9a, 0x1d}, d.Bytes())
	assert.Equal(t, uint64(0xe445a52e51cb9a1d), d.Uint64())

	one := Tag1(9)
	assert.Equal(t, 1, one.Width())
	assert.Equal(t, "09", one.String())
	assert.Equal(t, uint64(9), one.Uint64())
	assert.NotEqual(t, Tag1(9), Tag8(0x0900000000000000), "宽度不同的判别符不相等")

	fromBytes, ok := DiscriminatorFrom([]byte{9})
	assert.True(t, ok)
	assert.Equal(t, one, fromBytes)

	_, ok = DiscriminatorFrom(nil)
	assert.False(t, ok)
	_, ok = DiscriminatorFrom(make([]byte, 9))
	assert.False(t, ok)

	assert.True(t, Discriminator{}.IsZero())
}
