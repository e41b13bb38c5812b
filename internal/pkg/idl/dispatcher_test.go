package idl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTooShort(t *testing.T) {
	tests := []struct {
		layout Layout
		length int
	}{
		{LayoutTag1, 0},
		{LayoutTag8, 0},
		{LayoutTag8, 7},
		{LayoutSelfCPI, 5},
		{LayoutWrapped16, 15},
	}
	for _, tt := range tests {
		t.Run(tt.layout.String(), func(t *testing.T) {
			_, _, err := Split(tt.layout, make([]byte, tt.length))
			var tooShort *TooShortError
			require.True(t, errors.As(err, &tooShort))
			assert.Equal(t, tt.length, tooShort.Len, "应返回实际观察到的长度")
		})
	}
}

func TestSplitTag1(t *testing.T) {
	key, payload, err := Split(LayoutTag1, []byte{9, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, Tag1(9), key)
	assert.Equal(t, []byte{1, 2}, payload)
}

func TestSplitSelfCPI(t *testing.T) {
	wrapped := mustHex(t, "e445a52e51cb9a1d"+"bddb7fd34ee661ee"+"0102")
	key, payload, err := Split(LayoutSelfCPI, wrapped)
	require.NoError(t, err)
	assert.Equal(t, Tag8(0xbddb7fd34ee661ee), key, "取内层判别符")
	assert.Equal(t, []byte{1, 2}, payload, "第 16 字节之后为负载")

	plain := mustHex(t, "bddb7fd34ee661ee"+"0102")
	key, payload, err = Split(LayoutSelfCPI, plain)
	require.NoError(t, err)
	assert.Equal(t, Tag8(0xbddb7fd34ee661ee), key)
	assert.Equal(t, []byte{1, 2}, payload)

	// 只有外层标记、长度不足 16：按普通 8 字节判别符处理
	outerOnly := mustHex(t, "e445a52e51cb9a1d"+"01")
	key, payload, err = Split(LayoutSelfCPI, outerOnly)
	require.NoError(t, err)
	assert.Equal(t, SelfCPITag, key)
	assert.Equal(t, []byte{1}, payload)

	// LayoutTag8 从不解包
	key, _, err = Split(LayoutTag8, wrapped)
	require.NoError(t, err)
	assert.Equal(t, SelfCPITag, key)
}

func TestSplitWrapped16(t *testing.T) {
	key, payload, err := Split(LayoutWrapped16, mustHex(t, "e445a52e51cb9a1d"+"40c6cde8260871e2"))
	require.NoError(t, err)
	assert.Equal(t, Tag8(0x40c6cde8260871e2), key)
	assert.Empty(t, payload)

	_, _, err = Split(LayoutWrapped16, mustHex(t, "40c6cde8260871e2"+"40c6cde8260871e2"))
	var unrec *UnrecognizedError
	require.True(t, errors.As(err, &unrec))
	assert.Equal(t, Tag8(0x40c6cde8260871e2), unrec.Discriminator)
}

func TestSplitUnknownLayout(t *testing.T) {
	_, _, err := Split(Layout(0), []byte{1, 2, 3})
	assert.Error(t, err)
}
