package idl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorTake(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5})

	b, err := c.Take(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	assert.Equal(t, 3, c.Remaining())
	assert.Equal(t, 2, c.Pos())
	assert.Equal(t, []byte{3, 4, 5}, c.Rest())

	b, err = c.Take(0)
	require.NoError(t, err)
	assert.Empty(t, b)

	_, err = c.Take(4)
	var tooShort *TooShortError
	require.True(t, errors.As(err, &tooShort))
	assert.Equal(t, 3, tooShort.Len, "TooShort 应携带剩余长度")
	assert.Equal(t, 3, c.Remaining(), "失败时不推进位置")

	b, err = c.Take(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4, 5}, b)
	assert.Equal(t, 0, c.Remaining())
}

func TestCursorNeverPanics(t *testing.T) {
	c := NewCursor(nil)
	assert.NotPanics(t, func() {
		_, err := c.Take(1)
		assert.ErrorIs(t, err, ErrTooShort)
		_, err = c.Take(-1)
		assert.ErrorIs(t, err, ErrTooShort)
	})
	assert.Equal(t, 0, c.Remaining())
}

func TestCursorTakeDoesNotAliasAppend(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	c := NewCursor(buf)
	b, err := c.Take(2)
	require.NoError(t, err)
	_ = append(b, 9)
	assert.Equal(t, []byte{1, 2, 3, 4}, buf, "子切片容量受限，append 不应覆盖后续字节")
}
