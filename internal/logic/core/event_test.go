package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRecordID(t *testing.T) {
	cases := []struct {
		tx             uint32
		ix, inner, seq uint16
	}{
		{0, 0, 0, 0},
		{1, 2, 3, 4},
		{0xFFFFF, 0xFFF, 0xFFFF, 0xFFFF},
		{4321, 17, 0, 2},
	}
	seen := map[uint64]bool{}
	for _, c := range cases {
		id := BuildRecordID(c.tx, c.ix, c.inner, c.seq)
		assert.False(t, seen[id], "ID 冲突: %d", id)
		seen[id] = true

		tx, ix, inner, seq := SplitRecordID(id)
		assert.Equal(t, c.tx, tx)
		assert.Equal(t, c.ix, ix)
		assert.Equal(t, c.inner, inner)
		assert.Equal(t, c.seq, seq)
	}

	// 排序与执行顺序一致
	assert.Less(t, BuildRecordID(1, 0, 5, 0), BuildRecordID(1, 1, 0, 0))
	assert.Less(t, BuildRecordID(1, 0, 0, 9), BuildRecordID(1, 0, 1, 0))
}

func TestRecordKind(t *testing.T) {
	assert.Equal(t, "instruction", KindInstruction.String())
	assert.Equal(t, "event", KindEvent.String())
	assert.Equal(t, "log_event", KindLogEvent.String())
	assert.Equal(t, "unknown", RecordKind(0).String())
}
