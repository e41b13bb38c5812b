package idl

// Cursor 是对字节切片的只读游标，所有解码都基于它顺序推进，不回溯。
// 任意输入都不会 panic，长度不足时返回 *TooShortError。
type Cursor struct {
	buf []byte
	pos int
}

func NewCursor(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// Take 读取接下来的 n 个字节并推进位置，返回的是原切片的子切片（不拷贝）
func (c *Cursor) Take(n int) ([]byte, error) {
	remaining := c.Remaining()
	if n < 0 || n > remaining {
		return nil, &TooShortError{Len: remaining}
	}
	b := c.buf[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return b, nil
}

// Remaining 返回尚未读取的字节数
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

func (c *Cursor) Pos() int {
	return c.pos
}

// Rest 返回未读取的尾部字节，不推进位置
func (c *Cursor) Rest() []byte {
	return c.buf[c.pos:]
}
