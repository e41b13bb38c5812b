package idl

import (
	"encoding/binary"
	"unicode/utf8"

	"dex-idl-sol/internal/pkg/types"
)

// 以下为 Borsh 兼容的基础类型解码规则，全部小端序、按声明宽度精确读取。

func U8(c *Cursor) (uint8, error) {
	b, err := c.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func U16(c *Cursor) (uint16, error) {
	b, err := c.Take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func U32(c *Cursor) (uint32, error) {
	b, err := c.Take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func U64(c *Cursor) (uint64, error) {
	b, err := c.Take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func U128(c *Cursor) (Uint128, error) {
	b, err := c.Take(16)
	if err != nil {
		return Uint128{}, err
	}
	return Uint128{
		Lo: binary.LittleEndian.Uint64(b[:8]),
		Hi: binary.LittleEndian.Uint64(b[8:]),
	}, nil
}

func I8(c *Cursor) (int8, error) {
	v, err := U8(c)
	return int8(v), err
}

func I16(c *Cursor) (int16, error) {
	v, err := U16(c)
	return int16(v), err
}

func I32(c *Cursor) (int32, error) {
	v, err := U32(c)
	return int32(v), err
}

func I64(c *Cursor) (int64, error) {
	v, err := U64(c)
	return int64(v), err
}

func I128(c *Cursor) (Int128, error) {
	v, err := U128(c)
	return Int128(v), err
}

// Bool 严格解码：只接受 0 / 1
func Bool(c *Cursor) (bool, error) {
	b, err := U8(c)
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &InvalidTagError{Kind: "bool", Tag: b}
	}
}

func PubkeyAt(c *Cursor) (types.Pubkey, error) {
	var p types.Pubkey
	b, err := c.Take(types.PubkeySize)
	if err != nil {
		return p, err
	}
	copy(p[:], b)
	return p, nil
}

// Bytes 读取定长字节数组并拷贝一份，返回值不与输入缓冲区共享内存
func Bytes(c *Cursor, width int) ([]byte, error) {
	b, err := c.Take(width)
	if err != nil {
		return nil, err
	}
	out := make([]byte, width)
	copy(out, b)
	return out, nil
}

// String 读取 u32 长度前缀 + UTF-8 字节
func String(c *Cursor) (string, error) {
	n, err := seqLen(c, 1)
	if err != nil {
		return "", err
	}
	b, err := c.Take(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &InvalidTagError{Kind: "utf8", Tag: firstInvalidByte(b)}
	}
	return string(b), nil
}

// Option 读取 1 字节存在标记：0 表示不存在，1 表示随后跟随 T，其他值报错
func Option[T any](c *Cursor, decode func(*Cursor) (T, error)) (*T, error) {
	tag, err := U8(c)
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		return nil, nil
	case 1:
		v, err := decode(c)
		if err != nil {
			return nil, err
		}
		return &v, nil
	default:
		return nil, &InvalidTagError{Kind: "option", Tag: tag}
	}
}

// Vec 读取 u32 长度前缀后依次解码元素。
// minElemSize 为单个元素的最小编码长度，用于在分配内存前拒绝不可能满足的长度。
func Vec[T any](c *Cursor, decode func(*Cursor) (T, error), minElemSize int) ([]T, error) {
	n, err := seqLen(c, minElemSize)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := decode(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// EnumTag 读取 1 字节变体标记，超出 variants 范围时报错
func EnumTag(c *Cursor, variants int) (uint8, error) {
	tag, err := U8(c)
	if err != nil {
		return 0, err
	}
	if int(tag) >= variants {
		return 0, &InvalidTagError{Kind: "enum", Tag: tag}
	}
	return tag, nil
}

// seqLen 读取 u32 长度前缀，并检查剩余字节是否可能容纳这么多元素
func seqLen(c *Cursor, minElemSize int) (int, error) {
	n, err := U32(c)
	if err != nil {
		return 0, err
	}
	if minElemSize < 1 {
		minElemSize = 1
	}
	need := uint64(n) * uint64(minElemSize)
	if need > uint64(c.Remaining()) {
		return 0, &LengthMismatchError{Want: int(min(need, uint64(maxInt))), Got: c.Remaining()}
	}
	return int(n), nil
}

const maxInt = int(^uint(0) >> 1)

func firstInvalidByte(b []byte) uint8 {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return b[i]
		}
		i += size
	}
	return 0
}
