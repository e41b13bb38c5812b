package idl

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Discriminator 是指令 / 事件数据前缀的判别符，宽度 1~8 字节。
// 值类型且可比较，可直接作为 map key。
type Discriminator struct {
	width uint8
	b     [8]byte
}

// SelfCPITag 是 Anchor emit_cpi! 事件外层固定的 8 字节标记
var SelfCPITag = Tag8(0xe445a52e51cb9a1d)

// Tag1 构造 1 字节判别符（Raydium V4、SPL Token 等老程序）
func Tag1(b byte) Discriminator {
	return Discriminator{width: 1, b: [8]byte{b}}
}

// Tag8 以大端字面量构造 8 字节判别符，0x66063d1201daebea 即字节 66 06 3d ...
func Tag8(v uint64) Discriminator {
	d := Discriminator{width: 8}
	binary.BigEndian.PutUint64(d.b[:], v)
	return d
}

func Tag8Bytes(b [8]byte) Discriminator {
	return Discriminator{width: 8, b: b}
}

// DiscriminatorFrom 从 1~8 字节构造判别符，长度不合法时返回 false
func DiscriminatorFrom(b []byte) (Discriminator, bool) {
	if len(b) == 0 || len(b) > 8 {
		return Discriminator{}, false
	}
	d := Discriminator{width: uint8(len(b))}
	copy(d.b[:], b)
	return d, true
}

// AnchorInstruction 计算 Anchor 指令判别符：sha256("global:<name>")[:8]
func AnchorInstruction(name string) Discriminator {
	return anchorHash("global:" + name)
}

// AnchorEvent 计算 Anchor 事件判别符：sha256("event:<Name>")[:8]
func AnchorEvent(name string) Discriminator {
	return anchorHash("event:" + name)
}

// AnchorAccount 计算 Anchor 账户判别符：sha256("account:<Name>")[:8]
func AnchorAccount(name string) Discriminator {
	return anchorHash("account:" + name)
}

func anchorHash(preimage string) Discriminator {
	sum := sha256.Sum256([]byte(preimage))
	d := Discriminator{width: 8}
	copy(d.b[:], sum[:8])
	return d
}

func (d Discriminator) Width() int {
	return int(d.width)
}

func (d Discriminator) Bytes() []byte {
	out := make([]byte, d.width)
	copy(out, d.b[:d.width])
	return out
}

// Uint64 返回大端解释的数值，与 Tag8 的字面量一致
func (d Discriminator) Uint64() uint64 {
	var v uint64
	for i := 0; i < int(d.width); i++ {
		v = v<<8 | uint64(d.b[i])
	}
	return v
}

func (d Discriminator) IsZero() bool {
	return d.width == 0
}

func (d Discriminator) String() string {
	return hex.EncodeToString(d.b[:d.width])
}

func (d Discriminator) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
