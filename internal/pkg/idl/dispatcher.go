package idl

import (
	"bytes"
	"fmt"
)

// Layout 描述一个程序的判别符布局，是注册表的静态配置而非运行时探测
type Layout uint8

const (
	// LayoutTag1 1 字节判别符，如 Raydium V4、SPL Token
	LayoutTag1 Layout = iota + 1
	// LayoutTag8 8 字节 Anchor 判别符
	LayoutTag8
	// LayoutSelfCPI 8 字节判别符，兼容 16 字节 self-CPI 包装：
	// 前 8 字节等于 SelfCPITag 且长度 >= 16 时取 [8:16) 为判别符，否则取 [0:8)
	LayoutSelfCPI
	// LayoutWrapped16 必须带 SelfCPITag 外层包装的事件流
	LayoutWrapped16
)

// MinLen 返回该布局下缓冲区的最小长度
func (l Layout) MinLen() int {
	switch l {
	case LayoutTag1:
		return 1
	case LayoutTag8, LayoutSelfCPI:
		return 8
	case LayoutWrapped16:
		return 16
	default:
		return 0
	}
}

// KeyWidth 返回注册表中判别符的宽度
func (l Layout) KeyWidth() int {
	if l == LayoutTag1 {
		return 1
	}
	return 8
}

func (l Layout) String() string {
	switch l {
	case LayoutTag1:
		return "tag1"
	case LayoutTag8:
		return "tag8"
	case LayoutSelfCPI:
		return "self-cpi"
	case LayoutWrapped16:
		return "wrapped16"
	default:
		return fmt.Sprintf("layout(%d)", uint8(l))
	}
}

// Split 从缓冲区前部取出判别符，返回判别符与剩余负载（负载为子切片，不拷贝）
func Split(layout Layout, buf []byte) (Discriminator, []byte, error) {
	minLen := layout.MinLen()
	if minLen == 0 {
		return Discriminator{}, nil, fmt.Errorf("unknown discriminator layout: %s", layout)
	}
	if len(buf) < minLen {
		return Discriminator{}, nil, &TooShortError{Len: len(buf)}
	}

	switch layout {
	case LayoutTag1:
		return Tag1(buf[0]), buf[1:], nil

	case LayoutTag8:
		return tag8At(buf, 0), buf[8:], nil

	case LayoutSelfCPI:
		if IsSelfCPI(buf) {
			return tag8At(buf, 8), buf[16:], nil
		}
		return tag8At(buf, 0), buf[8:], nil

	default: // LayoutWrapped16
		if !IsSelfCPI(buf) {
			return Discriminator{}, nil, &UnrecognizedError{Discriminator: tag8At(buf, 0)}
		}
		return tag8At(buf, 8), buf[16:], nil
	}
}

// IsSelfCPI 判断缓冲区是否为 self-CPI 包装的事件数据
func IsSelfCPI(buf []byte) bool {
	return len(buf) >= 16 && bytes.Equal(buf[:8], SelfCPITag.b[:])
}

func tag8At(buf []byte, off int) Discriminator {
	d := Discriminator{width: 8}
	copy(d.b[:], buf[off:off+8])
	return d
}
