package idl

import (
	"errors"
	"fmt"
)

// 解码错误是一个封闭集合，调用方可用 errors.Is 匹配哨兵错误，
// 也可用 errors.As 取出携带上下文的具体类型。
var (
	ErrTooShort          = errors.New("buffer too short")
	ErrInvalidTag        = errors.New("invalid tag")
	ErrLengthMismatch    = errors.New("length mismatch")
	ErrUnrecognized      = errors.New("unrecognized discriminator")
	ErrMissingAccount    = errors.New("missing account")
	ErrInvalidAccountLen = errors.New("invalid account key length")
)

// TooShortError 表示缓冲区或游标剩余长度不足，Len 为实际观察到的长度
type TooShortError struct {
	Len int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("buffer too short: len=%d", e.Len)
}

func (e *TooShortError) Is(target error) bool { return target == ErrTooShort }

// InvalidTagError 表示 Option / enum / bool 的标记字节不在合法范围内
type InvalidTagError struct {
	Kind string // option / enum / bool
	Tag  uint8
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("invalid %s tag: %d", e.Kind, e.Tag)
}

func (e *InvalidTagError) Is(target error) bool { return target == ErrInvalidTag }

// LengthMismatchError 表示声明的长度（定长负载、版本长度、Vec/String 前缀）无法被剩余字节满足
type LengthMismatchError struct {
	Want int
	Got  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: want=%d, got=%d", e.Want, e.Got)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }

// UnrecognizedError 表示判别符在注册表中没有匹配项
type UnrecognizedError struct {
	Program       string
	Discriminator Discriminator
}

func (e *UnrecognizedError) Error() string {
	if e.Program == "" {
		return fmt.Sprintf("unrecognized discriminator: %s", e.Discriminator)
	}
	return fmt.Sprintf("%s: unrecognized discriminator: %s", e.Program, e.Discriminator)
}

func (e *UnrecognizedError) Is(target error) bool { return target == ErrUnrecognized }

// MissingAccountError 表示必需账户槽位超出了账户列表长度
type MissingAccountError struct {
	Schema string
	Name   string
	Index  int
}

func (e *MissingAccountError) Error() string {
	return fmt.Sprintf("%s: missing required account `%s` at index %d", e.Schema, e.Name, e.Index)
}

func (e *MissingAccountError) Is(target error) bool { return target == ErrMissingAccount }

// InvalidAccountLenError 表示原始账户 key 不是 32 字节
type InvalidAccountLenError struct {
	Name  string
	Index int
	Got   int
}

func (e *InvalidAccountLenError) Error() string {
	return fmt.Sprintf("invalid key length for `%s` at index %d: got %d, want 32", e.Name, e.Index, e.Got)
}

func (e *InvalidAccountLenError) Is(target error) bool { return target == ErrInvalidAccountLen }

// fieldError 为字段级失败补充位置信息，Unwrap 后仍是上面的具体错误
type fieldError struct {
	path string
	err  error
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.path, e.err)
}

func (e *fieldError) Unwrap() error { return e.err }

func wrapField(path string, err error) error {
	var fe *fieldError
	if errors.As(err, &fe) {
		return &fieldError{path: path + "." + fe.path, err: fe.err}
	}
	return &fieldError{path: path, err: err}
}
