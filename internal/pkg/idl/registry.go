package idl

import (
	"errors"
	"fmt"
	"sort"

	"dex-idl-sol/internal/pkg/types"
)

// PayloadFunc 把判别符之后的负载解码为具体类型的值
type PayloadFunc func(payload []byte) (any, error)

// Payload 生成按 T 字段顺序反射解码的 PayloadFunc
func Payload[T any]() PayloadFunc {
	return func(payload []byte) (any, error) {
		return DecodeAs[T](payload)
	}
}

// PayloadWith 使用手写的游标解码函数生成 PayloadFunc
func PayloadWith[T any](decode func(*Cursor) (T, error)) PayloadFunc {
	return func(payload []byte) (any, error) {
		return decode(NewCursor(payload))
	}
}

// Variant 是按负载长度区分的版本，例如同一判别符下新旧两版事件结构
type Variant struct {
	Len    int
	Name   string // 为空时沿用 Entry.Name
	Decode PayloadFunc
}

// Entry 是注册表中的一条 schema：判别符 + 负载解码方式 + 可选账户布局
type Entry struct {
	Name          string
	Discriminator Discriminator
	Decode        PayloadFunc

	// FixedLen > 0 表示老协议的定长负载：不足时报错，多余的尾部字节在解码前截掉
	FixedLen int

	// Variants 非空时按负载精确长度选择解码器，此时忽略 Decode / FixedLen
	Variants []Variant

	// Accounts 为指令的账户布局；AccountLayouts 按账户列表精确长度覆盖默认布局
	Accounts       *AccountSchema
	AccountLayouts map[int]*AccountSchema
}

func (e *Entry) decodePayload(payload []byte) (string, any, error) {
	if len(e.Variants) > 0 {
		maxLen := 0
		for _, v := range e.Variants {
			if v.Len == len(payload) {
				name := v.Name
				if name == "" {
					name = e.Name
				}
				value, err := v.Decode(payload)
				return name, value, err
			}
			maxLen = max(maxLen, v.Len)
		}
		return e.Name, nil, &LengthMismatchError{Want: maxLen, Got: len(payload)}
	}

	if e.FixedLen > 0 {
		if len(payload) < e.FixedLen {
			return e.Name, nil, &LengthMismatchError{Want: e.FixedLen, Got: len(payload)}
		}
		payload = payload[:e.FixedLen]
	}
	value, err := e.Decode(payload)
	return e.Name, value, err
}

// hasVariantFor 判断 n 字节的负载能否选中一个长度版本；未声明 Variants 时总为 true
func (e *Entry) hasVariantFor(n int) bool {
	if len(e.Variants) == 0 {
		return true
	}
	for _, v := range e.Variants {
		if v.Len == n {
			return true
		}
	}
	return false
}

// AccountsFor 返回给定账户数量下应使用的账户布局，可能为 nil
func (e *Entry) AccountsFor(n int) *AccountSchema {
	if s, ok := e.AccountLayouts[n]; ok {
		return s
	}
	return e.Accounts
}

// OnUnrecognized 决定判别符未命中时的处理方式，由调用点选择
type OnUnrecognized uint8

const (
	// ReturnUnknownVariant 未命中视为解码成功，返回 Unknown=true 的结果
	ReturnUnknownVariant OnUnrecognized = iota
	// ReturnError 未命中返回 *UnrecognizedError
	ReturnError
)

func (p OnUnrecognized) String() string {
	if p == ReturnError {
		return "error"
	}
	return "unknown"
}

// Decoded 是一次负载解码的结果。Unknown=true 时只有 Program / Discriminator 有效。
type Decoded struct {
	Program       string
	Name          string
	Discriminator Discriminator
	Value         any
	Unknown       bool
}

// Instruction 是负载解码结果与账户解析结果的组合
type Instruction struct {
	Decoded
	Accounts NamedAccounts
}

// Registry 是一个程序（或其事件流）的 schema 表，构造后只读，可被任意数量的 goroutine 并发读取
type Registry struct {
	program string
	layout  Layout
	entries map[Discriminator]*Entry
	ordered []*Entry
}

// NewRegistry 校验并构造注册表：名字非空、判别符宽度与布局一致、判别符不重复
func NewRegistry(program string, layout Layout, entries ...Entry) (*Registry, error) {
	if layout.MinLen() == 0 {
		return nil, fmt.Errorf("registry %s: unknown layout %d", program, layout)
	}
	r := &Registry{
		program: program,
		layout:  layout,
		entries: make(map[Discriminator]*Entry, len(entries)),
		ordered: make([]*Entry, 0, len(entries)),
	}
	for i := range entries {
		e := entries[i]
		if err := validateEntry(layout, &e); err != nil {
			return nil, fmt.Errorf("registry %s: %w", program, err)
		}
		if prev, dup := r.entries[e.Discriminator]; dup {
			return nil, fmt.Errorf("registry %s: duplicate discriminator %s (%s, %s)",
				program, e.Discriminator, prev.Name, e.Name)
		}
		r.entries[e.Discriminator] = &e
		r.ordered = append(r.ordered, &e)
	}
	sort.Slice(r.ordered, func(i, j int) bool { return r.ordered[i].Name < r.ordered[j].Name })
	return r, nil
}

// MustNewRegistry 用于包级初始化，schema 声明错误时 panic
func MustNewRegistry(program string, layout Layout, entries ...Entry) *Registry {
	r, err := NewRegistry(program, layout, entries...)
	if err != nil {
		panic(err)
	}
	return r
}

func validateEntry(layout Layout, e *Entry) error {
	if e.Name == "" {
		return fmt.Errorf("entry with discriminator %s has empty name", e.Discriminator)
	}
	if e.Discriminator.Width() != layout.KeyWidth() {
		return fmt.Errorf("entry %s: discriminator width %d, layout %s wants %d",
			e.Name, e.Discriminator.Width(), layout, layout.KeyWidth())
	}
	if e.FixedLen < 0 {
		return fmt.Errorf("entry %s: negative fixed length", e.Name)
	}
	if len(e.Variants) == 0 {
		if e.Decode == nil {
			return fmt.Errorf("entry %s: no payload decoder", e.Name)
		}
		return nil
	}
	seen := make(map[int]bool, len(e.Variants))
	for _, v := range e.Variants {
		if v.Len <= 0 || v.Decode == nil {
			return fmt.Errorf("entry %s: invalid variant len=%d", e.Name, v.Len)
		}
		if seen[v.Len] {
			return fmt.Errorf("entry %s: duplicate variant len=%d", e.Name, v.Len)
		}
		seen[v.Len] = true
	}
	return nil
}

func (r *Registry) Program() string {
	return r.program
}

func (r *Registry) Layout() Layout {
	return r.layout
}

func (r *Registry) Len() int {
	return len(r.ordered)
}

// Lookup 按判别符精确匹配，返回 schema 的副本
func (r *Registry) Lookup(d Discriminator) (Entry, bool) {
	e, ok := r.entries[d]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Entries 按名字排序返回全部 schema 的副本
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.ordered))
	for _, e := range r.ordered {
		out = append(out, *e)
	}
	return out
}

// Decode 拆分判别符、查表并解码负载。
// 判别符未命中时按 policy 返回 Unknown 结果或 *UnrecognizedError；
// 判别符命中但负载长度不属于任何已知版本时，ReturnUnknownVariant 同样返回 Unknown（保留 Name），
// ReturnError 返回 *LengthMismatchError。
// 其余负载解码失败总是返回错误（携带程序名与 schema 名）。
func (r *Registry) Decode(buf []byte, policy OnUnrecognized) (Decoded, error) {
	d, _, err := r.decode(buf, policy)
	return d, err
}

func (r *Registry) decode(buf []byte, policy OnUnrecognized) (Decoded, *Entry, error) {
	key, payload, err := Split(r.layout, buf)
	if err != nil {
		var unrec *UnrecognizedError
		if errors.As(err, &unrec) {
			return r.miss(unrec.Discriminator, policy)
		}
		return Decoded{Program: r.program}, nil, err
	}

	entry, ok := r.entries[key]
	if !ok {
		return r.miss(key, policy)
	}
	if policy == ReturnUnknownVariant && !entry.hasVariantFor(len(payload)) {
		return Decoded{Program: r.program, Name: entry.Name, Discriminator: key, Unknown: true}, nil, nil
	}

	name, value, err := entry.decodePayload(payload)
	if err != nil {
		return Decoded{Program: r.program, Name: name, Discriminator: key}, entry,
			fmt.Errorf("%s.%s: %w", r.program, name, err)
	}
	return Decoded{Program: r.program, Name: name, Discriminator: key, Value: value}, entry, nil
}

func (r *Registry) miss(key Discriminator, policy OnUnrecognized) (Decoded, *Entry, error) {
	if policy == ReturnError {
		return Decoded{Program: r.program, Discriminator: key}, nil,
			&UnrecognizedError{Program: r.program, Discriminator: key}
	}
	return Decoded{Program: r.program, Discriminator: key, Unknown: true}, nil, nil
}

// DecodeInstruction 解码指令数据，并对命中且声明了账户布局的 schema 解析账户列表。
// 两条路径相互独立：负载解码失败时不再解析账户。
func (r *Registry) DecodeInstruction(data []byte, accounts []types.Pubkey, policy OnUnrecognized) (Instruction, error) {
	d, entry, err := r.decode(data, policy)
	if err != nil || entry == nil {
		return Instruction{Decoded: d}, err
	}
	schema := entry.AccountsFor(len(accounts))
	if schema == nil {
		return Instruction{Decoded: d}, nil
	}
	named, err := schema.Resolve(accounts)
	if err != nil {
		return Instruction{Decoded: d}, fmt.Errorf("%s.%s: %w", r.program, d.Name, err)
	}
	return Instruction{Decoded: d, Accounts: named}, nil
}
