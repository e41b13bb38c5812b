package idl

import (
	"fmt"
	"sort"

	"dex-idl-sol/internal/pkg/types"
)

// AccountSlot 描述账户列表中的一个命名位置。位置由 schema 固定，与名字无关。
type AccountSlot struct {
	Name     string
	Index    int
	Optional bool
}

func Required(index int, name string) AccountSlot {
	return AccountSlot{Name: name, Index: index}
}

// Optional 声明可选槽位：账户列表长度不足时视为不存在，没有其他判定依据
func Optional(index int, name string) AccountSlot {
	return AccountSlot{Name: name, Index: index, Optional: true}
}

// AccountSchema 是一条指令的账户布局，构造后只读
type AccountSchema struct {
	name   string
	slots  []AccountSlot
	byName map[string]int
}

// NewAccountSchema 校验并构造账户布局：
//   - 槽位按 Index 升序排列，Index 与名字都不能重复；
//   - 可选槽位只能出现在所有必需槽位之后。
func NewAccountSchema(name string, slots ...AccountSlot) (*AccountSchema, error) {
	sorted := make([]AccountSlot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	byName := make(map[string]int, len(sorted))
	seenOptional := false
	for i, slot := range sorted {
		if slot.Name == "" {
			return nil, fmt.Errorf("account schema %s: empty slot name at index %d", name, slot.Index)
		}
		if slot.Index < 0 {
			return nil, fmt.Errorf("account schema %s: negative index for %s", name, slot.Name)
		}
		if i > 0 && sorted[i-1].Index == slot.Index {
			return nil, fmt.Errorf("account schema %s: duplicate index %d (%s, %s)",
				name, slot.Index, sorted[i-1].Name, slot.Name)
		}
		if _, dup := byName[slot.Name]; dup {
			return nil, fmt.Errorf("account schema %s: duplicate slot name %s", name, slot.Name)
		}
		if slot.Optional {
			seenOptional = true
		} else if seenOptional {
			return nil, fmt.Errorf("account schema %s: required slot %s after optional slot", name, slot.Name)
		}
		byName[slot.Name] = i
	}
	return &AccountSchema{name: name, slots: sorted, byName: byName}, nil
}

// MustAccountSchema 用于包级变量初始化，布局非法时 panic
func MustAccountSchema(name string, slots ...AccountSlot) *AccountSchema {
	s, err := NewAccountSchema(name, slots...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *AccountSchema) Name() string {
	return s.name
}

func (s *AccountSchema) Slots() []AccountSlot {
	out := make([]AccountSlot, len(s.slots))
	copy(out, s.slots)
	return out
}

// RequiredLen 返回满足全部必需槽位所需的最短账户列表长度
func (s *AccountSchema) RequiredLen() int {
	n := 0
	for _, slot := range s.slots {
		if !slot.Optional {
			n = slot.Index + 1
		}
	}
	return n
}

// Resolve 按位置把账户列表映射到命名槽位：
// 必需槽位缺失返回 *MissingAccountError；可选槽位缺失视为不存在；多余的尾部账户忽略。
func (s *AccountSchema) Resolve(accounts []types.Pubkey) (NamedAccounts, error) {
	named := s.newNamed()
	for i, slot := range s.slots {
		if slot.Index >= len(accounts) {
			if slot.Optional {
				continue
			}
			return NamedAccounts{}, &MissingAccountError{Schema: s.name, Name: slot.Name, Index: slot.Index}
		}
		named.values[i] = accounts[slot.Index]
		named.present[i] = true
	}
	return named, nil
}

// ResolveRaw 与 Resolve 相同，但输入为未校验的原始 key：
// 被引用的 key（必需或可选槽位）不是 32 字节时返回 *InvalidAccountLenError；
// 可选槽位是否存在只看列表长度。
func (s *AccountSchema) ResolveRaw(keys [][]byte) (NamedAccounts, error) {
	named := s.newNamed()
	for i, slot := range s.slots {
		if slot.Index >= len(keys) {
			if slot.Optional {
				continue
			}
			return NamedAccounts{}, &MissingAccountError{Schema: s.name, Name: slot.Name, Index: slot.Index}
		}
		key := keys[slot.Index]
		if len(key) != types.PubkeySize {
			return NamedAccounts{}, &InvalidAccountLenError{Name: slot.Name, Index: slot.Index, Got: len(key)}
		}
		copy(named.values[i][:], key)
		named.present[i] = true
	}
	return named, nil
}

func (s *AccountSchema) newNamed() NamedAccounts {
	return NamedAccounts{
		schema:  s,
		values:  make([]types.Pubkey, len(s.slots)),
		present: make([]bool, len(s.slots)),
	}
}

// NamedAccounts 是解析后的命名账户集合，零值表示没有账户布局
type NamedAccounts struct {
	schema  *AccountSchema
	values  []types.Pubkey
	present []bool
}

func (n NamedAccounts) Schema() *AccountSchema {
	return n.schema
}

// Get 返回指定槽位的账户；槽位不存在或可选账户缺失时 ok=false
func (n NamedAccounts) Get(name string) (types.Pubkey, bool) {
	if n.schema == nil {
		return types.Pubkey{}, false
	}
	i, ok := n.schema.byName[name]
	if !ok || !n.present[i] {
		return types.Pubkey{}, false
	}
	return n.values[i], true
}

// MustGet 只应用于必需槽位
func (n NamedAccounts) MustGet(name string) types.Pubkey {
	p, ok := n.Get(name)
	if !ok {
		panic(fmt.Sprintf("account %q not resolved", name))
	}
	return p
}

func (n NamedAccounts) Has(name string) bool {
	_, ok := n.Get(name)
	return ok
}

// Len 返回已解析（存在）的账户数量
func (n NamedAccounts) Len() int {
	cnt := 0
	for _, p := range n.present {
		if p {
			cnt++
		}
	}
	return cnt
}

// Names 按位置顺序返回已解析的槽位名
func (n NamedAccounts) Names() []string {
	if n.schema == nil {
		return nil
	}
	out := make([]string, 0, len(n.values))
	for i, slot := range n.schema.slots {
		if n.present[i] {
			out = append(out, slot.Name)
		}
	}
	return out
}

// Map 返回 name → 账户 的副本，便于序列化输出
func (n NamedAccounts) Map() map[string]types.Pubkey {
	if n.schema == nil {
		return nil
	}
	out := make(map[string]types.Pubkey, len(n.values))
	for i, slot := range n.schema.slots {
		if n.present[i] {
			out[slot.Name] = n.values[i]
		}
	}
	return out
}
