package idl

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"dex-idl-sol/internal/pkg/types"
)

var (
	pubkeyType    = reflect.TypeOf(types.Pubkey{})
	pubkeyPtrType = reflect.TypeOf(&types.Pubkey{})
)

// SchemaOf 根据结构体标签生成账户布局：
//
//	type SwapAccounts struct {
//		Pool     types.Pubkey  `account:"1,pool"`
//		Referrer *types.Pubkey `account:"11,referrer"`
//	}
//
// types.Pubkey 字段为必需槽位，*types.Pubkey 字段为可选槽位。
func SchemaOf[T any]() (*AccountSchema, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("idl: SchemaOf requires a struct type, got %s", t)
	}
	slots := make([]AccountSlot, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, ok := f.Tag.Lookup("account")
		if !ok {
			continue
		}
		index, name, err := parseAccountTag(tag)
		if err != nil {
			return nil, fmt.Errorf("idl: %s.%s: %w", t.Name(), f.Name, err)
		}
		switch f.Type {
		case pubkeyType:
			slots = append(slots, Required(index, name))
		case pubkeyPtrType:
			slots = append(slots, Optional(index, name))
		default:
			return nil, fmt.Errorf("idl: %s.%s: account field must be types.Pubkey or *types.Pubkey, got %s",
				t.Name(), f.Name, f.Type)
		}
	}
	return NewAccountSchema(t.Name(), slots...)
}

// MustSchemaOf 用于包级变量初始化
func MustSchemaOf[T any]() *AccountSchema {
	s, err := SchemaOf[T]()
	if err != nil {
		panic(err)
	}
	return s
}

// Bind 把已解析的命名账户填入带 account 标签的结构体
func Bind[T any](named NamedAccounts) (T, error) {
	var out T
	v := reflect.ValueOf(&out).Elem()
	t := v.Type()
	if t.Kind() != reflect.Struct {
		return out, fmt.Errorf("idl: Bind requires a struct type, got %s", t)
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, ok := f.Tag.Lookup("account")
		if !ok {
			continue
		}
		_, name, err := parseAccountTag(tag)
		if err != nil {
			return out, fmt.Errorf("idl: %s.%s: %w", t.Name(), f.Name, err)
		}
		key, present := named.Get(name)
		switch f.Type {
		case pubkeyType:
			if !present {
				return out, &MissingAccountError{Schema: t.Name(), Name: name, Index: -1}
			}
			v.Field(i).Set(reflect.ValueOf(key))
		case pubkeyPtrType:
			if present {
				k := key
				v.Field(i).Set(reflect.ValueOf(&k))
			}
		}
	}
	return out, nil
}

// ResolveInto 一步完成布局生成、位置解析与结构体填充
func ResolveInto[T any](accounts []types.Pubkey) (T, error) {
	var zero T
	schema, err := SchemaOf[T]()
	if err != nil {
		return zero, err
	}
	named, err := schema.Resolve(accounts)
	if err != nil {
		return zero, err
	}
	return Bind[T](named)
}

func parseAccountTag(tag string) (int, string, error) {
	idx, name, ok := strings.Cut(tag, ",")
	if !ok {
		return 0, "", fmt.Errorf("invalid account tag %q, want \"<index>,<name>\"", tag)
	}
	index, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil {
		return 0, "", fmt.Errorf("invalid account index in tag %q: %w", tag, err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, "", fmt.Errorf("empty account name in tag %q", tag)
	}
	return index, name, nil
}
