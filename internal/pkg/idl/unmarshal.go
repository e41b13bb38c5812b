package idl

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Unmarshaler 由需要自定义解码的类型实现，典型场景是带内联数据的枚举（tagged union）
type Unmarshaler interface {
	UnmarshalIDL(c *Cursor) error
}

var unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()

// DecodeAs 将负载按 T 的字段声明顺序解码，未读取的尾部字节不做检查
func DecodeAs[T any](payload []byte) (T, error) {
	var v T
	err := Unmarshal(NewCursor(payload), &v)
	return v, err
}

// Unmarshal 按字段声明顺序把游标中的数据解码进 v（必须是非 nil 指针）。
//
// 类型映射：
//   - bool / 整数 / 浮点：定宽小端
//   - string：u32 长度 + UTF-8
//   - [N]T：定长数组，[N]byte 直接拷贝
//   - []T：u32 长度前缀的 Vec
//   - *T：1 字节存在标记的 Option
//   - struct：按字段顺序递归；`idl:"-"` 跳过字段
//   - 带 `idl:"enum=N"` 的 uint8 字段：N 个变体的枚举标记
//   - 实现 Unmarshaler 的类型：交给类型自身处理
func Unmarshal(c *Cursor, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("idl: Unmarshal requires a non-nil pointer, got %T", v)
	}
	elem := rv.Elem()
	if err := decodeValue(c, elem, fieldTag{}); err != nil {
		if name := elem.Type().Name(); name != "" {
			return wrapField(name, err)
		}
		return err
	}
	return nil
}

type fieldTag struct {
	skip     bool
	variants int // >0 表示按枚举标记解码
}

func parseFieldTag(tag string) (fieldTag, error) {
	var ft fieldTag
	if tag == "" {
		return ft, nil
	}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "-":
			ft.skip = true
		case strings.HasPrefix(part, "enum="):
			n, err := strconv.Atoi(strings.TrimPrefix(part, "enum="))
			if err != nil || n <= 0 || n > 256 {
				return ft, fmt.Errorf("idl: invalid enum tag %q", part)
			}
			ft.variants = n
		default:
			return ft, fmt.Errorf("idl: unknown struct tag option %q", part)
		}
	}
	return ft, nil
}

func decodeValue(c *Cursor, v reflect.Value, tag fieldTag) error {
	if v.CanAddr() && v.Addr().Type().Implements(unmarshalerType) {
		return v.Addr().Interface().(Unmarshaler).UnmarshalIDL(c)
	}

	switch v.Kind() {
	case reflect.Bool:
		b, err := Bool(c)
		if err != nil {
			return err
		}
		v.SetBool(b)

	case reflect.Uint8:
		var (
			n   uint8
			err error
		)
		if tag.variants > 0 {
			n, err = EnumTag(c, tag.variants)
		} else {
			n, err = U8(c)
		}
		if err != nil {
			return err
		}
		v.SetUint(uint64(n))

	case reflect.Uint16:
		n, err := U16(c)
		if err != nil {
			return err
		}
		v.SetUint(uint64(n))

	case reflect.Uint32:
		n, err := U32(c)
		if err != nil {
			return err
		}
		v.SetUint(uint64(n))

	case reflect.Uint64:
		n, err := U64(c)
		if err != nil {
			return err
		}
		v.SetUint(n)

	case reflect.Int8:
		n, err := I8(c)
		if err != nil {
			return err
		}
		v.SetInt(int64(n))

	case reflect.Int16:
		n, err := I16(c)
		if err != nil {
			return err
		}
		v.SetInt(int64(n))

	case reflect.Int32:
		n, err := I32(c)
		if err != nil {
			return err
		}
		v.SetInt(int64(n))

	case reflect.Int64:
		n, err := I64(c)
		if err != nil {
			return err
		}
		v.SetInt(n)

	case reflect.Float32:
		n, err := U32(c)
		if err != nil {
			return err
		}
		v.SetFloat(float64(math.Float32frombits(n)))

	case reflect.Float64:
		n, err := U64(c)
		if err != nil {
			return err
		}
		v.SetFloat(math.Float64frombits(n))

	case reflect.String:
		s, err := String(c)
		if err != nil {
			return err
		}
		v.SetString(s)

	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b, err := c.Take(v.Len())
			if err != nil {
				return err
			}
			reflect.Copy(v, reflect.ValueOf(b))
			return nil
		}
		for i := 0; i < v.Len(); i++ {
			if err := decodeValue(c, v.Index(i), fieldTag{}); err != nil {
				return wrapField(fmt.Sprintf("[%d]", i), err)
			}
		}

	case reflect.Slice:
		elemType := v.Type().Elem()
		n, err := seqLen(c, minEncodedSize(elemType))
		if err != nil {
			return err
		}
		if elemType.Kind() == reflect.Uint8 {
			b, err := c.Take(n)
			if err != nil {
				return err
			}
			out := reflect.MakeSlice(v.Type(), n, n)
			reflect.Copy(out, reflect.ValueOf(b))
			v.Set(out)
			return nil
		}
		out := reflect.MakeSlice(v.Type(), n, n)
		for i := 0; i < n; i++ {
			if err := decodeValue(c, out.Index(i), fieldTag{}); err != nil {
				return wrapField(fmt.Sprintf("[%d]", i), err)
			}
		}
		v.Set(out)

	case reflect.Pointer:
		present, err := U8(c)
		if err != nil {
			return err
		}
		switch present {
		case 0:
			v.SetZero()
		case 1:
			inner := reflect.New(v.Type().Elem())
			if err := decodeValue(c, inner.Elem(), tag); err != nil {
				return err
			}
			v.Set(inner)
		default:
			return &InvalidTagError{Kind: "option", Tag: present}
		}

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			ft, err := parseFieldTag(f.Tag.Get("idl"))
			if err != nil {
				return err
			}
			if ft.skip {
				continue
			}
			if !f.IsExported() {
				return fmt.Errorf("idl: unexported field %s.%s", t.Name(), f.Name)
			}
			if err := decodeValue(c, v.Field(i), ft); err != nil {
				return wrapField(f.Name, err)
			}
		}

	default:
		return fmt.Errorf("idl: unsupported kind %s (%s)", v.Kind(), v.Type())
	}
	return nil
}

// minEncodedSize 计算类型编码后的最小字节数，用于 Vec 长度合理性检查
func minEncodedSize(t reflect.Type) int {
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return 1
	}
	switch t.Kind() {
	case reflect.Bool, reflect.Uint8, reflect.Int8, reflect.Pointer:
		return 1
	case reflect.Uint16, reflect.Int16:
		return 2
	case reflect.Uint32, reflect.Int32, reflect.Float32, reflect.String, reflect.Slice:
		return 4
	case reflect.Uint64, reflect.Int64, reflect.Float64:
		return 8
	case reflect.Array:
		return t.Len() * minEncodedSize(t.Elem())
	case reflect.Struct:
		size := 0
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Tag.Get("idl") == "-" {
				continue
			}
			size += minEncodedSize(f.Type)
		}
		return size
	default:
		return 1
	}
}
