package idl

import (
	"math/big"
)

// Uint128 表示小端序编码的 u128，常见于价格（sqrt_price_x64）与 PnL 字段
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Int128 与 Uint128 布局相同，按二进制补码解释
type Int128 Uint128

func (u Uint128) BigInt() *big.Int {
	hi := new(big.Int).SetUint64(u.Hi)
	hi.Lsh(hi, 64)
	return hi.Or(hi, new(big.Int).SetUint64(u.Lo))
}

// IsUint64 判断数值是否能无损转换为 uint64
func (u Uint128) IsUint64() bool {
	return u.Hi == 0
}

func (u Uint128) String() string {
	if u.Hi == 0 {
		return new(big.Int).SetUint64(u.Lo).String()
	}
	return u.BigInt().String()
}

// MarshalText 以十进制字符串输出，避免 JSON 数字精度丢失
func (u Uint128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (i Int128) BigInt() *big.Int {
	v := Uint128(i).BigInt()
	if int64(i.Hi) < 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return v
}

func (i Int128) String() string {
	return i.BigInt().String()
}

func (i Int128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// Uint128FromBig 将非负且不超过 128 位的整数转换为 Uint128，超出范围返回 false
func Uint128FromBig(v *big.Int) (Uint128, bool) {
	if v.Sign() < 0 || v.BitLen() > 128 {
		return Uint128{}, false
	}
	mask := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(v, mask).Uint64()
	hi := new(big.Int).Rsh(v, 64).Uint64()
	return Uint128{Lo: lo, Hi: hi}, true
}
