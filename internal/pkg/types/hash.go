package types

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// Hash 表示 32 字节的区块哈希
type Hash [32]byte

func (h Hash) String() string {
	return base58.Encode(h[:])
}

func (h Hash) Equals(other Hash) bool {
	return h == other
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func HashFromBase58(s string) (Hash, error) {
	var h Hash
	data, err := base58.Decode(s)
	if err != nil {
		return h, fmt.Errorf("failed to decode base58 hash %q: %w", s, err)
	}
	if len(data) != len(h) {
		return h, fmt.Errorf("invalid hash length: got %d, want %d", len(data), len(h))
	}
	copy(h[:], data)
	return h, nil
}

// Signature 表示 64 字节的交易签名，同时作为交易哈希使用
type Signature [64]byte

func (s Signature) String() string {
	return base58.Encode(s[:])
}

func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// SignatureFromBytes 将 gRPC / RPC 返回的原始签名转换为 Signature
func SignatureFromBytes(b []byte) (Signature, error) {
	var s Signature
	if len(b) != len(s) {
		return s, fmt.Errorf("invalid signature length: got %d, want %d", len(b), len(s))
	}
	copy(s[:], b)
	return s, nil
}

func SignatureFromBase58(str string) (Signature, error) {
	data, err := base58.Decode(str)
	if err != nil {
		return Signature{}, fmt.Errorf("failed to decode base58 signature %q: %w", str, err)
	}
	return SignatureFromBytes(data)
}
