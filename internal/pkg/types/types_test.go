package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkeyBase58RoundTrip(t *testing.T) {
	const wsol = "So11111111111111111111111111111111111111112"
	p, err := TryPubkeyFromBase58(wsol)
	require.NoError(t, err)
	assert.Equal(t, wsol, p.String())
	assert.False(t, p.IsZero())

	assert.True(t, Pubkey{}.IsZero())
	assert.Equal(t, "11111111111111111111111111111111", Pubkey{}.String(), "全 0 地址即 System Program")
}

func TestPubkeyInvalidInput(t *testing.T) {
	_, err := TryPubkeyFromBase58("0OIl")
	assert.Error(t, err, "非 base58 字符应报错")

	_, err = TryPubkeyFromBase58("3yZe7d")
	assert.ErrorContains(t, err, "invalid pubkey length")

	_, err = TryPubkeyFromBytes(make([]byte, 31))
	assert.ErrorContains(t, err, "got 31, want 32")

	assert.Panics(t, func() { PubkeyFromBase58("bad!") })
}

func TestPubkeyJSON(t *testing.T) {
	type wrapper struct {
		Mint Pubkey `json:"mint"`
	}
	in := wrapper{Mint: PubkeyFromBase58("4RfXFyiDSGvKukvz5yYFZ6qAD8MrvXrcvyW11xSfpump")}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mint":"4RfXFyiDSGvKukvz5yYFZ6qAD8MrvXrcvyW11xSfpump"}`, string(b))

	var out wrapper
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestSignature(t *testing.T) {
	_, err := SignatureFromBytes(make([]byte, 63))
	assert.Error(t, err)

	raw := make([]byte, 64)
	raw[0] = 1
	sig, err := SignatureFromBytes(raw)
	require.NoError(t, err)

	parsed, err := SignatureFromBase58(sig.String())
	require.NoError(t, err)
	assert.Equal(t, sig, parsed)
}
