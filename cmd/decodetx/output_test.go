package main

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/core"
	"dex-idl-sol/internal/logic/eventparser"
)

// https://solscan.io/tx/5xQncr8APuvFEzZVnBDJf7BKdFB5MRQ4nFpmCPZxUgqriAn4gLUHhRe6hXwiEsqxWCmATHQraV7Rx6E7gci2CAP
const jupSwapEventHex = "e445a52e51cb9a1d40c6cde8260871e20c14defc825ec67694250818bb654065f4298d3156d571b4d4f8090c18e9a863fd51dc4c913e7ca8e73cd3cbb45769ac41aaade3696540dcf482a5fe57383a8f28cac2eb06000000069b8857feab8184fb687f634618c035dac439dc1aeb3b5598a0f000000000019bdc520300000000"

func newParser(t *testing.T) *eventparser.Parser {
	t.Helper()
	p, err := eventparser.NewDefaultParser(nil)
	require.NoError(t, err)
	return p
}

func TestDecodeRawEvent(t *testing.T) {
	parser := newParser(t)
	res, err := decodeData(parser, consts.ProtocolJupiterV6, jupSwapEventHex, "")
	require.NoError(t, err)

	dr := res.(*dataResult)
	assert.Equal(t, core.KindEvent, dr.Kind)
	assert.Equal(t, "swap_event", dr.Name)

	out, err := render(dr, outputJSON)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"input_amount": 29725215272`)
	assert.Contains(t, string(out), `"kind": "event"`)

	out, err = render(dr, outputYAML)
	require.NoError(t, err)
	var generic map[string]any
	require.NoError(t, yaml.Unmarshal(out, &generic))
	assert.Equal(t, "swap_event", generic["name"])
	assert.Equal(t, "jupiterv6", generic["program"])
	value := generic["value"].(map[string]any)
	assert.Equal(t, 29725215272, value["input_amount"])
	assert.Equal(t, consts.WSOLMintStr, value["output_mint"])
}

func TestDecodeRawInstructionWithAccounts(t *testing.T) {
	parser := newParser(t)
	data := hex.EncodeToString([]byte{3, 0xe8, 0x03, 0, 0, 0, 0, 0, 0})
	accs := consts.WSOLMintStr + "," + consts.SystemProgramStr + ", " + consts.TokenProgramStr

	res, err := decodeData(parser, consts.ProtocolSPLToken, "0x"+data, accs)
	require.NoError(t, err)
	dr := res.(*dataResult)
	assert.Equal(t, core.KindInstruction, dr.Kind)
	assert.Equal(t, "transfer", dr.Name)
	assert.Equal(t, consts.TokenProgram, dr.Accounts["authority"])
}

func TestDecodeDataErrors(t *testing.T) {
	parser := newParser(t)

	_, err := decodeData(parser, "uniswap", "00", "")
	assert.ErrorContains(t, err, "unknown or disabled protocol")

	_, err = decodeData(parser, consts.ProtocolPumpfun, "zz", "")
	assert.ErrorContains(t, err, "decode hex")

	_, err = decodeData(parser, consts.ProtocolPumpfun, "", "")
	assert.ErrorContains(t, err, "empty data")

	_, err = decodeData(parser, consts.ProtocolSPLToken, "03e8", "not-base58!")
	assert.ErrorContains(t, err, "not-base58!")
}

func TestRenderUnsupportedFormat(t *testing.T) {
	_, err := render(map[string]int{"a": 1}, "toml")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestRenderYAMLKeepsIntegers(t *testing.T) {
	v := map[string]any{
		"max_u64": uint64(math.MaxUint64),
		"big":     uint64(1<<53 + 1),
		"neg":     int64(-511),
		"price":   1.5,
		"list":    []uint64{1, 29725215272},
	}
	out, err := render(v, outputYAML)
	require.NoError(t, err)
	assert.Contains(t, string(out), "max_u64: 18446744073709551615\n")
	assert.Contains(t, string(out), "big: 9007199254740993\n")
	assert.NotContains(t, string(out), `"`, "数值不应被加引号")

	var generic map[string]any
	require.NoError(t, yaml.Unmarshal(out, &generic))
	assert.Equal(t, uint64(math.MaxUint64), generic["max_u64"])
	assert.Equal(t, 9007199254740993, generic["big"])
	assert.Equal(t, -511, generic["neg"])
	assert.Equal(t, 1.5, generic["price"])
	assert.Equal(t, []any{1, 29725215272}, generic["list"])
}
