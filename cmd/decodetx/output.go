package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/zeromicro/go-zero/core/jsonx"
	"gopkg.in/yaml.v3"

	"dex-idl-sol/internal/logic/core"
	"dex-idl-sol/internal/logic/eventparser"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// dataResult 是 -data 模式的输出
type dataResult struct {
	Program       string                  `json:"program"`
	Kind          core.RecordKind         `json:"kind"`
	Name          string                  `json:"name,omitempty"`
	Discriminator idl.Discriminator       `json:"discriminator"`
	Unknown       bool                    `json:"unknown,omitempty"`
	Value         any                     `json:"value,omitempty"`
	Accounts      map[string]types.Pubkey `json:"accounts,omitempty"`
}

func decodeRaw(prog *eventparser.Program, data []byte, accounts []types.Pubkey) (*dataResult, error) {
	kind, ix, err := eventparser.DecodeData(prog, data, accounts)
	if err != nil {
		return nil, err
	}
	return &dataResult{
		Program:       prog.Name,
		Kind:          kind,
		Name:          ix.Name,
		Discriminator: ix.Discriminator,
		Unknown:       ix.Unknown,
		Value:         ix.Value,
		Accounts:      ix.Accounts.Map(),
	}, nil
}

// render 按 json tag 输出；yaml 先经 JSON 中转，保证字段名与 Kafka 记录一致
func render(v any, format string) ([]byte, error) {
	body, err := jsonx.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}

	switch strings.ToLower(format) {
	case outputJSON, "":
		var out bytes.Buffer
		if err := json.Indent(&out, body, "", "  "); err != nil {
			return nil, err
		}
		out.WriteByte('\n')
		return out.Bytes(), nil

	case outputYAML:
		var generic any
		if err := jsonx.Unmarshal(body, &generic); err != nil {
			return nil, fmt.Errorf("unmarshal json: %w", err)
		}
		return yaml.Marshal(normalizeNumbers(generic))

	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// normalizeNumbers 把 jsonx 解出的 json.Number 还原为整数或浮点，否则 yaml 会输出为字符串。
// 依次尝试 int64、uint64、float64，u64 不丢精度
func normalizeNumbers(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = normalizeNumbers(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = normalizeNumbers(e)
		}
		return x
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		if n, err := strconv.ParseUint(x.String(), 10, 64); err == nil {
			return n
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	default:
		return v
	}
}

func parseAccounts(s string) ([]types.Pubkey, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]types.Pubkey, 0, len(parts))
	for _, p := range parts {
		pk, err := types.TryPubkeyFromBase58(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", p, err)
		}
		out = append(out, pk)
	}
	return out, nil
}
