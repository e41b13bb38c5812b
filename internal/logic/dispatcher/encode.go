package dispatcher

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/zeromicro/go-zero/core/jsonx"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"dex-idl-sol/internal/logic/core"
)

// 记录编码格式，对应配置 kafka_producer.encoding
const (
	EncodingJSON     = "json"
	EncodingProtobuf = "protobuf"
)

const kindPrefixLen = 4

// maxExactFloat 是 float64 能精确表示的最大整数，超出的整数在 protobuf 中以字符串保存
const maxExactFloat = 1 << 53

// EncodeRecord 将记录编码为带类型前缀的二进制数据：
//   - 前 4 字节为 RecordKind（uint32，小端序）
//   - 后续为 JSON 或 protobuf（structpb.Value，确定性序列化）
func EncodeRecord(rec *core.Record, format string) ([]byte, error) {
	switch format {
	case EncodingJSON, "":
		body, err := jsonx.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("EncodeRecord: marshal json: %w", err)
		}
		return withKindPrefix(rec.Kind, body), nil

	case EncodingProtobuf:
		msg, err := recordToStruct(rec)
		if err != nil {
			return nil, err
		}
		buf := make([]byte, kindPrefixLen, kindPrefixLen+proto.Size(msg))
		binary.LittleEndian.PutUint32(buf, uint32(rec.Kind))
		out, err := proto.MarshalOptions{Deterministic: true}.MarshalAppend(buf, msg)
		if err != nil {
			return nil, fmt.Errorf("EncodeRecord: marshal protobuf: %w", err)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("EncodeRecord: unsupported encoding %q", format)
	}
}

// DecodeKindPrefix 读取 EncodeRecord 输出的类型前缀，返回类型与正文
func DecodeKindPrefix(b []byte) (core.RecordKind, []byte, error) {
	if len(b) < kindPrefixLen {
		return 0, nil, fmt.Errorf("DecodeKindPrefix: message too short (%d bytes)", len(b))
	}
	return core.RecordKind(binary.LittleEndian.Uint32(b)), b[kindPrefixLen:], nil
}

func withKindPrefix(kind core.RecordKind, body []byte) []byte {
	out := make([]byte, kindPrefixLen, kindPrefixLen+len(body))
	binary.LittleEndian.PutUint32(out, uint32(kind))
	return append(out, body...)
}

// recordToStruct 经 JSON 中转得到通用结构，字段名与 JSON 编码一致
func recordToStruct(rec *core.Record) (*structpb.Value, error) {
	body, err := jsonx.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("EncodeRecord: marshal json: %w", err)
	}
	var generic any
	if err := jsonx.Unmarshal(body, &generic); err != nil {
		return nil, fmt.Errorf("EncodeRecord: unmarshal json: %w", err)
	}
	return toStructValue(generic)
}

func toStructValue(v any) (*structpb.Value, error) {
	switch x := v.(type) {
	case nil:
		return structpb.NewNullValue(), nil
	case bool:
		return structpb.NewBoolValue(x), nil
	case string:
		return structpb.NewStringValue(x), nil
	case json.Number:
		return numberValue(x), nil
	case []any:
		list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(x))}
		for _, item := range x {
			iv, err := toStructValue(item)
			if err != nil {
				return nil, err
			}
			list.Values = append(list.Values, iv)
		}
		return structpb.NewListValue(list), nil
	case map[string]any:
		st := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(x))}
		for k, item := range x {
			iv, err := toStructValue(item)
			if err != nil {
				return nil, err
			}
			st.Fields[k] = iv
		}
		return structpb.NewStructValue(st), nil
	default:
		return nil, fmt.Errorf("EncodeRecord: unexpected json value %T", v)
	}
}

// numberValue u64 / i64 超出 2^53 时保留十进制字符串，避免精度丢失
func numberValue(n json.Number) *structpb.Value {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		if i > -maxExactFloat && i < maxExactFloat {
			return structpb.NewNumberValue(float64(i))
		}
		return structpb.NewStringValue(n.String())
	}
	if _, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return structpb.NewStringValue(n.String())
	}
	f, err := n.Float64()
	if err != nil || math.IsInf(f, 0) {
		return structpb.NewStringValue(n.String())
	}
	return structpb.NewNumberValue(f)
}
