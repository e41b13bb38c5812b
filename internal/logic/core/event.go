package core

import (
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

// RecordKind 表示记录的来源
type RecordKind uint32

const (
	KindInstruction RecordKind = iota + 1 // 指令数据
	KindEvent                             // self-CPI 事件或 "Program data:" 日志
	KindLogEvent                          // "Program log: <prefix>" 日志，如 ray_log
)

func (k RecordKind) String() string {
	switch k {
	case KindInstruction:
		return "instruction"
	case KindEvent:
		return "event"
	case KindLogEvent:
		return "log_event"
	default:
		return "unknown"
	}
}

func (k RecordKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Record 是一条已解码的指令或事件，也是推送到 Kafka 的最小单位
type Record struct {
	ID            uint64                  `json:"id"`
	Slot          uint64                  `json:"slot"`
	BlockTime     int64                   `json:"block_time"`
	TxHash        string                  `json:"tx_hash"`
	IxIndex       uint16                  `json:"ix_index"`
	InnerIndex    uint16                  `json:"inner_index"`
	Program       string                  `json:"program"`
	ProgramID     types.Pubkey            `json:"program_id"`
	Kind          RecordKind              `json:"kind"`
	Name          string                  `json:"name,omitempty"`
	Discriminator idl.Discriminator       `json:"discriminator"`
	Value         any                     `json:"value,omitempty"`
	Accounts      map[string]types.Pubkey `json:"accounts,omitempty"`
	Unknown       bool                    `json:"unknown,omitempty"`
}

// BuildRecordID 构造 slot 内唯一的记录 ID（uint64），由以下字段组合而成：
//   - txIndex    (20 bits): 当前交易在区块中的序号
//   - ixIndex    (12 bits): 主指令序号
//   - innerIndex (16 bits): inner 指令序号，主指令为 0
//   - seq        (16 bits): 同一指令下的第几条记录（指令本身为 0，随后的日志事件从 1 开始）
//
// 编码结构：
//
//	[ 20 bits txIndex ] [ 12 bits ixIndex ] [ 16 bits innerIndex ] [ 16 bits seq ]
func BuildRecordID(txIndex uint32, ixIndex, innerIndex, seq uint16) uint64 {
	return uint64(txIndex&0xFFFFF)<<44 |
		uint64(ixIndex&0xFFF)<<32 |
		uint64(innerIndex)<<16 |
		uint64(seq)
}

// SplitRecordID 是 BuildRecordID 的逆运算
func SplitRecordID(id uint64) (txIndex uint32, ixIndex, innerIndex, seq uint16) {
	return uint32(id >> 44), uint16(id>>32) & 0xFFF, uint16(id >> 16), uint16(id)
}
