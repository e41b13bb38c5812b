package core

import (
	"dex-idl-sol/internal/pkg/types"
)

// TxContext 表示交易所属区块的上下文信息
type TxContext struct {
	BlockTime   int64      // 区块时间戳（Unix 秒）
	Slot        uint64     // 当前 Slot（Solana 高度单位）
	ParentSlot  uint64     // 父 Slot（用于分叉检测和回滚）
	BlockHeight uint64     // 区块高度（辅助比对）
	BlockHash   types.Hash // 区块哈希（辅助去重与 fork 检测）
}

// AdaptedInstruction 表示一条主指令或 inner 指令，来源于 message.instructions 或 innerInstructions。
// 所有指令在预处理阶段已展平，并补充了位置信息（IxIndex、InnerIndex），以支持顺序遍历与记录定位。
type AdaptedInstruction struct {
	IxIndex    uint16         // 主指令索引（从 0 开始）
	InnerIndex uint16         // Inner 指令在主指令中的序号，主指令本身为 0，CPI 调用从 1 开始
	StackDepth uint8          // 调用深度，主指令为 1；gRPC 老数据缺失时为 0
	ProgramID  types.Pubkey   // 指令对应的程序 ID
	Accounts   []types.Pubkey // 指令涉及的账户列表，保持原始顺序
	Data       []byte         // 指令原始数据（判别符 + 负载）
}

// AdaptedTx 表示已展平的链上交易结构，是解码流程的核心输入。
type AdaptedTx struct {
	TxCtx     *TxContext // 所属区块上下文
	TxIndex   uint32     // 当前交易在区块中的序号
	Signature []byte     // 交易签名（64 字节原始数据）
	Signers   [][]byte   // 交易签名者列表

	// Instructions 表示交易中的所有指令（包括主指令和 inner 指令），已按执行顺序展平。
	Instructions []*AdaptedInstruction

	// LogMessages 表示交易执行过程中产生的 Program 日志，"Program data:" 事件从这里提取
	LogMessages []string
}

// TxHash 返回 base58 形式的交易签名，用于日志与记录输出
func (tx *AdaptedTx) TxHash() string {
	sig, err := types.SignatureFromBytes(tx.Signature)
	if err != nil {
		return ""
	}
	return sig.String()
}
