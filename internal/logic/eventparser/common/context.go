package common

import (
	"dex-idl-sol/internal/logic/core"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

// ParserContext 是单笔交易的解码上下文，随交易创建、随交易丢弃，不跨 goroutine 共享。
type ParserContext struct {
	Tx      *core.AdaptedTx // 已展平的交易
	TxHash  string          // base58 签名，日志与记录输出使用
	records []*core.Record
}

// BuildParserContext 构造单笔交易的解码上下文
func BuildParserContext(tx *core.AdaptedTx) *ParserContext {
	return &ParserContext{
		Tx:      tx,
		TxHash:  tx.TxHash(),
		records: make([]*core.Record, 0, len(tx.Instructions)),
	}
}

// NewRecord 用交易与指令位置信息填充一条记录的公共字段
func (ctx *ParserContext) NewRecord(
	prog *Program,
	ix *core.AdaptedInstruction,
	seq uint16,
	kind core.RecordKind,
	d idl.Decoded,
) *core.Record {
	rec := &core.Record{
		ID:            core.BuildRecordID(ctx.Tx.TxIndex, ix.IxIndex, ix.InnerIndex, seq),
		TxHash:        ctx.TxHash,
		IxIndex:       ix.IxIndex,
		InnerIndex:    ix.InnerIndex,
		Program:       prog.Name,
		ProgramID:     prog.ID,
		Kind:          kind,
		Name:          d.Name,
		Discriminator: d.Discriminator,
		Value:         d.Value,
		Unknown:       d.Unknown,
	}
	if ctx.Tx.TxCtx != nil {
		rec.Slot = ctx.Tx.TxCtx.Slot
		rec.BlockTime = ctx.Tx.TxCtx.BlockTime
	}
	return rec
}

// AddRecord 追加一条记录，保持执行顺序
func (ctx *ParserContext) AddRecord(rec *core.Record, accounts idl.NamedAccounts) {
	if m := accounts.Map(); len(m) > 0 {
		rec.Accounts = m
	}
	ctx.records = append(ctx.records, rec)
}

// TakeRecords 取出已解码的记录，调用后上下文不再持有它们
func (ctx *ParserContext) TakeRecords() []*core.Record {
	out := ctx.records
	ctx.records = nil
	return out
}

// Signer 返回交易的第一个签名者（fee payer），不存在时返回零值
func (ctx *ParserContext) Signer() types.Pubkey {
	if len(ctx.Tx.Signers) == 0 {
		return types.Pubkey{}
	}
	p, _ := types.TryPubkeyFromBytes(ctx.Tx.Signers[0])
	return p
}
