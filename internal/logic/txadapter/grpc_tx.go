package txadapter

import (
	"fmt"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"

	"dex-idl-sol/internal/logic/core"
	"dex-idl-sol/internal/pkg/types"
)

// buildFullAccountKeys 构造交易中完整的账户 Pubkey 列表。
// 拼接 message.accountKeys 与 Address Lookup Table 中的 writable / readonly 地址，
// 顺序与链上 accountIndex 一致。
func buildFullAccountKeys(
	accountKeys, loadedWritable, loadedReadonly [][]byte,
) ([]types.Pubkey, error) {
	total := len(accountKeys) + len(loadedWritable) + len(loadedReadonly)
	pubkeys := make([]types.Pubkey, total)

	i := 0
	for _, part := range []struct {
		name string
		keys [][]byte
	}{
		{"accountKeys", accountKeys},
		{"loadedWritable", loadedWritable},
		{"loadedReadonly", loadedReadonly},
	} {
		for _, b := range part.keys {
			if len(b) != 32 {
				return nil, fmt.Errorf("invalid pubkey in %s at index %d: len=%d", part.name, i, len(b))
			}
			copy(pubkeys[i][:], b)
			i++
		}
	}
	return pubkeys, nil
}

// resolveAccounts 将指令中的账户下标映射为 Pubkey，下标越界返回错误
func resolveAccounts(indexes []byte, accountKeys []types.Pubkey) ([]types.Pubkey, error) {
	accounts := make([]types.Pubkey, len(indexes))
	for i, idx := range indexes {
		if int(idx) >= len(accountKeys) {
			return nil, fmt.Errorf("account index %d out of range (%d keys)", idx, len(accountKeys))
		}
		accounts[i] = accountKeys[idx]
	}
	return accounts, nil
}

func programAt(idx uint32, accountKeys []types.Pubkey) (types.Pubkey, error) {
	if int(idx) >= len(accountKeys) {
		return types.Pubkey{}, fmt.Errorf("program index %d out of range (%d keys)", idx, len(accountKeys))
	}
	return accountKeys[idx], nil
}

// buildAdaptedInstructions 扁平化解析主指令与 inner 指令，输出统一结构。
// 每条主指令与其 inner 指令将展开为多条 AdaptedInstruction：
//   - IxIndex：主指令索引；
//   - InnerIndex：0 表示主指令，1及以上表示对应的 inner 指令序号。
func buildAdaptedInstructions(
	tx *pb.SubscribeUpdateTransactionInfo,
	accountKeys []types.Pubkey,
) ([]*core.AdaptedInstruction, error) {
	rawInstructions := tx.Transaction.Message.Instructions
	rawInners := tx.Meta.InnerInstructions

	// 预分配容量：假设每条主指令平均含有 2 条 inner 指令，最低保留 32 条
	instructions := make([]*core.AdaptedInstruction, 0, max(len(rawInstructions)*2, 32))
	innerIndex := 0

	for i, inst := range rawInstructions {
		programID, err := programAt(inst.ProgramIdIndex, accountKeys)
		if err != nil {
			return nil, fmt.Errorf("ix %d: %w", i, err)
		}
		accounts, err := resolveAccounts(inst.Accounts, accountKeys)
		if err != nil {
			return nil, fmt.Errorf("ix %d: %w", i, err)
		}
		instructions = append(instructions, &core.AdaptedInstruction{
			IxIndex:    uint16(i),
			InnerIndex: 0,
			StackDepth: 1,
			ProgramID:  programID,
			Accounts:   accounts,
			Data:       inst.Data,
		})

		// inner 列表按主指令索引递增排列，每条主指令最多一个 inner 块，顺序匹配即可
		for innerIndex < len(rawInners) && int(rawInners[innerIndex].Index) < i {
			innerIndex++
		}
		if innerIndex < len(rawInners) && int(rawInners[innerIndex].Index) == i {
			for j, inner := range rawInners[innerIndex].Instructions {
				programID, err := programAt(inner.ProgramIdIndex, accountKeys)
				if err != nil {
					return nil, fmt.Errorf("ix %d inner %d: %w", i, j+1, err)
				}
				innerAccounts, err := resolveAccounts(inner.Accounts, accountKeys)
				if err != nil {
					return nil, fmt.Errorf("ix %d inner %d: %w", i, j+1, err)
				}
				var depth uint8
				if inner.StackHeight != nil {
					depth = uint8(*inner.StackHeight)
				}
				instructions = append(instructions, &core.AdaptedInstruction{
					IxIndex:    uint16(i),
					InnerIndex: uint16(j + 1),
					StackDepth: depth,
					ProgramID:  programID,
					Accounts:   innerAccounts,
					Data:       inner.Data,
				})
			}
			innerIndex++
		}
	}

	return instructions, nil
}

// AdaptGrpcTx 将 gRPC 推送的交易数据解析为内部 AdaptedTx 结构。
// 完整流程：
//  1. 构建 accountKeys（含 Address Lookup）；
//  2. 构建指令（主 + inner）；
//  3. 拷贝日志，返回 AdaptedTx；如 panic 会被 recover。
func AdaptGrpcTx(txCtx *core.TxContext, tx *pb.SubscribeUpdateTransactionInfo) (_ *core.AdaptedTx, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("AdaptGrpcTx panic: %v", r)
		}
	}()

	accountKeys, err := buildFullAccountKeys(
		tx.Transaction.Message.AccountKeys,
		tx.Meta.LoadedWritableAddresses,
		tx.Meta.LoadedReadonlyAddresses,
	)
	if err != nil {
		return nil, fmt.Errorf("buildFullAccountKeys error: %w", err)
	}

	// 基本健壮性校验：签名或账户列表为空时立即报错
	if len(tx.Transaction.Signatures) == 0 || len(accountKeys) == 0 {
		return nil, fmt.Errorf("invalid transaction: missing signature or accountKeys")
	}

	// 获取 signer 数量（前 N 个 accountKeys 视为 signer）
	signerCount := int(tx.Transaction.Message.Header.GetNumRequiredSignatures())
	if signerCount == 0 || len(accountKeys) < signerCount {
		return nil, fmt.Errorf("invalid signer count: %d", signerCount)
	}

	instructions, err := buildAdaptedInstructions(tx, accountKeys)
	if err != nil {
		return nil, fmt.Errorf("buildAdaptedInstructions error: %w", err)
	}

	signers := make([][]byte, signerCount)
	for i := 0; i < signerCount; i++ {
		signers[i] = accountKeys[i][:]
	}

	var logs []string
	if !tx.Meta.LogMessagesNone && len(tx.Meta.LogMessages) > 0 {
		logs = append(make([]string, 0, len(tx.Meta.LogMessages)), tx.Meta.LogMessages...)
	}

	return &core.AdaptedTx{
		TxCtx:        txCtx,
		TxIndex:      uint32(tx.Index),
		Signature:    tx.Transaction.Signatures[0],
		Signers:      signers,
		Instructions: instructions,
		LogMessages:  logs,
	}, nil
}

// IsValidGrpcTx 过滤不需要解码的交易
func IsValidGrpcTx(tx *pb.SubscribeUpdateTransactionInfo) bool {
	if tx == nil || // - nil transaction info
		tx.Transaction == nil || // - missing Transaction field
		tx.Transaction.Message == nil || // - missing Message field in transaction
		len(tx.Transaction.Signatures) == 0 || // - missing transaction signature
		len(tx.Transaction.Signatures[0]) != 64 || // - invalid transaction signature length
		tx.IsVote || // - vote transaction skipped
		tx.Meta == nil || // - missing transaction meta data
		tx.Meta.Err != nil { // - transaction execution failed
		return false
	}
	return true
}
