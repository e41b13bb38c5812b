package txadapter

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/client"
	sdktypes "github.com/blocto/solana-go-sdk/types"

	"dex-idl-sol/internal/logic/core"
	"dex-idl-sol/internal/pkg/types"
)

// AdaptRpcTx 将 JSON-RPC getTransaction 的结果转换为 AdaptedTx，展平规则与 AdaptGrpcTx 一致。
// RPC 结果不带 StackHeight，inner 指令的 StackDepth 为 0。
func AdaptRpcTx(tx *client.Transaction) (_ *core.AdaptedTx, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("AdaptRpcTx panic: %v", r)
		}
	}()

	if tx == nil || tx.Meta == nil {
		return nil, fmt.Errorf("invalid transaction: missing meta")
	}
	msg := tx.Transaction.Message
	if len(tx.Transaction.Signatures) == 0 || len(tx.Transaction.Signatures[0]) != 64 {
		return nil, fmt.Errorf("invalid transaction: missing signature")
	}

	accountKeys := make([]types.Pubkey, 0,
		len(msg.Accounts)+len(tx.Meta.LoadedAddresses.Writable)+len(tx.Meta.LoadedAddresses.Readonly))
	for _, k := range msg.Accounts {
		accountKeys = append(accountKeys, types.Pubkey(k))
	}
	for _, group := range [][]string{tx.Meta.LoadedAddresses.Writable, tx.Meta.LoadedAddresses.Readonly} {
		for _, s := range group {
			pk, err := types.TryPubkeyFromBase58(s)
			if err != nil {
				return nil, fmt.Errorf("invalid loaded address %q: %w", s, err)
			}
			accountKeys = append(accountKeys, pk)
		}
	}

	signerCount := int(msg.Header.NumRequireSignatures)
	if signerCount == 0 || len(accountKeys) < signerCount {
		return nil, fmt.Errorf("invalid signer count: %d", signerCount)
	}

	inners := make(map[uint64][]sdktypes.CompiledInstruction, len(tx.Meta.InnerInstructions))
	for _, inner := range tx.Meta.InnerInstructions {
		inners[inner.Index] = inner.Instructions
	}

	instructions := make([]*core.AdaptedInstruction, 0, max(len(msg.Instructions)*2, 32))
	for i, inst := range msg.Instructions {
		ix, err := adaptCompiled(inst, accountKeys)
		if err != nil {
			return nil, fmt.Errorf("ix %d: %w", i, err)
		}
		ix.IxIndex = uint16(i)
		ix.StackDepth = 1
		instructions = append(instructions, ix)

		for j, inner := range inners[uint64(i)] {
			innerIx, err := adaptCompiled(inner, accountKeys)
			if err != nil {
				return nil, fmt.Errorf("ix %d inner %d: %w", i, j+1, err)
			}
			innerIx.IxIndex = uint16(i)
			innerIx.InnerIndex = uint16(j + 1)
			instructions = append(instructions, innerIx)
		}
	}

	signers := make([][]byte, signerCount)
	for i := 0; i < signerCount; i++ {
		signers[i] = accountKeys[i][:]
	}

	txCtx := &core.TxContext{Slot: tx.Slot}
	if tx.BlockTime != nil {
		txCtx.BlockTime = *tx.BlockTime
	}

	return &core.AdaptedTx{
		TxCtx:        txCtx,
		Signature:    tx.Transaction.Signatures[0],
		Signers:      signers,
		Instructions: instructions,
		LogMessages:  tx.Meta.LogMessages,
	}, nil
}

func adaptCompiled(inst sdktypes.CompiledInstruction, accountKeys []types.Pubkey) (*core.AdaptedInstruction, error) {
	if inst.ProgramIDIndex < 0 || inst.ProgramIDIndex >= len(accountKeys) {
		return nil, fmt.Errorf("program index %d out of range (%d keys)", inst.ProgramIDIndex, len(accountKeys))
	}
	accounts := make([]types.Pubkey, len(inst.Accounts))
	for i, idx := range inst.Accounts {
		if idx < 0 || idx >= len(accountKeys) {
			return nil, fmt.Errorf("account index %d out of range (%d keys)", idx, len(accountKeys))
		}
		accounts[i] = accountKeys[idx]
	}
	return &core.AdaptedInstruction{
		ProgramID: accountKeys[inst.ProgramIDIndex],
		Accounts:  accounts,
		Data:      inst.Data,
	}, nil
}
