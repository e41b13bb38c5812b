package raydiumcpmm

import "dex-idl-sol/internal/pkg/types"

// LpChangeEventData ChangeType: 0 = deposit, 1 = withdraw
type LpChangeEventData struct {
	PoolID            types.Pubkey `json:"pool_id"`
	LpAmountBefore    uint64       `json:"lp_amount_before"`
	Token0VaultBefore uint64       `json:"token_0_vault_before"`
	Token1VaultBefore uint64       `json:"token_1_vault_before"`
	Token0Amount      uint64       `json:"token_0_amount"`
	Token1Amount      uint64       `json:"token_1_amount"`
	Token0TransferFee uint64       `json:"token_0_transfer_fee"`
	Token1TransferFee uint64       `json:"token_1_transfer_fee"`
	ChangeType        uint8        `json:"change_type"`
}

// SwapEventV1 金额均为扣除转账费之前的计算结果
type SwapEventV1 struct {
	PoolID            types.Pubkey `json:"pool_id"`
	InputVaultBefore  uint64       `json:"input_vault_before"`
	OutputVaultBefore uint64       `json:"output_vault_before"`
	InputAmount       uint64       `json:"input_amount"`
	OutputAmount      uint64       `json:"output_amount"`
	InputTransferFee  uint64       `json:"input_transfer_fee"`
	OutputTransferFee uint64       `json:"output_transfer_fee"`
	BaseInput         bool         `json:"base_input"`
}

// SwapEventV2 在 V1 之后追加 mint、交易手续费与创建者手续费
type SwapEventV2 struct {
	SwapEventV1
	InputMint         types.Pubkey `json:"input_mint"`
	OutputMint        types.Pubkey `json:"output_mint"`
	TradeFee          uint64       `json:"trade_fee"`
	CreatorFee        uint64       `json:"creator_fee"`
	CreatorFeeOnInput bool         `json:"creator_fee_on_input"`
}
