package orcawhirlpool

import (
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

type TradedEventData struct {
	Whirlpool         types.Pubkey `json:"whirlpool"`
	AToB              bool         `json:"a_to_b"`
	PreSqrtPrice      idl.Uint128  `json:"pre_sqrt_price"`
	PostSqrtPrice     idl.Uint128  `json:"post_sqrt_price"`
	InputAmount       uint64       `json:"input_amount"`
	OutputAmount      uint64       `json:"output_amount"`
	InputTransferFee  uint64       `json:"input_transfer_fee"`
	OutputTransferFee uint64       `json:"output_transfer_fee"`
	LpFee             uint64       `json:"lp_fee"`
	ProtocolFee       uint64       `json:"protocol_fee"`
}

// LiquidityEventData LiquidityIncreased 与 LiquidityDecreased 布局相同
type LiquidityEventData struct {
	Whirlpool         types.Pubkey `json:"whirlpool"`
	Position          types.Pubkey `json:"position"`
	TickLowerIndex    int32        `json:"tick_lower_index"`
	TickUpperIndex    int32        `json:"tick_upper_index"`
	Liquidity         idl.Uint128  `json:"liquidity"`
	TokenAAmount      uint64       `json:"token_a_amount"`
	TokenBAmount      uint64       `json:"token_b_amount"`
	TokenATransferFee uint64       `json:"token_a_transfer_fee"`
	TokenBTransferFee uint64       `json:"token_b_transfer_fee"`
}

type PoolInitializedEventData struct {
	Whirlpool        types.Pubkey `json:"whirlpool"`
	WhirlpoolsConfig types.Pubkey `json:"whirlpools_config"`
	TokenMintA       types.Pubkey `json:"token_mint_a"`
	TokenMintB       types.Pubkey `json:"token_mint_b"`
	TickSpacing      uint16       `json:"tick_spacing"`
	TokenProgramA    types.Pubkey `json:"token_program_a"`
	TokenProgramB    types.Pubkey `json:"token_program_b"`
	DecimalsA        uint8        `json:"decimals_a"`
	DecimalsB        uint8        `json:"decimals_b"`
	InitialSqrtPrice idl.Uint128  `json:"initial_sqrt_price"`
}
