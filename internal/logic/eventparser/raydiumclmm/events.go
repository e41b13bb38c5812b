package raydiumclmm

import (
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

type CollectPersonalFeeEventData struct {
	PositionNftMint        types.Pubkey `json:"position_nft_mint"`
	RecipientTokenAccount0 types.Pubkey `json:"recipient_token_account_0"`
	RecipientTokenAccount1 types.Pubkey `json:"recipient_token_account_1"`
	Amount0                uint64       `json:"amount_0"`
	Amount1                uint64       `json:"amount_1"`
}

type CollectProtocolFeeEventData struct {
	PoolState              types.Pubkey `json:"pool_state"`
	RecipientTokenAccount0 types.Pubkey `json:"recipient_token_account_0"`
	RecipientTokenAccount1 types.Pubkey `json:"recipient_token_account_1"`
	Amount0                uint64       `json:"amount_0"`
	Amount1                uint64       `json:"amount_1"`
}

type ConfigChangeEventData struct {
	Index           uint16       `json:"index"`
	Owner           types.Pubkey `json:"owner"`
	ProtocolFeeRate uint32       `json:"protocol_fee_rate"`
	TradeFeeRate    uint32       `json:"trade_fee_rate"`
	TickSpacing     uint16       `json:"tick_spacing"`
	FundFeeRate     uint32       `json:"fund_fee_rate"`
	FundOwner       types.Pubkey `json:"fund_owner"`
}

type CreatePersonalPositionEventData struct {
	PoolState                 types.Pubkey `json:"pool_state"`
	Minter                    types.Pubkey `json:"minter"`
	NftOwner                  types.Pubkey `json:"nft_owner"`
	TickLowerIndex            int32        `json:"tick_lower_index"`
	TickUpperIndex            int32        `json:"tick_upper_index"`
	Liquidity                 idl.Uint128  `json:"liquidity"`
	DepositAmount0            uint64       `json:"deposit_amount_0"`
	DepositAmount1            uint64       `json:"deposit_amount_1"`
	DepositAmount0TransferFee uint64       `json:"deposit_amount_0_transfer_fee"`
	DepositAmount1TransferFee uint64       `json:"deposit_amount_1_transfer_fee"`
}

type DecreaseLiquidityEventData struct {
	PositionNftMint types.Pubkey `json:"position_nft_mint"`
	Liquidity       idl.Uint128  `json:"liquidity"`
	DecreaseAmount0 uint64       `json:"decrease_amount_0"`
	DecreaseAmount1 uint64       `json:"decrease_amount_1"`
	FeeAmount0      uint64       `json:"fee_amount_0"`
	FeeAmount1      uint64       `json:"fee_amount_1"`
	RewardAmounts   [3]uint64    `json:"reward_amounts"`
	TransferFee0    uint64       `json:"transfer_fee_0"`
	TransferFee1    uint64       `json:"transfer_fee_1"`
}

type IncreaseLiquidityEventData struct {
	PositionNftMint    types.Pubkey `json:"position_nft_mint"`
	Liquidity          idl.Uint128  `json:"liquidity"`
	Amount0            uint64       `json:"amount_0"`
	Amount1            uint64       `json:"amount_1"`
	Amount0TransferFee uint64       `json:"amount_0_transfer_fee"`
	Amount1TransferFee uint64       `json:"amount_1_transfer_fee"`
}

type LiquidityCalculateEventData struct {
	PoolLiquidity    idl.Uint128 `json:"pool_liquidity"`
	PoolSqrtPriceX64 idl.Uint128 `json:"pool_sqrt_price_x64"`
	PoolTick         int32       `json:"pool_tick"`
	CalcAmount0      uint64      `json:"calc_amount_0"`
	CalcAmount1      uint64      `json:"calc_amount_1"`
	TradeFeeOwed0    uint64      `json:"trade_fee_owed_0"`
	TradeFeeOwed1    uint64      `json:"trade_fee_owed_1"`
	TransferFee0     uint64      `json:"transfer_fee_0"`
	TransferFee1     uint64      `json:"transfer_fee_1"`
}

type LiquidityChangeEventData struct {
	PoolState       types.Pubkey `json:"pool_state"`
	Tick            int32        `json:"tick"`
	TickLower       int32        `json:"tick_lower"`
	TickUpper       int32        `json:"tick_upper"`
	LiquidityBefore idl.Uint128  `json:"liquidity_before"`
	LiquidityAfter  idl.Uint128  `json:"liquidity_after"`
}

type PoolCreatedEventData struct {
	TokenMint0   types.Pubkey `json:"token_mint_0"`
	TokenMint1   types.Pubkey `json:"token_mint_1"`
	TickSpacing  uint16       `json:"tick_spacing"`
	PoolState    types.Pubkey `json:"pool_state"`
	SqrtPriceX64 idl.Uint128  `json:"sqrt_price_x64"`
	Tick         int32        `json:"tick"`
	TokenVault0  types.Pubkey `json:"token_vault_0"`
	TokenVault1  types.Pubkey `json:"token_vault_1"`
}

// SwapEventData ZeroForOne 为 true 时 token_0 流入池子、token_1 流出
type SwapEventData struct {
	PoolState     types.Pubkey `json:"pool_state"`
	Sender        types.Pubkey `json:"sender"`
	TokenAccount0 types.Pubkey `json:"token_account_0"`
	TokenAccount1 types.Pubkey `json:"token_account_1"`
	Amount0       uint64       `json:"amount_0"`
	TransferFee0  uint64       `json:"transfer_fee_0"`
	Amount1       uint64       `json:"amount_1"`
	TransferFee1  uint64       `json:"transfer_fee_1"`
	ZeroForOne    bool         `json:"zero_for_one"`
	SqrtPriceX64  idl.Uint128  `json:"sqrt_price_x64"`
	Liquidity     idl.Uint128  `json:"liquidity"`
	Tick          int32        `json:"tick"`
}

type UpdateRewardInfosEventData struct {
	RewardGrowthGlobalX64 [3]idl.Uint128 `json:"reward_growth_global_x64"`
}
