package raydiumclmm

import (
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

// 来源：https://github.com/raydium-io/raydium-clmm/tree/master/programs/amm/src/instructions

type EmptyArgs struct{}

type AmountsRequestedArgs struct {
	Amount0Requested uint64 `json:"amount_0_requested"`
	Amount1Requested uint64 `json:"amount_1_requested"`
}

type CollectRemainingRewardsArgs struct {
	RewardIndex uint8 `json:"reward_index"`
}

type CreateAmmConfigArgs struct {
	Index           uint16 `json:"index"`
	TickSpacing     uint16 `json:"tick_spacing"`
	TradeFeeRate    uint32 `json:"trade_fee_rate"`
	ProtocolFeeRate uint32 `json:"protocol_fee_rate"`
	FundFeeRate     uint32 `json:"fund_fee_rate"`
}

type CreatePoolArgs struct {
	SqrtPriceX64 idl.Uint128 `json:"sqrt_price_x64"`
	OpenTime     uint64      `json:"open_time"`
}

// DecreaseLiquidityArgs decrease_liquidity 与 decrease_liquidity_v2 共用
type DecreaseLiquidityArgs struct {
	Liquidity  idl.Uint128 `json:"liquidity"`
	Amount0Min uint64      `json:"amount_0_min"`
	Amount1Min uint64      `json:"amount_1_min"`
}

type IncreaseLiquidityArgs struct {
	Liquidity  idl.Uint128 `json:"liquidity"`
	Amount0Max uint64      `json:"amount_0_max"`
	Amount1Max uint64      `json:"amount_1_max"`
}

type IncreaseLiquidityV2Args struct {
	IncreaseLiquidityArgs
	BaseFlag *bool `json:"base_flag,omitempty"`
}

type InitializeRewardArgs struct {
	OpenTime              uint64      `json:"open_time"`
	EndTime               uint64      `json:"end_time"`
	EmissionsPerSecondX64 idl.Uint128 `json:"emissions_per_second_x64"`
}

type OpenPositionArgs struct {
	TickLowerIndex           int32       `json:"tick_lower_index"`
	TickUpperIndex           int32       `json:"tick_upper_index"`
	TickArrayLowerStartIndex int32       `json:"tick_array_lower_start_index"`
	TickArrayUpperStartIndex int32       `json:"tick_array_upper_start_index"`
	Liquidity                idl.Uint128 `json:"liquidity"`
	Amount0Max               uint64      `json:"amount_0_max"`
	Amount1Max               uint64      `json:"amount_1_max"`
}

// OpenPositionV2Args open_position_v2 与 open_position_with_token22_nft 共用
type OpenPositionV2Args struct {
	OpenPositionArgs
	WithMetadata bool  `json:"with_metadata"`
	BaseFlag     *bool `json:"base_flag,omitempty"`
}

type SetRewardParamsArgs struct {
	RewardIndex           uint8       `json:"reward_index"`
	EmissionsPerSecondX64 idl.Uint128 `json:"emissions_per_second_x64"`
	OpenTime              uint64      `json:"open_time"`
	EndTime               uint64      `json:"end_time"`
}

// SwapArgs swap 与 swap_v2 共用；SqrtPriceLimitX64 为 Q64.64 价格上/下限
type SwapArgs struct {
	Amount               uint64      `json:"amount"`
	OtherAmountThreshold uint64      `json:"other_amount_threshold"`
	SqrtPriceLimitX64    idl.Uint128 `json:"sqrt_price_limit_x64"`
	IsBaseInput          bool        `json:"is_base_input"`
}

type SwapRouterBaseInArgs struct {
	AmountIn         uint64 `json:"amount_in"`
	AmountOutMinimum uint64 `json:"amount_out_minimum"`
}

type TransferRewardOwnerArgs struct {
	NewOwner types.Pubkey `json:"new_owner"`
}

type UpdateAmmConfigArgs struct {
	Param uint8  `json:"param"`
	Value uint32 `json:"value"`
}

type UpdateOperationAccountArgs struct {
	Param uint8          `json:"param"`
	Keys  []types.Pubkey `json:"keys"`
}

type UpdatePoolStatusArgs struct {
	Status uint8 `json:"status"`
}

var swapAccounts = idl.MustAccountSchema("swap",
	idl.Required(0, "payer"),
	idl.Required(1, "amm_config"),
	idl.Required(2, "pool_state"),
	idl.Required(3, "input_token_account"),
	idl.Required(4, "output_token_account"),
	idl.Required(5, "input_vault"),
	idl.Required(6, "output_vault"),
	idl.Required(7, "observation_state"),
	idl.Required(8, "token_program"),
	idl.Required(9, "tick_array"),
)

// swap_v2 之后的 remaining accounts 为 tick array，不做命名
var swapV2Accounts = idl.MustAccountSchema("swap_v2",
	idl.Required(0, "payer"),
	idl.Required(1, "amm_config"),
	idl.Required(2, "pool_state"),
	idl.Required(3, "input_token_account"),
	idl.Required(4, "output_token_account"),
	idl.Required(5, "input_vault"),
	idl.Required(6, "output_vault"),
	idl.Required(7, "observation_state"),
	idl.Required(8, "token_program"),
	idl.Required(9, "token_program_2022"),
	idl.Required(10, "memo_program"),
	idl.Required(11, "input_vault_mint"),
	idl.Required(12, "output_vault_mint"),
)

var swapRouterBaseInAccounts = idl.MustAccountSchema("swap_router_base_in",
	idl.Required(0, "payer"),
	idl.Required(1, "input_token_account"),
	idl.Required(2, "input_token_mint"),
	idl.Required(3, "token_program"),
	idl.Required(4, "token_program_2022"),
	idl.Required(5, "memo_program"),
)

var createPoolAccounts = idl.MustAccountSchema("create_pool",
	idl.Required(0, "pool_creator"),
	idl.Required(1, "amm_config"),
	idl.Required(2, "pool_state"),
	idl.Required(3, "token_mint_0"),
	idl.Required(4, "token_mint_1"),
	idl.Required(5, "token_vault_0"),
	idl.Required(6, "token_vault_1"),
	idl.Required(7, "observation_state"),
	idl.Required(8, "tick_array_bitmap"),
	idl.Required(9, "token_program_0"),
	idl.Required(10, "token_program_1"),
	idl.Required(11, "system_program"),
	idl.Required(12, "rent"),
)

var increaseLiquidityV2Accounts = idl.MustAccountSchema("increase_liquidity_v2",
	idl.Required(0, "nft_owner"),
	idl.Required(1, "nft_account"),
	idl.Required(2, "pool_state"),
	idl.Required(3, "protocol_position"),
	idl.Required(4, "personal_position"),
	idl.Required(5, "tick_array_lower"),
	idl.Required(6, "tick_array_upper"),
	idl.Required(7, "token_account_0"),
	idl.Required(8, "token_account_1"),
	idl.Required(9, "token_vault_0"),
	idl.Required(10, "token_vault_1"),
	idl.Required(11, "token_program"),
	idl.Required(12, "token_program_2022"),
	idl.Required(13, "vault_0_mint"),
	idl.Required(14, "vault_1_mint"),
)

var decreaseLiquidityV2Accounts = idl.MustAccountSchema("decrease_liquidity_v2",
	idl.Required(0, "nft_owner"),
	idl.Required(1, "nft_account"),
	idl.Required(2, "personal_position"),
	idl.Required(3, "pool_state"),
	idl.Required(4, "protocol_position"),
	idl.Required(5, "token_vault_0"),
	idl.Required(6, "token_vault_1"),
	idl.Required(7, "tick_array_lower"),
	idl.Required(8, "tick_array_upper"),
	idl.Required(9, "recipient_token_account_0"),
	idl.Required(10, "recipient_token_account_1"),
	idl.Required(11, "token_program"),
	idl.Required(12, "token_program_2022"),
	idl.Required(13, "memo_program"),
	idl.Required(14, "vault_0_mint"),
	idl.Required(15, "vault_1_mint"),
)
