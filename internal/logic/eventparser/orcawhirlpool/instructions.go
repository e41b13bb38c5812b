package orcawhirlpool

import (
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

// 来源：https://github.com/orca-so/whirlpools/tree/main/programs/whirlpool/src/instructions

type EmptyArgs struct{}

// RemainingAccountsSlice.AccountsType 取值 0~8：
// TransferHookA/B/Reward/Input/Intermediate/Output、SupplementalTickArrays(One/Two)
type RemainingAccountsSlice struct {
	AccountsType uint8 `json:"accounts_type" idl:"enum=9"`
	Length       uint8 `json:"length"`
}

type RemainingAccountsInfo struct {
	Slices []RemainingAccountsSlice `json:"slices"`
}

// ---------- swap ----------

type SwapArgs struct {
	Amount                 uint64      `json:"amount"`
	OtherAmountThreshold   uint64      `json:"other_amount_threshold"`
	SqrtPriceLimit         idl.Uint128 `json:"sqrt_price_limit"`
	AmountSpecifiedIsInput bool        `json:"amount_specified_is_input"`
	AToB                   bool        `json:"a_to_b"`
}

type SwapV2Args struct {
	SwapArgs
	RemainingAccountsInfo *RemainingAccountsInfo `json:"remaining_accounts_info,omitempty"`
}

type TwoHopSwapArgs struct {
	Amount                 uint64      `json:"amount"`
	OtherAmountThreshold   uint64      `json:"other_amount_threshold"`
	AmountSpecifiedIsInput bool        `json:"amount_specified_is_input"`
	AToBOne                bool        `json:"a_to_b_one"`
	AToBTwo                bool        `json:"a_to_b_two"`
	SqrtPriceLimitOne      idl.Uint128 `json:"sqrt_price_limit_one"`
	SqrtPriceLimitTwo      idl.Uint128 `json:"sqrt_price_limit_two"`
}

type TwoHopSwapV2Args struct {
	TwoHopSwapArgs
	RemainingAccountsInfo *RemainingAccountsInfo `json:"remaining_accounts_info,omitempty"`
}

// ---------- 池子 / 配置 ----------

type InitializeConfigArgs struct {
	FeeAuthority                  types.Pubkey `json:"fee_authority"`
	CollectProtocolFeesAuthority  types.Pubkey `json:"collect_protocol_fees_authority"`
	RewardEmissionsSuperAuthority types.Pubkey `json:"reward_emissions_super_authority"`
	DefaultProtocolFeeRate        uint16       `json:"default_protocol_fee_rate"`
}

type InitializePoolArgs struct {
	WhirlpoolBump    uint8       `json:"whirlpool_bump"`
	TickSpacing      uint16      `json:"tick_spacing"`
	InitialSqrtPrice idl.Uint128 `json:"initial_sqrt_price"`
}

type InitializePoolV2Args struct {
	TickSpacing      uint16      `json:"tick_spacing"`
	InitialSqrtPrice idl.Uint128 `json:"initial_sqrt_price"`
}

type InitializePoolWithAdaptiveFeeArgs struct {
	InitialSqrtPrice     idl.Uint128 `json:"initial_sqrt_price"`
	TradeEnableTimestamp *uint64     `json:"trade_enable_timestamp,omitempty"`
}

type InitializeTickArrayArgs struct {
	StartTickIndex int32 `json:"start_tick_index"`
}

type InitializeFeeTierArgs struct {
	TickSpacing    uint16 `json:"tick_spacing"`
	DefaultFeeRate uint16 `json:"default_fee_rate"`
}

// FeeRateArgs set_default_fee_rate / set_default_protocol_fee_rate / set_fee_rate /
// set_protocol_fee_rate / set_default_base_fee_rate 等只带一个 u16 费率的指令共用
type FeeRateArgs struct {
	FeeRate uint16 `json:"fee_rate"`
}

// ---------- 奖励 ----------

// RewardIndexArgs initialize_reward* / collect_reward / set_reward_authority* 共用
type RewardIndexArgs struct {
	RewardIndex uint8 `json:"reward_index"`
}

type CollectRewardV2Args struct {
	RewardIndex           uint8                  `json:"reward_index"`
	RemainingAccountsInfo *RemainingAccountsInfo `json:"remaining_accounts_info,omitempty"`
}

type SetRewardEmissionsArgs struct {
	RewardIndex           uint8       `json:"reward_index"`
	EmissionsPerSecondX64 idl.Uint128 `json:"emissions_per_second_x64"`
}

// CollectV2Args collect_fees_v2 与 collect_protocol_fees_v2 共用
type CollectV2Args struct {
	RemainingAccountsInfo *RemainingAccountsInfo `json:"remaining_accounts_info,omitempty"`
}

// ---------- 头寸 ----------

type OpenPositionArgs struct {
	PositionBump   uint8 `json:"position_bump"`
	TickLowerIndex int32 `json:"tick_lower_index"`
	TickUpperIndex int32 `json:"tick_upper_index"`
}

type OpenPositionWithMetadataArgs struct {
	PositionBump   uint8 `json:"position_bump"`
	MetadataBump   uint8 `json:"metadata_bump"`
	TickLowerIndex int32 `json:"tick_lower_index"`
	TickUpperIndex int32 `json:"tick_upper_index"`
}

type OpenPositionWithTokenExtensionsArgs struct {
	TickLowerIndex             int32 `json:"tick_lower_index"`
	TickUpperIndex             int32 `json:"tick_upper_index"`
	WithTokenMetadataExtension bool  `json:"with_token_metadata_extension"`
}

type OpenBundledPositionArgs struct {
	BundleIndex    uint16 `json:"bundle_index"`
	TickLowerIndex int32  `json:"tick_lower_index"`
	TickUpperIndex int32  `json:"tick_upper_index"`
}

type CloseBundledPositionArgs struct {
	BundleIndex uint16 `json:"bundle_index"`
}

// LockPositionArgs.LockType 目前只有 Permanent 一个变体
type LockPositionArgs struct {
	LockType uint8 `json:"lock_type" idl:"enum=1"`
}

type ResetPositionRangeArgs struct {
	NewTickLowerIndex int32 `json:"new_tick_lower_index"`
	NewTickUpperIndex int32 `json:"new_tick_upper_index"`
}

// ---------- 流动性 ----------

type IncreaseLiquidityArgs struct {
	LiquidityAmount idl.Uint128 `json:"liquidity_amount"`
	TokenMaxA       uint64      `json:"token_max_a"`
	TokenMaxB       uint64      `json:"token_max_b"`
}

type IncreaseLiquidityV2Args struct {
	IncreaseLiquidityArgs
	RemainingAccountsInfo *RemainingAccountsInfo `json:"remaining_accounts_info,omitempty"`
}

type DecreaseLiquidityArgs struct {
	LiquidityAmount idl.Uint128 `json:"liquidity_amount"`
	TokenMinA       uint64      `json:"token_min_a"`
	TokenMinB       uint64      `json:"token_min_b"`
}

type DecreaseLiquidityV2Args struct {
	DecreaseLiquidityArgs
	RemainingAccountsInfo *RemainingAccountsInfo `json:"remaining_accounts_info,omitempty"`
}

// ---------- 账户布局 ----------

type SwapAccounts struct {
	TokenProgram       types.Pubkey `account:"0,token_program"`
	TokenAuthority     types.Pubkey `account:"1,token_authority"`
	Whirlpool          types.Pubkey `account:"2,whirlpool"`
	TokenOwnerAccountA types.Pubkey `account:"3,token_owner_account_a"`
	TokenVaultA        types.Pubkey `account:"4,token_vault_a"`
	TokenOwnerAccountB types.Pubkey `account:"5,token_owner_account_b"`
	TokenVaultB        types.Pubkey `account:"6,token_vault_b"`
	TickArray0         types.Pubkey `account:"7,tick_array_0"`
	TickArray1         types.Pubkey `account:"8,tick_array_1"`
	TickArray2         types.Pubkey `account:"9,tick_array_2"`
	Oracle             types.Pubkey `account:"10,oracle"`
}

type SwapV2Accounts struct {
	TokenProgramA      types.Pubkey `account:"0,token_program_a"`
	TokenProgramB      types.Pubkey `account:"1,token_program_b"`
	MemoProgram        types.Pubkey `account:"2,memo_program"`
	TokenAuthority     types.Pubkey `account:"3,token_authority"`
	Whirlpool          types.Pubkey `account:"4,whirlpool"`
	TokenMintA         types.Pubkey `account:"5,token_mint_a"`
	TokenMintB         types.Pubkey `account:"6,token_mint_b"`
	TokenOwnerAccountA types.Pubkey `account:"7,token_owner_account_a"`
	TokenVaultA        types.Pubkey `account:"8,token_vault_a"`
	TokenOwnerAccountB types.Pubkey `account:"9,token_owner_account_b"`
	TokenVaultB        types.Pubkey `account:"10,token_vault_b"`
	TickArray0         types.Pubkey `account:"11,tick_array_0"`
	TickArray1         types.Pubkey `account:"12,tick_array_1"`
	TickArray2         types.Pubkey `account:"13,tick_array_2"`
	Oracle             types.Pubkey `account:"14,oracle"`
}

type InitializePoolAccounts struct {
	WhirlpoolsConfig types.Pubkey `account:"0,whirlpools_config"`
	TokenMintA       types.Pubkey `account:"1,token_mint_a"`
	TokenMintB       types.Pubkey `account:"2,token_mint_b"`
	Funder           types.Pubkey `account:"3,funder"`
	Whirlpool        types.Pubkey `account:"4,whirlpool"`
	TokenVaultA      types.Pubkey `account:"5,token_vault_a"`
	TokenVaultB      types.Pubkey `account:"6,token_vault_b"`
	FeeTier          types.Pubkey `account:"7,fee_tier"`
	TokenProgram     types.Pubkey `account:"8,token_program"`
}

type InitializePoolV2Accounts struct {
	WhirlpoolsConfig types.Pubkey `account:"0,whirlpools_config"`
	TokenMintA       types.Pubkey `account:"1,token_mint_a"`
	TokenMintB       types.Pubkey `account:"2,token_mint_b"`
	TokenBadgeA      types.Pubkey `account:"3,token_badge_a"`
	TokenBadgeB      types.Pubkey `account:"4,token_badge_b"`
	Funder           types.Pubkey `account:"5,funder"`
	Whirlpool        types.Pubkey `account:"6,whirlpool"`
	TokenVaultA      types.Pubkey `account:"7,token_vault_a"`
	TokenVaultB      types.Pubkey `account:"8,token_vault_b"`
	FeeTier          types.Pubkey `account:"9,fee_tier"`
	TokenProgramA    types.Pubkey `account:"10,token_program_a"`
	TokenProgramB    types.Pubkey `account:"11,token_program_b"`
}

// LiquidityAccounts increase_liquidity 与 decrease_liquidity 共用
type LiquidityAccounts struct {
	Whirlpool            types.Pubkey `account:"0,whirlpool"`
	TokenProgram         types.Pubkey `account:"1,token_program"`
	PositionAuthority    types.Pubkey `account:"2,position_authority"`
	Position             types.Pubkey `account:"3,position"`
	PositionTokenAccount types.Pubkey `account:"4,position_token_account"`
	TokenOwnerAccountA   types.Pubkey `account:"5,token_owner_account_a"`
	TokenOwnerAccountB   types.Pubkey `account:"6,token_owner_account_b"`
	TokenVaultA          types.Pubkey `account:"7,token_vault_a"`
	TokenVaultB          types.Pubkey `account:"8,token_vault_b"`
	TickArrayLower       types.Pubkey `account:"9,tick_array_lower"`
	TickArrayUpper       types.Pubkey `account:"10,tick_array_upper"`
}

type LiquidityV2Accounts struct {
	Whirlpool            types.Pubkey `account:"0,whirlpool"`
	TokenProgramA        types.Pubkey `account:"1,token_program_a"`
	TokenProgramB        types.Pubkey `account:"2,token_program_b"`
	MemoProgram          types.Pubkey `account:"3,memo_program"`
	PositionAuthority    types.Pubkey `account:"4,position_authority"`
	Position             types.Pubkey `account:"5,position"`
	PositionTokenAccount types.Pubkey `account:"6,position_token_account"`
	TokenMintA           types.Pubkey `account:"7,token_mint_a"`
	TokenMintB           types.Pubkey `account:"8,token_mint_b"`
	TokenOwnerAccountA   types.Pubkey `account:"9,token_owner_account_a"`
	TokenOwnerAccountB   types.Pubkey `account:"10,token_owner_account_b"`
	TokenVaultA          types.Pubkey `account:"11,token_vault_a"`
	TokenVaultB          types.Pubkey `account:"12,token_vault_b"`
	TickArrayLower       types.Pubkey `account:"13,tick_array_lower"`
	TickArrayUpper       types.Pubkey `account:"14,tick_array_upper"`
}
