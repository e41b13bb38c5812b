package orcawhirlpool

import (
	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

const (
	// Swap 系列
	Swap  uint64 = 0xf8c69e91e17587c8
	Swap2 uint64 = 0x2b04ed0b1ac91e62

	// Create Pool
	InitializePool   uint64 = 0x5fb40aac54aee828
	InitializePoolV2 uint64 = 0xcf2d57f21b3fcc43

	// 添加流动性
	IncreaseLiquidity   uint64 = 0x2e9cf3760dcdfbb2
	IncreaseLiquidityV2 uint64 = 0x851d59df45eeb00a

	// 移除流动性
	DecreaseLiquidity   uint64 = 0xa026d06f685b2c01
	DecreaseLiquidityV2 uint64 = 0x3a7fbc3e4f52c460

	TradedEvent uint64 = 0xe1ca49af932ba096
)

var (
	swapAccounts             = idl.MustSchemaOf[SwapAccounts]()
	swapV2Accounts           = idl.MustSchemaOf[SwapV2Accounts]()
	initializePoolAccounts   = idl.MustSchemaOf[InitializePoolAccounts]()
	initializePoolV2Accounts = idl.MustSchemaOf[InitializePoolV2Accounts]()
	liquidityAccounts        = idl.MustSchemaOf[LiquidityAccounts]()
	liquidityV2Accounts      = idl.MustSchemaOf[LiquidityV2Accounts]()
)

func ix(name string, decode idl.PayloadFunc, accounts *idl.AccountSchema) idl.Entry {
	return idl.Entry{
		Name:          name,
		Discriminator: idl.AnchorInstruction(name),
		Decode:        decode,
		Accounts:      accounts,
	}
}

func event(name, typeName string, decode idl.PayloadFunc) idl.Entry {
	return idl.Entry{
		Name:          name,
		Discriminator: idl.AnchorEvent(typeName),
		Decode:        decode,
	}
}

var Instructions = idl.MustNewRegistry(consts.ProtocolOrcaWhirlpool, idl.LayoutTag8,
	ix("swap", idl.Payload[SwapArgs](), swapAccounts),
	ix("swap_v2", idl.Payload[SwapV2Args](), swapV2Accounts),
	ix("two_hop_swap", idl.Payload[TwoHopSwapArgs](), nil),
	ix("two_hop_swap_v2", idl.Payload[TwoHopSwapV2Args](), nil),

	ix("initialize_config", idl.Payload[InitializeConfigArgs](), nil),
	ix("initialize_pool", idl.Payload[InitializePoolArgs](), initializePoolAccounts),
	ix("initialize_pool_v2", idl.Payload[InitializePoolV2Args](), initializePoolV2Accounts),
	ix("initialize_pool_with_adaptive_fee", idl.Payload[InitializePoolWithAdaptiveFeeArgs](), nil),
	ix("initialize_tick_array", idl.Payload[InitializeTickArrayArgs](), nil),
	ix("initialize_fee_tier", idl.Payload[InitializeFeeTierArgs](), nil),
	ix("set_default_fee_rate", idl.Payload[FeeRateArgs](), nil),
	ix("set_default_protocol_fee_rate", idl.Payload[FeeRateArgs](), nil),
	ix("set_default_base_fee_rate", idl.Payload[FeeRateArgs](), nil),
	ix("set_fee_rate", idl.Payload[FeeRateArgs](), nil),
	ix("set_protocol_fee_rate", idl.Payload[FeeRateArgs](), nil),
	ix("set_fee_rate_by_delegated_fee_authority", idl.Payload[FeeRateArgs](), nil),
	ix("set_fee_authority", idl.Payload[EmptyArgs](), nil),
	ix("set_collect_protocol_fees_authority", idl.Payload[EmptyArgs](), nil),

	ix("initialize_reward", idl.Payload[RewardIndexArgs](), nil),
	ix("initialize_reward_v2", idl.Payload[RewardIndexArgs](), nil),
	ix("set_reward_emissions", idl.Payload[SetRewardEmissionsArgs](), nil),
	ix("set_reward_emissions_v2", idl.Payload[SetRewardEmissionsArgs](), nil),
	ix("set_reward_authority", idl.Payload[RewardIndexArgs](), nil),
	ix("set_reward_authority_by_super_authority", idl.Payload[RewardIndexArgs](), nil),
	ix("set_reward_emissions_super_authority", idl.Payload[EmptyArgs](), nil),
	ix("collect_reward", idl.Payload[RewardIndexArgs](), nil),
	ix("collect_reward_v2", idl.Payload[CollectRewardV2Args](), nil),
	ix("collect_fees", idl.Payload[EmptyArgs](), nil),
	ix("collect_fees_v2", idl.Payload[CollectV2Args](), nil),
	ix("collect_protocol_fees", idl.Payload[EmptyArgs](), nil),
	ix("collect_protocol_fees_v2", idl.Payload[CollectV2Args](), nil),
	ix("update_fees_and_rewards", idl.Payload[EmptyArgs](), nil),

	ix("open_position", idl.Payload[OpenPositionArgs](), nil),
	ix("open_position_with_metadata", idl.Payload[OpenPositionWithMetadataArgs](), nil),
	ix("open_position_with_token_extensions", idl.Payload[OpenPositionWithTokenExtensionsArgs](), nil),
	ix("close_position", idl.Payload[EmptyArgs](), nil),
	ix("close_position_with_token_extensions", idl.Payload[EmptyArgs](), nil),
	ix("initialize_position_bundle", idl.Payload[EmptyArgs](), nil),
	ix("initialize_position_bundle_with_metadata", idl.Payload[EmptyArgs](), nil),
	ix("delete_position_bundle", idl.Payload[EmptyArgs](), nil),
	ix("open_bundled_position", idl.Payload[OpenBundledPositionArgs](), nil),
	ix("close_bundled_position", idl.Payload[CloseBundledPositionArgs](), nil),
	ix("lock_position", idl.Payload[LockPositionArgs](), nil),
	ix("reset_position_range", idl.Payload[ResetPositionRangeArgs](), nil),
	ix("transfer_locked_position", idl.Payload[EmptyArgs](), nil),

	ix("increase_liquidity", idl.Payload[IncreaseLiquidityArgs](), liquidityAccounts),
	ix("increase_liquidity_v2", idl.Payload[IncreaseLiquidityV2Args](), liquidityV2Accounts),
	ix("decrease_liquidity", idl.Payload[DecreaseLiquidityArgs](), liquidityAccounts),
	ix("decrease_liquidity_v2", idl.Payload[DecreaseLiquidityV2Args](), liquidityV2Accounts),
)

// Events 来自 "Program data:" 日志（emit!），没有 self-CPI 前缀
var Events = idl.MustNewRegistry(consts.ProtocolOrcaWhirlpool, idl.LayoutSelfCPI,
	event("traded", "Traded", idl.Payload[TradedEventData]()),
	event("liquidity_increased", "LiquidityIncreased", idl.Payload[LiquidityEventData]()),
	event("liquidity_decreased", "LiquidityDecreased", idl.Payload[LiquidityEventData]()),
	event("pool_initialized", "PoolInitialized", idl.Payload[PoolInitializedEventData]()),
)

// Register 注册 Orca Whirlpool
func Register(m map[types.Pubkey]*common.Program) {
	m[consts.OrcaWhirlpoolProgram] = &common.Program{
		Name:           consts.ProtocolOrcaWhirlpool,
		ID:             consts.OrcaWhirlpoolProgram,
		Instructions:   Instructions,
		Events:         Events,
		OnUnrecognized: idl.ReturnError,
	}
}
