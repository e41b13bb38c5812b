package raydiumclmm

import (
	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

// 判别符均为 Anchor 规则生成，这里只导出交易相关的两个，其余直接在注册表中按名字计算
const (
	Swap   uint64 = 0xf8c69e91e17587c8
	SwapV2 uint64 = 0x2b04ed0b1ac91e62

	SwapEvent uint64 = 0x40c6cde8260871e2
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

var Instructions = idl.MustNewRegistry(consts.ProtocolRaydiumCLMM, idl.LayoutTag8,
	ix("close_position", idl.Payload[EmptyArgs](), nil),
	ix("collect_fund_fee", idl.Payload[AmountsRequestedArgs](), nil),
	ix("collect_protocol_fee", idl.Payload[AmountsRequestedArgs](), nil),
	ix("collect_remaining_rewards", idl.Payload[CollectRemainingRewardsArgs](), nil),
	ix("create_amm_config", idl.Payload[CreateAmmConfigArgs](), nil),
	ix("create_operation_account", idl.Payload[EmptyArgs](), nil),
	ix("create_pool", idl.Payload[CreatePoolArgs](), createPoolAccounts),
	ix("create_support_mint_associated", idl.Payload[EmptyArgs](), nil),
	ix("decrease_liquidity", idl.Payload[DecreaseLiquidityArgs](), nil),
	ix("decrease_liquidity_v2", idl.Payload[DecreaseLiquidityArgs](), decreaseLiquidityV2Accounts),
	ix("increase_liquidity", idl.Payload[IncreaseLiquidityArgs](), nil),
	ix("increase_liquidity_v2", idl.Payload[IncreaseLiquidityV2Args](), increaseLiquidityV2Accounts),
	ix("initialize_reward", idl.Payload[InitializeRewardArgs](), nil),
	ix("open_position", idl.Payload[OpenPositionArgs](), nil),
	ix("open_position_v2", idl.Payload[OpenPositionV2Args](), nil),
	ix("open_position_with_token22_nft", idl.Payload[OpenPositionV2Args](), nil),
	ix("set_reward_params", idl.Payload[SetRewardParamsArgs](), nil),
	ix("swap", idl.Payload[SwapArgs](), swapAccounts),
	ix("swap_router_base_in", idl.Payload[SwapRouterBaseInArgs](), swapRouterBaseInAccounts),
	ix("swap_v2", idl.Payload[SwapArgs](), swapV2Accounts),
	ix("transfer_reward_owner", idl.Payload[TransferRewardOwnerArgs](), nil),
	ix("update_amm_config", idl.Payload[UpdateAmmConfigArgs](), nil),
	ix("update_operation_account", idl.Payload[UpdateOperationAccountArgs](), nil),
	ix("update_pool_status", idl.Payload[UpdatePoolStatusArgs](), nil),
	ix("update_reward_infos", idl.Payload[EmptyArgs](), nil),
)

var Events = idl.MustNewRegistry(consts.ProtocolRaydiumCLMM, idl.LayoutSelfCPI,
	event("collect_personal_fee_event", "CollectPersonalFeeEvent", idl.Payload[CollectPersonalFeeEventData]()),
	event("collect_protocol_fee_event", "CollectProtocolFeeEvent", idl.Payload[CollectProtocolFeeEventData]()),
	event("config_change_event", "ConfigChangeEvent", idl.Payload[ConfigChangeEventData]()),
	event("create_personal_position_event", "CreatePersonalPositionEvent", idl.Payload[CreatePersonalPositionEventData]()),
	event("decrease_liquidity_event", "DecreaseLiquidityEvent", idl.Payload[DecreaseLiquidityEventData]()),
	event("increase_liquidity_event", "IncreaseLiquidityEvent", idl.Payload[IncreaseLiquidityEventData]()),
	event("liquidity_calculate_event", "LiquidityCalculateEvent", idl.Payload[LiquidityCalculateEventData]()),
	event("liquidity_change_event", "LiquidityChangeEvent", idl.Payload[LiquidityChangeEventData]()),
	event("pool_created_event", "PoolCreatedEvent", idl.Payload[PoolCreatedEventData]()),
	event("swap_event", "SwapEvent", idl.Payload[SwapEventData]()),
	event("update_reward_infos_event", "UpdateRewardInfosEvent", idl.Payload[UpdateRewardInfosEventData]()),
)

// Register 注册 Raydium CLMM
func Register(m map[types.Pubkey]*common.Program) {
	m[consts.RaydiumCLMMProgram] = &common.Program{
		Name:           consts.ProtocolRaydiumCLMM,
		ID:             consts.RaydiumCLMMProgram,
		Instructions:   Instructions,
		Events:         Events,
		OnUnrecognized: idl.ReturnError,
	}
}
