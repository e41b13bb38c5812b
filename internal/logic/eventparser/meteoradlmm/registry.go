package meteoradlmm

import (
	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

const (
	// Swap 系列
	Swap                 uint64 = 0xf8c69e91e17587c8
	Swap2                uint64 = 0x414b3f4ceb5b5b88
	SwapExactOut         uint64 = 0xfa49652126cf4bb8
	SwapExactOut2        uint64 = 0x2bd7f784893cf351
	SwapWithPriceImpact2 uint64 = 0x4a62c0d6b1334b33

	// Create Pool
	InitializePair2          uint64 = 0x493b2478ed536cc6
	InitializeCustomPair     uint64 = 0x2e2729876fb7c840
	InitializeCustomPair2    uint64 = 0xf349817e3313f16b
	InitializePermissionPair uint64 = 0x6c66d555fb033515

	// 添加流动性
	AddLiquidity2                 uint64 = 0xe4a24e1c46db7473
	AddLiquidityByWeight          uint64 = 0x1c8cee63e7a21595
	AddLiquidityByStrategy        uint64 = 0x0703967f94283dc8
	AddLiquidityByStrategy2       uint64 = 0x03dd95da6f8d76d5
	AddLiquidityByStrategyOneSide uint64 = 0x2905eeaf64e106cd
	AddLiquidity                  uint64 = 0xb59d59438fb63448
	AddLiquidityOneSide           uint64 = 0x5e9b6797465fdca5
	AddLiquidityOneSidePrecise    uint64 = 0xa1c26754ab47fa9a
	AddLiquidityOneSidePrecise2   uint64 = 0x2133a3c975627de7

	// 移除流动性
	RemoveLiquidity         uint64 = 0x5055d14818ceb16c
	RemoveLiquidity2        uint64 = 0xe6d7527ff165e392
	RemoveLiquidityByRange  uint64 = 0x1a526698f04a691a
	RemoveLiquidityByRange2 uint64 = 0xcc02c391359191cd
	RemoveAllLiquidity      uint64 = 0x0a333d2370691855

	SwapEvent uint64 = 0x516ce3becdd00ac4
)

var (
	swapAccounts           = idl.MustSchemaOf[SwapAccounts]()
	pairAccounts           = idl.MustSchemaOf[PairAccounts]()
	permissionPairAccounts = idl.MustSchemaOf[PermissionPairAccounts]()
	liquidityAccounts      = idl.MustSchemaOf[LiquidityAccounts]()
	oneSideAccounts        = idl.MustSchemaOf[OneSideAccounts]()
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

var Instructions = idl.MustNewRegistry(consts.ProtocolMeteoraDLMM, idl.LayoutTag8,
	ix("swap", idl.Payload[SwapArgs](), swapAccounts),
	ix("swap2", idl.Payload[Swap2Args](), swapAccounts),
	ix("swap_exact_out", idl.Payload[SwapExactOutArgs](), swapAccounts),
	ix("swap_exact_out2", idl.Payload[SwapExactOut2Args](), swapAccounts),
	ix("swap_with_price_impact", idl.Payload[SwapWithPriceImpactArgs](), swapAccounts),
	ix("swap_with_price_impact2", idl.Payload[SwapWithPriceImpact2Args](), swapAccounts),

	ix("initialize_lb_pair", idl.Payload[InitializeLbPairArgs](), pairAccounts),
	ix("initialize_lb_pair2", idl.Payload[InitializeLbPair2Args](), pairAccounts),
	ix("initialize_customizable_permissionless_lb_pair", idl.Payload[CustomizableParams](), pairAccounts),
	ix("initialize_customizable_permissionless_lb_pair2", idl.Payload[CustomizableParams](), pairAccounts),
	ix("initialize_permission_lb_pair", idl.Payload[InitPermissionPairArgs](), permissionPairAccounts),

	ix("add_liquidity", idl.Payload[AddLiquidityArgs](), liquidityAccounts),
	ix("add_liquidity2", idl.Payload[AddLiquidity2Args](), liquidityAccounts),
	ix("add_liquidity_by_weight", idl.Payload[AddLiquidityByWeightArgs](), liquidityAccounts),
	ix("add_liquidity_by_strategy", idl.Payload[AddLiquidityByStrategyArgs](), liquidityAccounts),
	ix("add_liquidity_by_strategy2", idl.Payload[AddLiquidityByStrategy2Args](), liquidityAccounts),
	ix("add_liquidity_by_strategy_one_side", idl.Payload[AddLiquidityByStrategyOneSideArgs](), oneSideAccounts),
	ix("add_liquidity_one_side", idl.Payload[AddLiquidityOneSideArgs](), oneSideAccounts),
	ix("add_liquidity_one_side_precise", idl.Payload[AddLiquidityOneSidePreciseArgs](), oneSideAccounts),
	ix("add_liquidity_one_side_precise2", idl.Payload[AddLiquidityOneSidePrecise2Args](), oneSideAccounts),

	ix("remove_liquidity", idl.Payload[RemoveLiquidityArgs](), liquidityAccounts),
	ix("remove_liquidity2", idl.Payload[RemoveLiquidity2Args](), liquidityAccounts),
	ix("remove_liquidity_by_range", idl.Payload[RemoveLiquidityByRangeArgs](), liquidityAccounts),
	ix("remove_liquidity_by_range2", idl.Payload[RemoveLiquidityByRange2Args](), liquidityAccounts),
	ix("remove_all_liquidity", idl.Payload[EmptyArgs](), liquidityAccounts),

	ix("claim_fee", idl.Payload[EmptyArgs](), nil),
	ix("claim_fee2", idl.Payload[ClaimFee2Args](), nil),
	ix("claim_reward", idl.Payload[ClaimRewardArgs](), nil),
	ix("claim_reward2", idl.Payload[ClaimReward2Args](), nil),
	ix("close_position", idl.Payload[EmptyArgs](), nil),
	ix("close_position2", idl.Payload[EmptyArgs](), nil),
	ix("close_position_if_empty", idl.Payload[EmptyArgs](), nil),
	ix("decrease_position_length", idl.Payload[PositionLengthArgs](), nil),
	ix("increase_position_length", idl.Payload[PositionLengthArgs](), nil),
	ix("fund_reward", idl.Payload[FundRewardArgs](), nil),
	ix("go_to_a_bin", idl.Payload[GoToABinArgs](), nil),
	ix("increase_oracle_length", idl.Payload[IncreaseOracleLengthArgs](), nil),
	ix("initialize_bin_array", idl.Payload[InitializeBinArrayArgs](), nil),
	ix("initialize_bin_array_bitmap_extension", idl.Payload[EmptyArgs](), nil),
	ix("initialize_position", idl.Payload[InitializePositionArgs](), nil),
	ix("initialize_position_pda", idl.Payload[InitializePositionArgs](), nil),
	ix("initialize_position_by_operator", idl.Payload[InitializePositionByOperatorArgs](), nil),
	ix("initialize_reward", idl.Payload[InitializeRewardArgs](), nil),
	ix("set_activation_point", idl.Payload[SetActivationPointArgs](), nil),
	ix("set_pair_status", idl.Payload[SetPairStatusArgs](), nil),
	ix("set_pair_status_permissionless", idl.Payload[SetPairStatusArgs](), nil),
	ix("update_fees_and_rewards", idl.Payload[EmptyArgs](), nil),
)

var Events = idl.MustNewRegistry(consts.ProtocolMeteoraDLMM, idl.LayoutSelfCPI,
	event("swap", "Swap", idl.Payload[SwapEventData]()),
	event("add_liquidity", "AddLiquidity", idl.Payload[LiquidityEventData]()),
	event("remove_liquidity", "RemoveLiquidity", idl.Payload[LiquidityEventData]()),
	event("lb_pair_create", "LbPairCreate", idl.Payload[LbPairCreateEventData]()),
	event("position_create", "PositionCreate", idl.Payload[PositionCreateEventData]()),
	event("position_close", "PositionClose", idl.Payload[PositionCloseEventData]()),
	event("claim_fee", "ClaimFee", idl.Payload[ClaimFeeEventData]()),
)

// Register 注册 Meteora DLMM：管理类指令较多且持续新增，未收录的判别符按 Unknown 输出
func Register(m map[types.Pubkey]*common.Program) {
	m[consts.MeteoraDLMMProgram] = &common.Program{
		Name:           consts.ProtocolMeteoraDLMM,
		ID:             consts.MeteoraDLMMProgram,
		Instructions:   Instructions,
		Events:         Events,
		OnUnrecognized: idl.ReturnUnknownVariant,
	}
}
