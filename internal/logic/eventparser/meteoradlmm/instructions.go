package meteoradlmm

import (
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

// 来源：https://github.com/MeteoraAg/dlmm-sdk/blob/main/idls/lb_clmm.json

type EmptyArgs struct{}

// AccountsTypeKind remaining accounts 分片的类型
type AccountsTypeKind uint8

const (
	TransferHookX AccountsTypeKind = iota
	TransferHookY
	TransferHookReward
	TransferHookMultiReward
)

// AccountsType 是带数据的枚举，只有 TransferHookMultiReward 携带奖励序号
type AccountsType struct {
	Kind        AccountsTypeKind `json:"kind"`
	RewardIndex uint8            `json:"reward_index,omitempty"`
}

func (a *AccountsType) UnmarshalIDL(c *idl.Cursor) error {
	kind, err := idl.EnumTag(c, 4)
	if err != nil {
		return err
	}
	*a = AccountsType{Kind: AccountsTypeKind(kind)}
	if a.Kind == TransferHookMultiReward {
		a.RewardIndex, err = idl.U8(c)
	}
	return err
}

type RemainingAccountsSlice struct {
	AccountsType AccountsType `json:"accounts_type"`
	Length       uint8        `json:"length"`
}

type RemainingAccountsInfo struct {
	Slices []RemainingAccountsSlice `json:"slices"`
}

// ---------- swap ----------

type SwapArgs struct {
	AmountIn     uint64 `json:"amount_in"`
	MinAmountOut uint64 `json:"min_amount_out"`
}

type Swap2Args struct {
	SwapArgs
	RemainingAccountsInfo RemainingAccountsInfo `json:"remaining_accounts_info"`
}

type SwapExactOutArgs struct {
	MaxInAmount uint64 `json:"max_in_amount"`
	OutAmount   uint64 `json:"out_amount"`
}

type SwapExactOut2Args struct {
	SwapExactOutArgs
	RemainingAccountsInfo RemainingAccountsInfo `json:"remaining_accounts_info"`
}

type SwapWithPriceImpactArgs struct {
	AmountIn          uint64 `json:"amount_in"`
	ActiveID          *int32 `json:"active_id,omitempty"`
	MaxPriceImpactBps uint16 `json:"max_price_impact_bps"`
}

type SwapWithPriceImpact2Args struct {
	SwapWithPriceImpactArgs
	RemainingAccountsInfo RemainingAccountsInfo `json:"remaining_accounts_info"`
}

// ---------- 创建池子 ----------

type InitializeLbPairArgs struct {
	ActiveID int32  `json:"active_id"`
	BinStep  uint16 `json:"bin_step"`
}

type InitializeLbPair2Args struct {
	ActiveID int32    `json:"active_id"`
	Padding  [96]byte `json:"-"`
}

// CustomizableParams initialize_customizable_permissionless_lb_pair 与 ..._pair2 共用
type CustomizableParams struct {
	ActiveID                int32    `json:"active_id"`
	BinStep                 uint16   `json:"bin_step"`
	BaseFactor              uint16   `json:"base_factor"`
	ActivationType          uint8    `json:"activation_type"`
	HasAlphaVault           bool     `json:"has_alpha_vault"`
	ActivationPoint         *uint64  `json:"activation_point,omitempty"`
	CreatorPoolOnOffControl bool     `json:"creator_pool_on_off_control"`
	BaseFeePowerFactor      uint8    `json:"base_fee_power_factor"`
	Padding                 [62]byte `json:"-"`
}

type InitPermissionPairArgs struct {
	ActiveID           int32  `json:"active_id"`
	BinStep            uint16 `json:"bin_step"`
	BaseFactor         uint16 `json:"base_factor"`
	BaseFeePowerFactor uint8  `json:"base_fee_power_factor"`
	ActivationType     uint8  `json:"activation_type"`
	ProtocolShare      uint16 `json:"protocol_share"`
}

// ---------- 添加流动性 ----------

type BinLiquidityDistribution struct {
	BinID         int32  `json:"bin_id"`
	DistributionX uint16 `json:"distribution_x"`
	DistributionY uint16 `json:"distribution_y"`
}

type BinLiquidityDistributionByWeight struct {
	BinID  int32  `json:"bin_id"`
	Weight uint16 `json:"weight"`
}

type CompressedBinDepositAmount struct {
	BinID  int32  `json:"bin_id"`
	Amount uint32 `json:"amount"`
}

// StrategyParameters.StrategyType 取值 0~8：Spot/Curve/BidAsk × OneSide/Balanced/ImBalanced
type StrategyParameters struct {
	MinBinID     int32    `json:"min_bin_id"`
	MaxBinID     int32    `json:"max_bin_id"`
	StrategyType uint8    `json:"strategy_type" idl:"enum=9"`
	Parameters   [64]byte `json:"-"`
}

type LiquidityParameter struct {
	AmountX          uint64                     `json:"amount_x"`
	AmountY          uint64                     `json:"amount_y"`
	BinLiquidityDist []BinLiquidityDistribution `json:"bin_liquidity_dist"`
}

type LiquidityParameterByWeight struct {
	AmountX              uint64                             `json:"amount_x"`
	AmountY              uint64                             `json:"amount_y"`
	ActiveID             int32                              `json:"active_id"`
	MaxActiveBinSlippage int32                              `json:"max_active_bin_slippage"`
	BinLiquidityDist     []BinLiquidityDistributionByWeight `json:"bin_liquidity_dist"`
}

type LiquidityParameterByStrategy struct {
	AmountX              uint64             `json:"amount_x"`
	AmountY              uint64             `json:"amount_y"`
	ActiveID             int32              `json:"active_id"`
	MaxActiveBinSlippage int32              `json:"max_active_bin_slippage"`
	StrategyParameters   StrategyParameters `json:"strategy_parameters"`
}

type LiquidityParameterByStrategyOneSide struct {
	Amount               uint64             `json:"amount"`
	ActiveID             int32              `json:"active_id"`
	MaxActiveBinSlippage int32              `json:"max_active_bin_slippage"`
	StrategyParameters   StrategyParameters `json:"strategy_parameters"`
}

type LiquidityOneSideParameter struct {
	Amount               uint64                             `json:"amount"`
	ActiveID             int32                              `json:"active_id"`
	MaxActiveBinSlippage int32                              `json:"max_active_bin_slippage"`
	BinLiquidityDist     []BinLiquidityDistributionByWeight `json:"bin_liquidity_dist"`
}

type AddLiquidityArgs struct {
	LiquidityParameter LiquidityParameter `json:"liquidity_parameter"`
}

type AddLiquidity2Args struct {
	LiquidityParameter    LiquidityParameter    `json:"liquidity_parameter"`
	RemainingAccountsInfo RemainingAccountsInfo `json:"remaining_accounts_info"`
}

type AddLiquidityByWeightArgs struct {
	LiquidityParameter LiquidityParameterByWeight `json:"liquidity_parameter"`
}

type AddLiquidityByStrategyArgs struct {
	LiquidityParameter LiquidityParameterByStrategy `json:"liquidity_parameter"`
}

type AddLiquidityByStrategy2Args struct {
	LiquidityParameter    LiquidityParameterByStrategy `json:"liquidity_parameter"`
	RemainingAccountsInfo RemainingAccountsInfo        `json:"remaining_accounts_info"`
}

type AddLiquidityByStrategyOneSideArgs struct {
	LiquidityParameter LiquidityParameterByStrategyOneSide `json:"liquidity_parameter"`
}

type AddLiquidityOneSideArgs struct {
	LiquidityParameter LiquidityOneSideParameter `json:"liquidity_parameter"`
}

type AddLiquidityOneSidePreciseArgs struct {
	Bins                 []CompressedBinDepositAmount `json:"bins"`
	DecompressMultiplier uint64                       `json:"decompress_multiplier"`
}

type AddLiquidityOneSidePrecise2Args struct {
	Bins                  []CompressedBinDepositAmount `json:"bins"`
	DecompressMultiplier  uint64                       `json:"decompress_multiplier"`
	MaxAmount             uint64                       `json:"max_amount"`
	RemainingAccountsInfo RemainingAccountsInfo        `json:"remaining_accounts_info"`
}

// ---------- 移除流动性 ----------

type BinLiquidityReduction struct {
	BinID       int32  `json:"bin_id"`
	BpsToRemove uint16 `json:"bps_to_remove"`
}

type RemoveLiquidityArgs struct {
	BinLiquidityRemoval []BinLiquidityReduction `json:"bin_liquidity_removal"`
}

type RemoveLiquidity2Args struct {
	BinLiquidityRemoval   []BinLiquidityReduction `json:"bin_liquidity_removal"`
	RemainingAccountsInfo RemainingAccountsInfo   `json:"remaining_accounts_info"`
}

type RemoveLiquidityByRangeArgs struct {
	FromBinID   int32  `json:"from_bin_id"`
	ToBinID     int32  `json:"to_bin_id"`
	BpsToRemove uint16 `json:"bps_to_remove"`
}

type RemoveLiquidityByRange2Args struct {
	RemoveLiquidityByRangeArgs
	RemainingAccountsInfo RemainingAccountsInfo `json:"remaining_accounts_info"`
}

// ---------- 头寸 / 奖励 / 管理 ----------

type ClaimFee2Args struct {
	MinBinID              int32                 `json:"min_bin_id"`
	MaxBinID              int32                 `json:"max_bin_id"`
	RemainingAccountsInfo RemainingAccountsInfo `json:"remaining_accounts_info"`
}

type ClaimRewardArgs struct {
	RewardIndex uint64 `json:"reward_index"`
}

type ClaimReward2Args struct {
	RewardIndex           uint64                `json:"reward_index"`
	MinBinID              int32                 `json:"min_bin_id"`
	MaxBinID              int32                 `json:"max_bin_id"`
	RemainingAccountsInfo RemainingAccountsInfo `json:"remaining_accounts_info"`
}

type FundRewardArgs struct {
	RewardIndex           uint64                `json:"reward_index"`
	Amount                uint64                `json:"amount"`
	CarryForward          bool                  `json:"carry_forward"`
	RemainingAccountsInfo RemainingAccountsInfo `json:"remaining_accounts_info"`
}

type InitializeRewardArgs struct {
	RewardIndex    uint64       `json:"reward_index"`
	RewardDuration uint64       `json:"reward_duration"`
	Funder         types.Pubkey `json:"funder"`
}

// InitializePositionArgs initialize_position 与 initialize_position_pda 共用
type InitializePositionArgs struct {
	LowerBinID int32 `json:"lower_bin_id"`
	Width      int32 `json:"width"`
}

type InitializePositionByOperatorArgs struct {
	LowerBinID       int32        `json:"lower_bin_id"`
	Width            int32        `json:"width"`
	FeeOwner         types.Pubkey `json:"fee_owner"`
	LockReleasePoint uint64       `json:"lock_release_point"`
}

type InitializeBinArrayArgs struct {
	Index int64 `json:"index"`
}

type GoToABinArgs struct {
	BinID int32 `json:"bin_id"`
}

type IncreaseOracleLengthArgs struct {
	LengthToAdd uint64 `json:"length_to_add"`
}

type PositionLengthArgs struct {
	Length uint16 `json:"length"`
	Side   uint8  `json:"side"`
}

type SetActivationPointArgs struct {
	ActivationPoint uint64 `json:"activation_point"`
}

// SetPairStatusArgs set_pair_status 与 set_pair_status_permissionless 共用
type SetPairStatusArgs struct {
	Status uint8 `json:"status"`
}

// ---------- 账户布局 ----------

// SwapAccounts swap / swap2 / swap_exact_out* / swap_with_price_impact* 前 13 个账户一致
type SwapAccounts struct {
	LbPair                  types.Pubkey `account:"0,lb_pair"`
	BinArrayBitmapExtension types.Pubkey `account:"1,bin_array_bitmap_extension"`
	ReserveX                types.Pubkey `account:"2,reserve_x"`
	ReserveY                types.Pubkey `account:"3,reserve_y"`
	UserTokenIn             types.Pubkey `account:"4,user_token_in"`
	UserTokenOut            types.Pubkey `account:"5,user_token_out"`
	TokenXMint              types.Pubkey `account:"6,token_x_mint"`
	TokenYMint              types.Pubkey `account:"7,token_y_mint"`
	Oracle                  types.Pubkey `account:"8,oracle"`
	HostFeeIn               types.Pubkey `account:"9,host_fee_in"`
	User                    types.Pubkey `account:"10,user"`
	TokenXProgram           types.Pubkey `account:"11,token_x_program"`
	TokenYProgram           types.Pubkey `account:"12,token_y_program"`
}

// PairAccounts initialize_lb_pair* 与 initialize_customizable_permissionless_lb_pair*：
// #7 在不同指令中分别是 preset_parameter / user_token_x，不做命名
type PairAccounts struct {
	LbPair                  types.Pubkey `account:"0,lb_pair"`
	BinArrayBitmapExtension types.Pubkey `account:"1,bin_array_bitmap_extension"`
	TokenMintX              types.Pubkey `account:"2,token_mint_x"`
	TokenMintY              types.Pubkey `account:"3,token_mint_y"`
	ReserveX                types.Pubkey `account:"4,reserve_x"`
	ReserveY                types.Pubkey `account:"5,reserve_y"`
	Oracle                  types.Pubkey `account:"6,oracle"`
	Funder                  types.Pubkey `account:"8,funder"`
}

type PermissionPairAccounts struct {
	Base                    types.Pubkey `account:"0,base"`
	LbPair                  types.Pubkey `account:"1,lb_pair"`
	BinArrayBitmapExtension types.Pubkey `account:"2,bin_array_bitmap_extension"`
	TokenMintX              types.Pubkey `account:"3,token_mint_x"`
	TokenMintY              types.Pubkey `account:"4,token_mint_y"`
	ReserveX                types.Pubkey `account:"5,reserve_x"`
	ReserveY                types.Pubkey `account:"6,reserve_y"`
	Oracle                  types.Pubkey `account:"7,oracle"`
	Admin                   types.Pubkey `account:"8,admin"`
}

// LiquidityAccounts 双边添加 / 移除流动性的前 9 个账户，v1 与 v2 一致
type LiquidityAccounts struct {
	Position                types.Pubkey `account:"0,position"`
	LbPair                  types.Pubkey `account:"1,lb_pair"`
	BinArrayBitmapExtension types.Pubkey `account:"2,bin_array_bitmap_extension"`
	UserTokenX              types.Pubkey `account:"3,user_token_x"`
	UserTokenY              types.Pubkey `account:"4,user_token_y"`
	ReserveX                types.Pubkey `account:"5,reserve_x"`
	ReserveY                types.Pubkey `account:"6,reserve_y"`
	TokenXMint              types.Pubkey `account:"7,token_x_mint"`
	TokenYMint              types.Pubkey `account:"8,token_y_mint"`
}

// OneSideAccounts 单边添加流动性
type OneSideAccounts struct {
	Position                types.Pubkey `account:"0,position"`
	LbPair                  types.Pubkey `account:"1,lb_pair"`
	BinArrayBitmapExtension types.Pubkey `account:"2,bin_array_bitmap_extension"`
	UserToken               types.Pubkey `account:"3,user_token"`
	Reserve                 types.Pubkey `account:"4,reserve"`
	TokenMint               types.Pubkey `account:"5,token_mint"`
}
