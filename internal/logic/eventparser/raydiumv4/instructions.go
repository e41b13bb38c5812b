package raydiumv4

import "dex-idl-sol/internal/pkg/types"

// 来源：https://github.com/raydium-io/raydium-amm/blob/master/program/src/instruction.rs

type EmptyArgs struct{}

type InitializeArgs struct {
	Nonce    uint8  `json:"nonce"`
	OpenTime uint64 `json:"open_time"`
}

type Initialize2Args struct {
	Nonce          uint8  `json:"nonce"`
	OpenTime       uint64 `json:"open_time"`
	InitPcAmount   uint64 `json:"init_pc_amount"`
	InitCoinAmount uint64 `json:"init_coin_amount"`
}

type PreInitializeArgs struct {
	Nonce uint8 `json:"nonce"`
}

type MonitorStepArgs struct {
	PlanOrderLimit   uint16 `json:"plan_order_limit"`
	PlaceOrderLimit  uint16 `json:"place_order_limit"`
	CancelOrderLimit uint16 `json:"cancel_order_limit"`
}

// DepositArgs BaseSide 为 0 表示以 coin 为基准，1 表示以 pc 为基准
type DepositArgs struct {
	MaxCoinAmount  uint64  `json:"max_coin_amount"`
	MaxPcAmount    uint64  `json:"max_pc_amount"`
	BaseSide       uint64  `json:"base_side"`
	OtherAmountMin *uint64 `json:"other_amount_min,omitempty"`
}

type WithdrawArgs struct {
	Amount        uint64  `json:"amount"`
	MinCoinAmount *uint64 `json:"min_coin_amount,omitempty"`
	MinPcAmount   *uint64 `json:"min_pc_amount,omitempty"`
}

type SetParamsArgs struct {
	Param     uint8         `json:"param"`
	Value     *uint64       `json:"value,omitempty"`
	NewPubkey *types.Pubkey `json:"new_pubkey,omitempty"`
}

type WithdrawSrmArgs struct {
	Amount uint64 `json:"amount"`
}

// SwapBaseInArgs 定长 16 字节，链上允许尾部追加字节，解码时忽略
type SwapBaseInArgs struct {
	AmountIn         uint64 `json:"amount_in"`
	MinimumAmountOut uint64 `json:"minimum_amount_out"`
}

type SwapBaseOutArgs struct {
	MaxAmountIn uint64 `json:"max_amount_in"`
	AmountOut   uint64 `json:"amount_out"`
}

type SimulateInfoArgs struct {
	Param            uint8            `json:"param"`
	SwapBaseInValue  *SwapBaseInArgs  `json:"swap_base_in_value,omitempty"`
	SwapBaseOutValue *SwapBaseOutArgs `json:"swap_base_out_value,omitempty"`
}

type AdminCancelOrdersArgs struct {
	Limit uint16 `json:"limit"`
}

// ConfigArgs Param: 0 = owner, 1 = admin, 2 = create_pool_fee
type ConfigArgs struct {
	Param         uint8         `json:"param"`
	Owner         *types.Pubkey `json:"owner,omitempty"`
	CreatePoolFee *uint64       `json:"create_pool_fee,omitempty"`
}

// SwapAccounts Swap 指令账户布局（18 个账户）：
//
//	 0. SPL Token Program
//	 1. AMM 主账户（池子地址）
//	 2. 权限 PDA
//	 3. AMM open_orders
//	 4. AMM target orders（已废弃，17 账户版本中不存在）
//	 5. 池子 coin vault
//	 6. 池子 pc vault
//	 7. 市场程序（Serum / OpenBook）
//	 8. 市场账户
//	 9. 市场 bids
//	10. 市场 asks
//	11. 市场 event queue
//	12. 市场 coin vault
//	13. 市场 pc vault
//	14. 市场 vault signer
//	15. 用户 source token 账户
//	16. 用户 destination token 账户
//	17. 用户钱包（signer）
type SwapAccounts struct {
	TokenProgram     types.Pubkey `account:"0,token_program"`
	Amm              types.Pubkey `account:"1,amm"`
	AmmAuthority     types.Pubkey `account:"2,amm_authority"`
	AmmOpenOrders    types.Pubkey `account:"3,amm_open_orders"`
	AmmTargetOrders  types.Pubkey `account:"4,amm_target_orders"`
	PoolCoinVault    types.Pubkey `account:"5,pool_coin_token_account"`
	PoolPcVault      types.Pubkey `account:"6,pool_pc_token_account"`
	SerumProgram     types.Pubkey `account:"7,serum_program"`
	SerumMarket      types.Pubkey `account:"8,serum_market"`
	SerumBids        types.Pubkey `account:"9,serum_bids"`
	SerumAsks        types.Pubkey `account:"10,serum_asks"`
	SerumEventQueue  types.Pubkey `account:"11,serum_event_queue"`
	SerumCoinVault   types.Pubkey `account:"12,serum_coin_vault_account"`
	SerumPcVault     types.Pubkey `account:"13,serum_pc_vault_account"`
	SerumVaultSigner types.Pubkey `account:"14,serum_vault_signer"`
	UserSource       types.Pubkey `account:"15,user_source_token_account"`
	UserDestination  types.Pubkey `account:"16,user_destination_token_account"`
	UserSourceOwner  types.Pubkey `account:"17,user_source_owner"`
}

// SwapAccountsNoTarget 省略 target orders 的 17 账户版本，其后各账户下标整体前移一位
type SwapAccountsNoTarget struct {
	TokenProgram     types.Pubkey `account:"0,token_program"`
	Amm              types.Pubkey `account:"1,amm"`
	AmmAuthority     types.Pubkey `account:"2,amm_authority"`
	AmmOpenOrders    types.Pubkey `account:"3,amm_open_orders"`
	PoolCoinVault    types.Pubkey `account:"4,pool_coin_token_account"`
	PoolPcVault      types.Pubkey `account:"5,pool_pc_token_account"`
	SerumProgram     types.Pubkey `account:"6,serum_program"`
	SerumMarket      types.Pubkey `account:"7,serum_market"`
	SerumBids        types.Pubkey `account:"8,serum_bids"`
	SerumAsks        types.Pubkey `account:"9,serum_asks"`
	SerumEventQueue  types.Pubkey `account:"10,serum_event_queue"`
	SerumCoinVault   types.Pubkey `account:"11,serum_coin_vault_account"`
	SerumPcVault     types.Pubkey `account:"12,serum_pc_vault_account"`
	SerumVaultSigner types.Pubkey `account:"13,serum_vault_signer"`
	UserSource       types.Pubkey `account:"14,user_source_token_account"`
	UserDestination  types.Pubkey `account:"15,user_destination_token_account"`
	UserSourceOwner  types.Pubkey `account:"16,user_source_owner"`
}

// DepositAccounts 添加流动性账户布局
type DepositAccounts struct {
	TokenProgram    types.Pubkey `account:"0,token_program"`
	Amm             types.Pubkey `account:"1,amm"`
	AmmAuthority    types.Pubkey `account:"2,amm_authority"`
	AmmOpenOrders   types.Pubkey `account:"3,amm_open_orders"`
	AmmTargetOrders types.Pubkey `account:"4,amm_target_orders"`
	LpMint          types.Pubkey `account:"5,lp_mint"`
	PoolCoinVault   types.Pubkey `account:"6,pool_coin_token_account"`
	PoolPcVault     types.Pubkey `account:"7,pool_pc_token_account"`
	SerumMarket     types.Pubkey `account:"8,serum_market"`
	UserCoin        types.Pubkey `account:"9,user_coin_token_account"`
	UserPc          types.Pubkey `account:"10,user_pc_token_account"`
	UserLp          types.Pubkey `account:"11,user_lp_token_account"`
	UserOwner       types.Pubkey `account:"12,user_owner"`
	SerumEventQueue types.Pubkey `account:"13,serum_event_queue"`
}

// WithdrawAccounts 移除流动性账户布局，后三个账户仅在新版客户端中出现
type WithdrawAccounts struct {
	TokenProgram     types.Pubkey  `account:"0,token_program"`
	Amm              types.Pubkey  `account:"1,amm"`
	AmmAuthority     types.Pubkey  `account:"2,amm_authority"`
	AmmOpenOrders    types.Pubkey  `account:"3,amm_open_orders"`
	AmmTargetOrders  types.Pubkey  `account:"4,amm_target_orders"`
	LpMint           types.Pubkey  `account:"5,lp_mint"`
	PoolCoinVault    types.Pubkey  `account:"6,pool_coin_token_account"`
	PoolPcVault      types.Pubkey  `account:"7,pool_pc_token_account"`
	WithdrawQueue    types.Pubkey  `account:"8,pool_withdraw_queue"`
	TempLp           types.Pubkey  `account:"9,pool_temp_lp_token_account"`
	SerumProgram     types.Pubkey  `account:"10,serum_program"`
	SerumMarket      types.Pubkey  `account:"11,serum_market"`
	SerumCoinVault   types.Pubkey  `account:"12,serum_coin_vault_account"`
	SerumPcVault     types.Pubkey  `account:"13,serum_pc_vault_account"`
	SerumVaultSigner types.Pubkey  `account:"14,serum_vault_signer"`
	UserLp           types.Pubkey  `account:"15,user_lp_token_account"`
	UserCoin         types.Pubkey  `account:"16,user_coin_token_account"`
	UserPc           types.Pubkey  `account:"17,user_pc_token_account"`
	UserOwner        types.Pubkey  `account:"18,user_owner"`
	SerumEventQueue  *types.Pubkey `account:"19,serum_event_queue"`
	SerumBids        *types.Pubkey `account:"20,serum_bids"`
	SerumAsks        *types.Pubkey `account:"21,serum_asks"`
}

// Initialize2Accounts 建池账户布局
type Initialize2Accounts struct {
	TokenProgram      types.Pubkey `account:"0,token_program"`
	AtaProgram        types.Pubkey `account:"1,associated_token_program"`
	SystemProgram     types.Pubkey `account:"2,system_program"`
	Rent              types.Pubkey `account:"3,rent"`
	Amm               types.Pubkey `account:"4,amm"`
	AmmAuthority      types.Pubkey `account:"5,amm_authority"`
	AmmOpenOrders     types.Pubkey `account:"6,amm_open_orders"`
	LpMint            types.Pubkey `account:"7,lp_mint"`
	CoinMint          types.Pubkey `account:"8,coin_mint"`
	PcMint            types.Pubkey `account:"9,pc_mint"`
	PoolCoinVault     types.Pubkey `account:"10,pool_coin_token_account"`
	PoolPcVault       types.Pubkey `account:"11,pool_pc_token_account"`
	AmmTargetOrders   types.Pubkey `account:"12,amm_target_orders"`
	AmmConfig         types.Pubkey `account:"13,amm_config"`
	CreateFeeReceiver types.Pubkey `account:"14,create_fee_destination"`
	SerumProgram      types.Pubkey `account:"15,serum_program"`
	SerumMarket       types.Pubkey `account:"16,serum_market"`
	UserWallet        types.Pubkey `account:"17,user_wallet"`
	UserCoin          types.Pubkey `account:"18,user_coin_token_account"`
	UserPc            types.Pubkey `account:"19,user_pc_token_account"`
	UserLp            types.Pubkey `account:"20,user_lp_token_account"`
}
