package raydiumlaunchpad

import "dex-idl-sol/internal/pkg/types"

// ExactInArgs buy_exact_in 与 sell_exact_in 共用
type ExactInArgs struct {
	AmountIn         uint64 `json:"amount_in"`
	MinimumAmountOut uint64 `json:"minimum_amount_out"`
	ShareFeeRate     uint64 `json:"share_fee_rate"`
}

// ExactOutArgs buy_exact_out 与 sell_exact_out 共用
type ExactOutArgs struct {
	AmountOut       uint64 `json:"amount_out"`
	MaximumAmountIn uint64 `json:"maximum_amount_in"`
	ShareFeeRate    uint64 `json:"share_fee_rate"`
}

// TradeAccounts 四个交易指令的账户布局相同；买入时 base 为获得的代币，卖出时相反
type TradeAccounts struct {
	Payer             types.Pubkey `account:"0,payer"`
	Authority         types.Pubkey `account:"1,authority"`
	GlobalConfig      types.Pubkey `account:"2,global_config"`
	PlatformConfig    types.Pubkey `account:"3,platform_config"`
	PoolState         types.Pubkey `account:"4,pool_state"`
	UserBaseToken     types.Pubkey `account:"5,user_base_token"`
	UserQuoteToken    types.Pubkey `account:"6,user_quote_token"`
	BaseVault         types.Pubkey `account:"7,base_vault"`
	QuoteVault        types.Pubkey `account:"8,quote_vault"`
	BaseTokenMint     types.Pubkey `account:"9,base_token_mint"`
	QuoteTokenMint    types.Pubkey `account:"10,quote_token_mint"`
	BaseTokenProgram  types.Pubkey `account:"11,base_token_program"`
	QuoteTokenProgram types.Pubkey `account:"12,quote_token_program"`
	EventAuthority    types.Pubkey `account:"13,event_authority"`
	Program           types.Pubkey `account:"14,program"`
}
