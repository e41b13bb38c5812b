package pumpfunamm

import "dex-idl-sol/internal/pkg/types"

type EmptyArgs struct{}

type BuyArgs struct {
	BaseAmountOut    uint64 `json:"base_amount_out"`
	MaxQuoteAmountIn uint64 `json:"max_quote_amount_in"`
}

type SellArgs struct {
	BaseAmountIn      uint64 `json:"base_amount_in"`
	MinQuoteAmountOut uint64 `json:"min_quote_amount_out"`
}

type CreatePoolArgsV1 struct {
	Index         uint16 `json:"index"`
	BaseAmountIn  uint64 `json:"base_amount_in"`
	QuoteAmountIn uint64 `json:"quote_amount_in"`
}

type CreatePoolArgsV2 struct {
	CreatePoolArgsV1
	CoinCreator types.Pubkey `json:"coin_creator"`
}

type DepositArgs struct {
	LpTokenAmountOut uint64 `json:"lp_token_amount_out"`
	MaxBaseAmountIn  uint64 `json:"max_base_amount_in"`
	MaxQuoteAmountIn uint64 `json:"max_quote_amount_in"`
}

type WithdrawArgs struct {
	LpTokenAmountIn   uint64 `json:"lp_token_amount_in"`
	MinBaseAmountOut  uint64 `json:"min_base_amount_out"`
	MinQuoteAmountOut uint64 `json:"min_quote_amount_out"`
}

// FeeConfigArgs 同时用于 create_config 与 update_fee_config
type FeeConfigArgs struct {
	LpFeeBasisPoints       uint64          `json:"lp_fee_basis_points"`
	ProtocolFeeBasisPoints uint64          `json:"protocol_fee_basis_points"`
	ProtocolFeeRecipients  [8]types.Pubkey `json:"protocol_fee_recipients"`
}

type DisableArgs struct {
	DisableCreatePool bool `json:"disable_create_pool"`
	DisableDeposit    bool `json:"disable_deposit"`
	DisableWithdraw   bool `json:"disable_withdraw"`
	DisableBuy        bool `json:"disable_buy"`
	DisableSell       bool `json:"disable_sell"`
}

// SwapAccounts 是 buy / sell 共用的账户布局。
// 17、18 号位为 coin creator 相关账户，老交易中不存在。
type SwapAccounts struct {
	Pool                             types.Pubkey  `account:"0,pool"`
	User                             types.Pubkey  `account:"1,user"`
	GlobalConfig                     types.Pubkey  `account:"2,global_config"`
	BaseMint                         types.Pubkey  `account:"3,base_mint"`
	QuoteMint                        types.Pubkey  `account:"4,quote_mint"`
	UserBaseTokenAccount             types.Pubkey  `account:"5,user_base_token_account"`
	UserQuoteTokenAccount            types.Pubkey  `account:"6,user_quote_token_account"`
	PoolBaseTokenAccount             types.Pubkey  `account:"7,pool_base_token_account"`
	PoolQuoteTokenAccount            types.Pubkey  `account:"8,pool_quote_token_account"`
	ProtocolFeeRecipient             types.Pubkey  `account:"9,protocol_fee_recipient"`
	ProtocolFeeRecipientTokenAccount types.Pubkey  `account:"10,protocol_fee_recipient_token_account"`
	BaseTokenProgram                 types.Pubkey  `account:"11,base_token_program"`
	QuoteTokenProgram                types.Pubkey  `account:"12,quote_token_program"`
	SystemProgram                    types.Pubkey  `account:"13,system_program"`
	AssociatedTokenProgram           types.Pubkey  `account:"14,associated_token_program"`
	EventAuthority                   types.Pubkey  `account:"15,event_authority"`
	Program                          types.Pubkey  `account:"16,program"`
	CoinCreatorVaultAta              *types.Pubkey `account:"17,coin_creator_vault_ata"`
	CoinCreatorVaultAuthority        *types.Pubkey `account:"18,coin_creator_vault_authority"`
}

// LiquidityAccounts 是 deposit / withdraw 共用的账户布局
type LiquidityAccounts struct {
	Pool                  types.Pubkey `account:"0,pool"`
	GlobalConfig          types.Pubkey `account:"1,global_config"`
	User                  types.Pubkey `account:"2,user"`
	BaseMint              types.Pubkey `account:"3,base_mint"`
	QuoteMint             types.Pubkey `account:"4,quote_mint"`
	LpMint                types.Pubkey `account:"5,lp_mint"`
	UserBaseTokenAccount  types.Pubkey `account:"6,user_base_token_account"`
	UserQuoteTokenAccount types.Pubkey `account:"7,user_quote_token_account"`
	UserPoolTokenAccount  types.Pubkey `account:"8,user_pool_token_account"`
	PoolBaseTokenAccount  types.Pubkey `account:"9,pool_base_token_account"`
	PoolQuoteTokenAccount types.Pubkey `account:"10,pool_quote_token_account"`
	TokenProgram          types.Pubkey `account:"11,token_program"`
	Token2022Program      types.Pubkey `account:"12,token_2022_program"`
	EventAuthority        types.Pubkey `account:"13,event_authority"`
	Program               types.Pubkey `account:"14,program"`
}

type CreatePoolAccounts struct {
	Pool                   types.Pubkey `account:"0,pool"`
	GlobalConfig           types.Pubkey `account:"1,global_config"`
	Creator                types.Pubkey `account:"2,creator"`
	BaseMint               types.Pubkey `account:"3,base_mint"`
	QuoteMint              types.Pubkey `account:"4,quote_mint"`
	LpMint                 types.Pubkey `account:"5,lp_mint"`
	UserBaseTokenAccount   types.Pubkey `account:"6,user_base_token_account"`
	UserQuoteTokenAccount  types.Pubkey `account:"7,user_quote_token_account"`
	UserPoolTokenAccount   types.Pubkey `account:"8,user_pool_token_account"`
	PoolBaseTokenAccount   types.Pubkey `account:"9,pool_base_token_account"`
	PoolQuoteTokenAccount  types.Pubkey `account:"10,pool_quote_token_account"`
	SystemProgram          types.Pubkey `account:"11,system_program"`
	Token2022Program       types.Pubkey `account:"12,token_2022_program"`
	BaseTokenProgram       types.Pubkey `account:"13,base_token_program"`
	QuoteTokenProgram      types.Pubkey `account:"14,quote_token_program"`
	AssociatedTokenProgram types.Pubkey `account:"15,associated_token_program"`
	EventAuthority         types.Pubkey `account:"16,event_authority"`
	Program                types.Pubkey `account:"17,program"`
}
