package pumpfunamm

import "dex-idl-sol/internal/pkg/types"

// SwapEventAccounts 是买卖事件尾部共有的账户字段
type SwapEventAccounts struct {
	Pool                             types.Pubkey `json:"pool"`
	User                             types.Pubkey `json:"user"`
	UserBaseTokenAccount             types.Pubkey `json:"user_base_token_account"`
	UserQuoteTokenAccount            types.Pubkey `json:"user_quote_token_account"`
	ProtocolFeeRecipient             types.Pubkey `json:"protocol_fee_recipient"`
	ProtocolFeeRecipientTokenAccount types.Pubkey `json:"protocol_fee_recipient_token_account"`
}

type CreatorFee struct {
	CoinCreator               types.Pubkey `json:"coin_creator"`
	CoinCreatorFeeBasisPoints uint64       `json:"coin_creator_fee_basis_points"`
	CoinCreatorFee            uint64       `json:"coin_creator_fee"`
}

type BuyEventV1 struct {
	Timestamp              int64  `json:"timestamp"`
	BaseAmountOut          uint64 `json:"base_amount_out"`
	MaxQuoteAmountIn       uint64 `json:"max_quote_amount_in"`
	UserBaseTokenReserves  uint64 `json:"user_base_token_reserves"`
	UserQuoteTokenReserves uint64 `json:"user_quote_token_reserves"`
	PoolBaseTokenReserves  uint64 `json:"pool_base_token_reserves"`
	PoolQuoteTokenReserves uint64 `json:"pool_quote_token_reserves"`
	QuoteAmountIn          uint64 `json:"quote_amount_in"`
	LpFeeBasisPoints       uint64 `json:"lp_fee_basis_points"`
	LpFee                  uint64 `json:"lp_fee"`
	ProtocolFeeBasisPoints uint64 `json:"protocol_fee_basis_points"`
	ProtocolFee            uint64 `json:"protocol_fee"`
	QuoteAmountInWithLpFee uint64 `json:"quote_amount_in_with_lp_fee"`
	UserQuoteAmountIn      uint64 `json:"user_quote_amount_in"`
	SwapEventAccounts
}

type BuyEventV2 struct {
	BuyEventV1
	CreatorFee
}

type SellEventV1 struct {
	Timestamp                  int64  `json:"timestamp"`
	BaseAmountIn               uint64 `json:"base_amount_in"`
	MinQuoteAmountOut          uint64 `json:"min_quote_amount_out"`
	UserBaseTokenReserves      uint64 `json:"user_base_token_reserves"`
	UserQuoteTokenReserves     uint64 `json:"user_quote_token_reserves"`
	PoolBaseTokenReserves      uint64 `json:"pool_base_token_reserves"`
	PoolQuoteTokenReserves     uint64 `json:"pool_quote_token_reserves"`
	QuoteAmountOut             uint64 `json:"quote_amount_out"`
	LpFeeBasisPoints           uint64 `json:"lp_fee_basis_points"`
	LpFee                      uint64 `json:"lp_fee"`
	ProtocolFeeBasisPoints     uint64 `json:"protocol_fee_basis_points"`
	ProtocolFee                uint64 `json:"protocol_fee"`
	QuoteAmountOutWithoutLpFee uint64 `json:"quote_amount_out_without_lp_fee"`
	UserQuoteAmountOut         uint64 `json:"user_quote_amount_out"`
	SwapEventAccounts
}

type SellEventV2 struct {
	SellEventV1
	CreatorFee
}

type CreatePoolEventV1 struct {
	Timestamp             int64        `json:"timestamp"`
	Index                 uint16       `json:"index"`
	Creator               types.Pubkey `json:"creator"`
	BaseMint              types.Pubkey `json:"base_mint"`
	QuoteMint             types.Pubkey `json:"quote_mint"`
	BaseMintDecimals      uint8        `json:"base_mint_decimals"`
	QuoteMintDecimals     uint8        `json:"quote_mint_decimals"`
	BaseAmountIn          uint64       `json:"base_amount_in"`
	QuoteAmountIn         uint64       `json:"quote_amount_in"`
	PoolBaseAmount        uint64       `json:"pool_base_amount"`
	PoolQuoteAmount       uint64       `json:"pool_quote_amount"`
	MinimumLiquidity      uint64       `json:"minimum_liquidity"`
	InitialLiquidity      uint64       `json:"initial_liquidity"`
	LpTokenAmountOut      uint64       `json:"lp_token_amount_out"`
	PoolBump              uint8        `json:"pool_bump"`
	Pool                  types.Pubkey `json:"pool"`
	LpMint                types.Pubkey `json:"lp_mint"`
	UserBaseTokenAccount  types.Pubkey `json:"user_base_token_account"`
	UserQuoteTokenAccount types.Pubkey `json:"user_quote_token_account"`
}

type CreatePoolEventV2 struct {
	CreatePoolEventV1
	CoinCreator types.Pubkey `json:"coin_creator"`
}

type DepositEventData struct {
	Timestamp              int64        `json:"timestamp"`
	LpTokenAmountOut       uint64       `json:"lp_token_amount_out"`
	MaxBaseAmountIn        uint64       `json:"max_base_amount_in"`
	MaxQuoteAmountIn       uint64       `json:"max_quote_amount_in"`
	UserBaseTokenReserves  uint64       `json:"user_base_token_reserves"`
	UserQuoteTokenReserves uint64       `json:"user_quote_token_reserves"`
	PoolBaseTokenReserves  uint64       `json:"pool_base_token_reserves"`
	PoolQuoteTokenReserves uint64       `json:"pool_quote_token_reserves"`
	BaseAmountIn           uint64       `json:"base_amount_in"`
	QuoteAmountIn          uint64       `json:"quote_amount_in"`
	LpMintSupply           uint64       `json:"lp_mint_supply"`
	Pool                   types.Pubkey `json:"pool"`
	User                   types.Pubkey `json:"user"`
	UserBaseTokenAccount   types.Pubkey `json:"user_base_token_account"`
	UserQuoteTokenAccount  types.Pubkey `json:"user_quote_token_account"`
	UserPoolTokenAccount   types.Pubkey `json:"user_pool_token_account"`
}

type WithdrawEventData struct {
	Timestamp              int64        `json:"timestamp"`
	LpTokenAmountIn        uint64       `json:"lp_token_amount_in"`
	MinBaseAmountOut       uint64       `json:"min_base_amount_out"`
	MinQuoteAmountOut      uint64       `json:"min_quote_amount_out"`
	UserBaseTokenReserves  uint64       `json:"user_base_token_reserves"`
	UserQuoteTokenReserves uint64       `json:"user_quote_token_reserves"`
	PoolBaseTokenReserves  uint64       `json:"pool_base_token_reserves"`
	PoolQuoteTokenReserves uint64       `json:"pool_quote_token_reserves"`
	BaseAmountOut          uint64       `json:"base_amount_out"`
	QuoteAmountOut         uint64       `json:"quote_amount_out"`
	LpMintSupply           uint64       `json:"lp_mint_supply"`
	Pool                   types.Pubkey `json:"pool"`
	User                   types.Pubkey `json:"user"`
	UserBaseTokenAccount   types.Pubkey `json:"user_base_token_account"`
	UserQuoteTokenAccount  types.Pubkey `json:"user_quote_token_account"`
	UserPoolTokenAccount   types.Pubkey `json:"user_pool_token_account"`
}

type FeeConfigEventData struct {
	Timestamp int64        `json:"timestamp"`
	Admin     types.Pubkey `json:"admin"`
	FeeConfigArgs
}

type DisableEventData struct {
	Timestamp int64        `json:"timestamp"`
	Admin     types.Pubkey `json:"admin"`
	DisableArgs
}

type ExtendAccountEventData struct {
	Timestamp   int64        `json:"timestamp"`
	Account     types.Pubkey `json:"account"`
	User        types.Pubkey `json:"user"`
	CurrentSize uint64       `json:"current_size"`
	NewSize     uint64       `json:"new_size"`
}

type UpdateAdminEventData struct {
	Timestamp int64        `json:"timestamp"`
	Admin     types.Pubkey `json:"admin"`
	NewAdmin  types.Pubkey `json:"new_admin"`
}
