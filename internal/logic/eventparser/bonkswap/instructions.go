package bonkswap

import (
	"strconv"

	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

// FixedPoint 链上以 {v: u128} 包装的定点数
type FixedPoint struct {
	V idl.Uint128
}

func (f FixedPoint) MarshalText() ([]byte, error) {
	return f.V.MarshalText()
}

// Token 链上以 {v: u64} 包装的代币数量
type Token struct {
	V uint64
}

func (t Token) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatUint(t.V, 10)), nil
}

type EmptyArgs struct{}

type CreatePoolArgs struct {
	LpFee         FixedPoint `json:"lp_fee"`
	BuybackFee    FixedPoint `json:"buyback_fee"`
	ProjectFee    FixedPoint `json:"project_fee"`
	MercantiFee   FixedPoint `json:"mercanti_fee"`
	InitialTokenX Token      `json:"initial_token_x"`
	InitialTokenY Token      `json:"initial_token_y"`
	Bump          uint8      `json:"bump"`
}

type CreateProviderArgs struct {
	TokenXAmount Token `json:"token_x_amount"`
	TokenYAmount Token `json:"token_y_amount"`
	Bump         uint8 `json:"bump"`
}

type CreateStateArgs struct {
	Nonce uint8 `json:"nonce"`
}

type AddTokensArgs struct {
	DeltaX Token `json:"delta_x"`
	DeltaY Token `json:"delta_y"`
}

// SwapArgs XToY 为 true 表示用 token_x 换 token_y
type SwapArgs struct {
	DeltaIn    Token      `json:"delta_in"`
	PriceLimit FixedPoint `json:"price_limit"`
	XToY       bool       `json:"x_to_y"`
}

type WithdrawSharesArgs struct {
	Shares Token `json:"shares"`
}

type CreateFarmArgs struct {
	Supply   Token  `json:"supply"`
	Duration uint64 `json:"duration"`
	Bump     uint8  `json:"bump"`
}

type CreateDualFarmArgs struct {
	SupplyMarco        Token  `json:"supply_marco"`
	SupplyProjectFirst Token  `json:"supply_project_first"`
	Duration           uint64 `json:"duration"`
	Bump               uint8  `json:"bump"`
}

type CreateTripleFarmArgs struct {
	SupplyMarco         Token  `json:"supply_marco"`
	SupplyProjectFirst  Token  `json:"supply_project_first"`
	SupplyProjectSecond Token  `json:"supply_project_second"`
	Duration            uint64 `json:"duration"`
	Bump                uint8  `json:"bump"`
}

type AddSupplyArgs struct {
	SupplyMarco         Token  `json:"supply_marco"`
	SupplyProjectFirst  Token  `json:"supply_project_first"`
	SupplyProjectSecond Token  `json:"supply_project_second"`
	Duration            uint64 `json:"duration"`
}

type UpdateFeesArgs struct {
	NewBuybackFee  FixedPoint `json:"new_buyback_fee"`
	NewProjectFee  FixedPoint `json:"new_project_fee"`
	NewProviderFee FixedPoint `json:"new_provider_fee"`
	NewMercantiFee FixedPoint `json:"new_mercanti_fee"`
}

// SwapAccounts 下标 0 为全局 state 账户，不做命名；referrer 三个账户只在带推荐人的交易中出现
type SwapAccounts struct {
	Pool             types.Pubkey  `account:"1,pool"`
	TokenX           types.Pubkey  `account:"2,token_x"`
	TokenY           types.Pubkey  `account:"3,token_y"`
	PoolXAccount     types.Pubkey  `account:"4,pool_x_account"`
	PoolYAccount     types.Pubkey  `account:"5,pool_y_account"`
	SwapperXAccount  types.Pubkey  `account:"6,swapper_x_account"`
	SwapperYAccount  types.Pubkey  `account:"7,swapper_y_account"`
	Swapper          types.Pubkey  `account:"8,swapper"`
	ReferrerXAccount *types.Pubkey `account:"9,referrer_x_account"`
	ReferrerYAccount *types.Pubkey `account:"10,referrer_y_account"`
	Referrer         *types.Pubkey `account:"11,referrer"`
}
