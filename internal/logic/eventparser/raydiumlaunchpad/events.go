package raydiumlaunchpad

import (
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

type TradeDirection uint8

const (
	TradeBuy TradeDirection = iota
	TradeSell
)

func (d TradeDirection) MarshalText() ([]byte, error) {
	if d == TradeBuy {
		return []byte("buy"), nil
	}
	return []byte("sell"), nil
}

type PoolStatus uint8

const (
	PoolFund PoolStatus = iota
	PoolMigrate
	PoolTrade
)

func (s PoolStatus) MarshalText() ([]byte, error) {
	switch s {
	case PoolFund:
		return []byte("fund"), nil
	case PoolMigrate:
		return []byte("migrate"), nil
	default:
		return []byte("trade"), nil
	}
}

// TradeEventLegacy 早期版本：没有 creator_fee 与 exact_in
type TradeEventLegacy struct {
	PoolState       types.Pubkey   `json:"pool_state"`
	TotalBaseSell   uint64         `json:"total_base_sell"`
	VirtualBase     uint64         `json:"virtual_base"`
	VirtualQuote    uint64         `json:"virtual_quote"`
	RealBaseBefore  uint64         `json:"real_base_before"`
	RealQuoteBefore uint64         `json:"real_quote_before"`
	RealBaseAfter   uint64         `json:"real_base_after"`
	RealQuoteAfter  uint64         `json:"real_quote_after"`
	AmountIn        uint64         `json:"amount_in"`
	AmountOut       uint64         `json:"amount_out"`
	ProtocolFee     uint64         `json:"protocol_fee"`
	PlatformFee     uint64         `json:"platform_fee"`
	ShareFee        uint64         `json:"share_fee"`
	TradeDirection  TradeDirection `json:"trade_direction" idl:"enum=2"`
	PoolStatus      PoolStatus     `json:"pool_status" idl:"enum=3"`
}

type TradeEventData struct {
	PoolState       types.Pubkey   `json:"pool_state"`
	TotalBaseSell   uint64         `json:"total_base_sell"`
	VirtualBase     uint64         `json:"virtual_base"`
	VirtualQuote    uint64         `json:"virtual_quote"`
	RealBaseBefore  uint64         `json:"real_base_before"`
	RealQuoteBefore uint64         `json:"real_quote_before"`
	RealBaseAfter   uint64         `json:"real_base_after"`
	RealQuoteAfter  uint64         `json:"real_quote_after"`
	AmountIn        uint64         `json:"amount_in"`
	AmountOut       uint64         `json:"amount_out"`
	ProtocolFee     uint64         `json:"protocol_fee"`
	PlatformFee     uint64         `json:"platform_fee"`
	CreatorFee      uint64         `json:"creator_fee"`
	ShareFee        uint64         `json:"share_fee"`
	TradeDirection  TradeDirection `json:"trade_direction" idl:"enum=2"`
	PoolStatus      PoolStatus     `json:"pool_status" idl:"enum=3"`
	ExactIn         bool           `json:"exact_in"`
}

type ClaimVestedEventData struct {
	PoolState   types.Pubkey `json:"pool_state"`
	Beneficiary types.Pubkey `json:"beneficiary"`
	ClaimAmount uint64       `json:"claim_amount"`
}

type CreateVestingEventData struct {
	PoolState   types.Pubkey `json:"pool_state"`
	Beneficiary types.Pubkey `json:"beneficiary"`
	ShareAmount uint64       `json:"share_amount"`
}

type MintParams struct {
	Decimals uint8  `json:"decimals"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Uri      string `json:"uri"`
}

type ConstantCurve struct {
	Supply                uint64 `json:"supply"`
	TotalBaseSell         uint64 `json:"total_base_sell"`
	TotalQuoteFundRaising uint64 `json:"total_quote_fund_raising"`
	MigrateType           uint8  `json:"migrate_type"`
}

// FixedCurve 与 LinearCurve 字段相同
type FixedCurve struct {
	Supply                uint64 `json:"supply"`
	TotalQuoteFundRaising uint64 `json:"total_quote_fund_raising"`
	MigrateType           uint8  `json:"migrate_type"`
}

type LinearCurve FixedCurve

type CurveKind uint8

const (
	CurveConstant CurveKind = iota
	CurveFixed
	CurveLinear
)

// CurveParams 是带数据的枚举：Kind 决定后面三个字段中哪一个有效。
// borsh_enum 标记只用于测试中通过 borsh-go 构造负载。
type CurveParams struct {
	Kind     CurveKind     `json:"kind" borsh_enum:"true"`
	Constant ConstantCurve `json:"constant"`
	Fixed    FixedCurve    `json:"fixed"`
	Linear   LinearCurve   `json:"linear"`
}

func (p *CurveParams) UnmarshalIDL(c *idl.Cursor) error {
	kind, err := idl.EnumTag(c, 3)
	if err != nil {
		return err
	}
	*p = CurveParams{Kind: CurveKind(kind)}
	switch p.Kind {
	case CurveConstant:
		return idl.Unmarshal(c, &p.Constant)
	case CurveFixed:
		return idl.Unmarshal(c, &p.Fixed)
	default:
		return idl.Unmarshal(c, &p.Linear)
	}
}

type VestingParams struct {
	TotalLockedAmount uint64 `json:"total_locked_amount"`
	CliffPeriod       uint64 `json:"cliff_period"`
	UnlockPeriod      uint64 `json:"unlock_period"`
}

// AmmCreatorFeeOn 迁移到 AMM 后创建者手续费的收取方式：0 = 仅 quote，1 = 双边
type AmmCreatorFeeOn uint8

type PoolCreateEventData struct {
	PoolState     types.Pubkey    `json:"pool_state"`
	Creator       types.Pubkey    `json:"creator"`
	Config        types.Pubkey    `json:"config"`
	BaseMintParam MintParams      `json:"base_mint_param"`
	CurveParam    CurveParams     `json:"curve_param"`
	VestingParam  VestingParams   `json:"vesting_param"`
	AmmFeeOn      AmmCreatorFeeOn `json:"amm_fee_on" idl:"enum=2"`
}
