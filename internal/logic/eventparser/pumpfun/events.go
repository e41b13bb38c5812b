package pumpfun

import "dex-idl-sol/internal/pkg/types"

type CreateEventData struct {
	Name                 string       `json:"name"`
	Symbol               string       `json:"symbol"`
	Uri                  string       `json:"uri"`
	Mint                 types.Pubkey `json:"mint"`
	BondingCurve         types.Pubkey `json:"bonding_curve"`
	User                 types.Pubkey `json:"user"`
	Creator              types.Pubkey `json:"creator"`
	Timestamp            int64        `json:"timestamp"`
	VirtualTokenReserves uint64       `json:"virtual_token_reserves"`
	VirtualSolReserves   uint64       `json:"virtual_sol_reserves"`
	RealTokenReserves    uint64       `json:"real_token_reserves"`
	TokenTotalSupply     uint64       `json:"token_total_supply"`
}

// TradeEventV0 最早的版本，只有虚拟储备
type TradeEventV0 struct {
	Mint                 types.Pubkey `json:"mint"`
	SolAmount            uint64       `json:"sol_amount"`
	TokenAmount          uint64       `json:"token_amount"`
	IsBuy                bool         `json:"is_buy"`
	User                 types.Pubkey `json:"user"`
	Timestamp            int64        `json:"timestamp"`
	VirtualSolReserves   uint64       `json:"virtual_sol_reserves"`
	VirtualTokenReserves uint64       `json:"virtual_token_reserves"`
}

type TradeEventV1 struct {
	TradeEventV0
	RealSolReserves   uint64 `json:"real_sol_reserves"`
	RealTokenReserves uint64 `json:"real_token_reserves"`
}

// TradeEventV2 增加了协议费与创作者费（2025-05 起）
type TradeEventV2 struct {
	TradeEventV1
	FeeRecipient          types.Pubkey `json:"fee_recipient"`
	FeeBasisPoints        uint64       `json:"fee_basis_points"`
	Fee                   uint64       `json:"fee"`
	Creator               types.Pubkey `json:"creator"`
	CreatorFeeBasisPoints uint64       `json:"creator_fee_basis_points"`
	CreatorFee            uint64       `json:"creator_fee"`
}

type TradeEventV3 struct {
	TradeEventV2
	TrackVolume          bool   `json:"track_volume"`
	TotalUnclaimedTokens uint64 `json:"total_unclaimed_tokens"`
	TotalClaimedTokens   uint64 `json:"total_claimed_tokens"`
	CurrentSolVolume     uint64 `json:"current_sol_volume"`
	LastUpdateTimestamp  int64  `json:"last_update_timestamp"`
}

type CompleteEventData struct {
	User         types.Pubkey `json:"user"`
	Mint         types.Pubkey `json:"mint"`
	BondingCurve types.Pubkey `json:"bonding_curve"`
	Timestamp    int64        `json:"timestamp"`
}

type SetParamsEventData struct {
	FeeRecipient                types.Pubkey `json:"fee_recipient"`
	InitialVirtualTokenReserves uint64       `json:"initial_virtual_token_reserves"`
	InitialVirtualSolReserves   uint64       `json:"initial_virtual_sol_reserves"`
	InitialRealTokenReserves    uint64       `json:"initial_real_token_reserves"`
	TokenTotalSupply            uint64       `json:"token_total_supply"`
	FeeBasisPoints              uint64       `json:"fee_basis_points"`
}
