package meteoradlmm

import (
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

type SwapEventData struct {
	LbPair      types.Pubkey `json:"lb_pair"`
	From        types.Pubkey `json:"from"`
	StartBinID  int32        `json:"start_bin_id"`
	EndBinID    int32        `json:"end_bin_id"`
	AmountIn    uint64       `json:"amount_in"`
	AmountOut   uint64       `json:"amount_out"`
	SwapForY    bool         `json:"swap_for_y"`
	Fee         uint64       `json:"fee"`
	ProtocolFee uint64       `json:"protocol_fee"`
	FeeBps      idl.Uint128  `json:"fee_bps"`
	HostFee     uint64       `json:"host_fee"`
}

// LiquidityEventData AddLiquidity 与 RemoveLiquidity 事件布局相同，Amounts 为 [x, y]
type LiquidityEventData struct {
	LbPair      types.Pubkey `json:"lb_pair"`
	From        types.Pubkey `json:"from"`
	Position    types.Pubkey `json:"position"`
	Amounts     [2]uint64    `json:"amounts"`
	ActiveBinID int32        `json:"active_bin_id"`
}

type LbPairCreateEventData struct {
	LbPair  types.Pubkey `json:"lb_pair"`
	BinStep uint16       `json:"bin_step"`
	TokenX  types.Pubkey `json:"token_x"`
	TokenY  types.Pubkey `json:"token_y"`
}

type PositionCreateEventData struct {
	LbPair   types.Pubkey `json:"lb_pair"`
	Position types.Pubkey `json:"position"`
	Owner    types.Pubkey `json:"owner"`
}

type PositionCloseEventData struct {
	Position types.Pubkey `json:"position"`
	Owner    types.Pubkey `json:"owner"`
}

type ClaimFeeEventData struct {
	LbPair   types.Pubkey `json:"lb_pair"`
	Position types.Pubkey `json:"position"`
	Owner    types.Pubkey `json:"owner"`
	FeeX     uint64       `json:"fee_x"`
	FeeY     uint64       `json:"fee_y"`
}
