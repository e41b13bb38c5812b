package raydiumv4

import (
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

// ray_log 事件：日志行 "Program log: ray_log: <base64>" 解码后首字节为 log_type，
// 其余字节为下列结构。log_type 由判别符承载，结构体中不再重复。

type InitLog struct {
	Time         uint64       `json:"time"`
	PcDecimals   uint8        `json:"pc_decimals"`
	CoinDecimals uint8        `json:"coin_decimals"`
	PcLotSize    uint64       `json:"pc_lot_size"`
	CoinLotSize  uint64       `json:"coin_lot_size"`
	PcAmount     uint64       `json:"pc_amount"`
	CoinAmount   uint64       `json:"coin_amount"`
	Market       types.Pubkey `json:"market"`
}

type DepositLog struct {
	MaxCoin    uint64      `json:"max_coin"`
	MaxPc      uint64      `json:"max_pc"`
	Base       uint64      `json:"base"`
	PoolCoin   uint64      `json:"pool_coin"`
	PoolPc     uint64      `json:"pool_pc"`
	PoolLp     uint64      `json:"pool_lp"`
	CalcPnlX   idl.Uint128 `json:"calc_pnl_x"`
	CalcPnlY   idl.Uint128 `json:"calc_pnl_y"`
	DeductCoin uint64      `json:"deduct_coin"`
	DeductPc   uint64      `json:"deduct_pc"`
	MintLp     uint64      `json:"mint_lp"`
}

type WithdrawLog struct {
	WithdrawLp uint64      `json:"withdraw_lp"`
	UserLp     uint64      `json:"user_lp"`
	PoolCoin   uint64      `json:"pool_coin"`
	PoolPc     uint64      `json:"pool_pc"`
	PoolLp     uint64      `json:"pool_lp"`
	CalcPnlX   idl.Uint128 `json:"calc_pnl_x"`
	CalcPnlY   idl.Uint128 `json:"calc_pnl_y"`
	OutCoin    uint64      `json:"out_coin"`
	OutPc      uint64      `json:"out_pc"`
}

// SwapBaseInLog Direction: 1 = pc -> coin, 2 = coin -> pc
type SwapBaseInLog struct {
	AmountIn   uint64 `json:"amount_in"`
	MinimumOut uint64 `json:"minimum_out"`
	Direction  uint64 `json:"direction"`
	UserSource uint64 `json:"user_source"`
	PoolCoin   uint64 `json:"pool_coin"`
	PoolPc     uint64 `json:"pool_pc"`
	OutAmount  uint64 `json:"out_amount"`
}

type SwapBaseOutLog struct {
	MaxIn      uint64 `json:"max_in"`
	AmountOut  uint64 `json:"amount_out"`
	Direction  uint64 `json:"direction"`
	UserSource uint64 `json:"user_source"`
	PoolCoin   uint64 `json:"pool_coin"`
	PoolPc     uint64 `json:"pool_pc"`
	DeductIn   uint64 `json:"deduct_in"`
}
