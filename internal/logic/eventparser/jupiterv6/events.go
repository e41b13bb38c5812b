package jupiterv6

import "dex-idl-sol/internal/pkg/types"

// SwapEventData 每一跳路由各发出一次
type SwapEventData struct {
	Amm          types.Pubkey `json:"amm"`
	InputMint    types.Pubkey `json:"input_mint"`
	InputAmount  uint64       `json:"input_amount"`
	OutputMint   types.Pubkey `json:"output_mint"`
	OutputAmount uint64       `json:"output_amount"`
}

type FeeEventData struct {
	Account types.Pubkey `json:"account"`
	Mint    types.Pubkey `json:"mint"`
	Amount  uint64       `json:"amount"`
}
