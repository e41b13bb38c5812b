package bonkswap

import (
	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

// 程序使用旧版 Anchor，判别符由驼峰指令名生成（如 "global:createPool"），swap 恰好与蛇形写法一致
const (
	CreatePool          uint64 = 0xf4ec750412003e58
	CreateProvider      uint64 = 0xe5de91c8fb40baf2
	CreateState         uint64 = 0x60886853743fe13a
	AddTokens           uint64 = 0xeb05fbf122055794
	WithdrawBuyback     uint64 = 0xa52f8cb9a65143c1
	Swap                uint64 = 0xf8c69e91e17587c8
	WithdrawShares      uint64 = 0x9a7d68dc6d4cbe4b
	WithdrawLpFee       uint64 = 0xe4801b47635bb0f5
	WithdrawProjectFee  uint64 = 0xd93864a457b9787a
	CreateFarm          uint64 = 0x84b8989024b26a41
	CreateDualFarm      uint64 = 0x74bc556257852cc6
	CreateTripleFarm    uint64 = 0x2f2fa2b1c15cf62b
	WithdrawRewards     uint64 = 0x0cd03da929133aa1
	ClosePool           uint64 = 0x4efda51b9fb91dec
	WithdrawMercantiFee uint64 = 0x093f72a6689c089c
	AddSupply           uint64 = 0xd016c7f103875132
	UpdateFees          uint64 = 0x0107d07745a761db
	ResetFarm           uint64 = 0xf51194dc37e54756
	UpdateRewardTokens  uint64 = 0x9c4493741d399f72
)

func entry(name string, disc uint64, decode idl.PayloadFunc) idl.Entry {
	return idl.Entry{Name: name, Discriminator: idl.Tag8(disc), Decode: decode}
}

var empty = idl.Payload[EmptyArgs]()

var Instructions = idl.MustNewRegistry(consts.ProtocolBonkSwap, idl.LayoutTag8,
	entry("create_pool", CreatePool, idl.Payload[CreatePoolArgs]()),
	entry("create_provider", CreateProvider, idl.Payload[CreateProviderArgs]()),
	entry("create_state", CreateState, idl.Payload[CreateStateArgs]()),
	entry("add_tokens", AddTokens, idl.Payload[AddTokensArgs]()),
	entry("withdraw_buyback", WithdrawBuyback, empty),
	idl.Entry{
		Name:          "swap",
		Discriminator: idl.Tag8(Swap),
		Decode:        idl.Payload[SwapArgs](),
		Accounts:      idl.MustSchemaOf[SwapAccounts](),
	},
	entry("withdraw_shares", WithdrawShares, idl.Payload[WithdrawSharesArgs]()),
	entry("withdraw_lp_fee", WithdrawLpFee, empty),
	entry("withdraw_project_fee", WithdrawProjectFee, empty),
	entry("create_farm", CreateFarm, idl.Payload[CreateFarmArgs]()),
	entry("create_dual_farm", CreateDualFarm, idl.Payload[CreateDualFarmArgs]()),
	entry("create_triple_farm", CreateTripleFarm, idl.Payload[CreateTripleFarmArgs]()),
	entry("withdraw_rewards", WithdrawRewards, empty),
	entry("close_pool", ClosePool, empty),
	entry("withdraw_mercanti_fee", WithdrawMercantiFee, empty),
	entry("add_supply", AddSupply, idl.Payload[AddSupplyArgs]()),
	entry("update_fees", UpdateFees, idl.Payload[UpdateFeesArgs]()),
	entry("reset_farm", ResetFarm, empty),
	entry("update_reward_tokens", UpdateRewardTokens, empty),
)

// Register 注册 BonkSwap；该程序不发出事件
func Register(m map[types.Pubkey]*common.Program) {
	m[consts.BonkSwapProgram] = &common.Program{
		Name:           consts.ProtocolBonkSwap,
		ID:             consts.BonkSwapProgram,
		Instructions:   Instructions,
		OnUnrecognized: idl.ReturnError,
	}
}
