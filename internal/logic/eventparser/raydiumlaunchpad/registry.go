package raydiumlaunchpad

import (
	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

const (
	BuyExactIn   uint64 = 0xfaea0d7bd59c13ec
	BuyExactOut  uint64 = 0x18d3742869039938
	SellExactIn  uint64 = 0x9527de9bd37c981a
	SellExactOut uint64 = 0x5fc8472208090ba6
)

// 事件判别符；PoolCreateEvent 与 CreateVestingEvent 取自链上 IDL，不是 Anchor 哈希
const (
	TradeEvent         uint64 = 0xbddb7fd34ee661ee
	PoolCreateEvent    uint64 = 0x23131bd51524c27b
	ClaimVestedEvent   uint64 = 0x15c2725778d3e220
	CreateVestingEvent uint64 = 0xc9d81ca9e34cd05f
)

const (
	TradeEventLen       = 32 + 13*8 + 3
	TradeEventLegacyLen = 32 + 12*8 + 2
)

var tradeAccounts = idl.MustSchemaOf[TradeAccounts]()

var Instructions = idl.MustNewRegistry(consts.ProtocolRaydiumLaunchpad, idl.LayoutTag8,
	idl.Entry{Name: "buy_exact_in", Discriminator: idl.Tag8(BuyExactIn), Decode: idl.Payload[ExactInArgs](), Accounts: tradeAccounts},
	idl.Entry{Name: "buy_exact_out", Discriminator: idl.Tag8(BuyExactOut), Decode: idl.Payload[ExactOutArgs](), Accounts: tradeAccounts},
	idl.Entry{Name: "sell_exact_in", Discriminator: idl.Tag8(SellExactIn), Decode: idl.Payload[ExactInArgs](), Accounts: tradeAccounts},
	idl.Entry{Name: "sell_exact_out", Discriminator: idl.Tag8(SellExactOut), Decode: idl.Payload[ExactOutArgs](), Accounts: tradeAccounts},
)

var Events = idl.MustNewRegistry(consts.ProtocolRaydiumLaunchpad, idl.LayoutSelfCPI,
	idl.Entry{
		Name:          "trade_event",
		Discriminator: idl.Tag8(TradeEvent),
		Variants: []idl.Variant{
			{Len: TradeEventLegacyLen, Name: "trade_event_legacy", Decode: idl.Payload[TradeEventLegacy]()},
			{Len: TradeEventLen, Decode: idl.Payload[TradeEventData]()},
		},
	},
	idl.Entry{Name: "pool_create_event", Discriminator: idl.Tag8(PoolCreateEvent), Decode: idl.Payload[PoolCreateEventData]()},
	idl.Entry{Name: "claim_vested_event", Discriminator: idl.Tag8(ClaimVestedEvent), Decode: idl.Payload[ClaimVestedEventData]()},
	idl.Entry{Name: "create_vesting_event", Discriminator: idl.Tag8(CreateVestingEvent), Decode: idl.Payload[CreateVestingEventData]()},
)

// Register 注册 Raydium Launchpad（LaunchLab）
func Register(m map[types.Pubkey]*common.Program) {
	m[consts.RaydiumLaunchpadProgram] = &common.Program{
		Name:           consts.ProtocolRaydiumLaunchpad,
		ID:             consts.RaydiumLaunchpadProgram,
		Instructions:   Instructions,
		Events:         Events,
		OnUnrecognized: idl.ReturnError,
	}
}
