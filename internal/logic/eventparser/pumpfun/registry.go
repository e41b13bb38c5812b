package pumpfun

import (
	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

// 指令判别符（取自链上 IDL，除 SetParams 外均等于 sha256("global:<name>")[:8]）
const (
	Initialize uint64 = 0xafaf6d1f0d989bed
	SetParams  uint64 = 0xa51f8635bdb482ff
	Create     uint64 = 0x181ec828051c0777
	Buy        uint64 = 0x66063d1201daebea
	Sell       uint64 = 0x33e685a4017f83ad
	Withdraw   uint64 = 0xb712469c946da122
)

// 事件判别符（sha256("event:<Name>")[:8]）
const (
	CreateEvent    uint64 = 0x1b72a94ddeeb6376
	TradeEvent     uint64 = 0xbddb7fd34ee661ee
	CompleteEvent  uint64 = 0x5f72619cd42e9808
	SetParamsEvent uint64 = 0xdfc39ff63e308f83
)

// TradeEvent 负载长度，随程序升级追加字段
const (
	TradeLenV0 = 105
	TradeLenV1 = 121
	TradeLenV2 = 217
	TradeLenV3 = 250
)

var Instructions = idl.MustNewRegistry(consts.ProtocolPumpfun, idl.LayoutTag8,
	idl.Entry{
		Name:          "initialize",
		Discriminator: idl.Tag8(Initialize),
		Decode:        idl.Payload[InitializeArgs](),
		Accounts:      idl.MustSchemaOf[InitializeAccounts](),
	},
	idl.Entry{
		Name:          "set_params",
		Discriminator: idl.Tag8(SetParams),
		Decode:        idl.Payload[SetParamsArgs](),
		Accounts:      idl.MustSchemaOf[SetParamsAccounts](),
	},
	idl.Entry{
		Name:          "create",
		Discriminator: idl.Tag8(Create),
		Decode:        idl.Payload[CreateArgs](),
		Accounts:      idl.MustSchemaOf[CreateAccounts](),
	},
	idl.Entry{
		Name:          "buy",
		Discriminator: idl.Tag8(Buy),
		Decode:        idl.Payload[BuyArgs](),
		Accounts:      idl.MustSchemaOf[BuyAccounts](),
	},
	idl.Entry{
		Name:          "sell",
		Discriminator: idl.Tag8(Sell),
		Decode:        idl.Payload[SellArgs](),
		Accounts:      idl.MustSchemaOf[SellAccounts](),
	},
	idl.Entry{
		Name:          "withdraw",
		Discriminator: idl.Tag8(Withdraw),
		Decode:        idl.Payload[WithdrawArgs](),
		Accounts:      idl.MustSchemaOf[WithdrawAccounts](),
	},
)

var Events = idl.MustNewRegistry(consts.ProtocolPumpfun, idl.LayoutSelfCPI,
	idl.Entry{
		Name:          "create_event",
		Discriminator: idl.Tag8(CreateEvent),
		Decode:        idl.Payload[CreateEventData](),
	},
	idl.Entry{
		Name:          "trade_event",
		Discriminator: idl.Tag8(TradeEvent),
		Variants: []idl.Variant{
			{Len: TradeLenV0, Name: "trade_event_v0", Decode: idl.Payload[TradeEventV0]()},
			{Len: TradeLenV1, Name: "trade_event_v1", Decode: idl.Payload[TradeEventV1]()},
			{Len: TradeLenV2, Name: "trade_event_v2", Decode: idl.Payload[TradeEventV2]()},
			{Len: TradeLenV3, Name: "trade_event_v3", Decode: idl.Payload[TradeEventV3]()},
		},
	},
	idl.Entry{
		Name:          "complete_event",
		Discriminator: idl.Tag8(CompleteEvent),
		Decode:        idl.Payload[CompleteEventData](),
	},
	idl.Entry{
		Name:          "set_params_event",
		Discriminator: idl.Tag8(SetParamsEvent),
		Decode:        idl.Payload[SetParamsEventData](),
	},
)

// Register 注册 Pump.fun bonding curve 程序
func Register(m map[types.Pubkey]*common.Program) {
	m[consts.PumpFunProgram] = &common.Program{
		Name:           consts.ProtocolPumpfun,
		ID:             consts.PumpFunProgram,
		Instructions:   Instructions,
		Events:         Events,
		OnUnrecognized: idl.ReturnError,
	}
}
