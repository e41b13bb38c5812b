package pumpfunamm

import (
	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

// 指令判别符
const (
	Buy             uint64 = 0x66063d1201daebea
	Sell            uint64 = 0x33e685a4017f83ad
	CreateConfig    uint64 = 0xc9cff3724b6f2fbd
	CreatePool      uint64 = 0xe992d18ecf6840bc
	Deposit         uint64 = 0xf223c68952e1f2b6
	Disable         uint64 = 0xb9adbb5ad80feee9
	ExtendAccount   uint64 = 0xea66c2cb96483ee5
	UpdateAdmin     uint64 = 0xa1b028d53cb8b3e4
	UpdateFeeConfig uint64 = 0x68b867f258976b14
	Withdraw        uint64 = 0xb712469c946da122
)

// 事件判别符
const (
	BuyEvent             uint64 = 0x67f4521f2cf57777
	SellEvent            uint64 = 0x3e2f370aa503dc2a
	CreateConfigEvent    uint64 = 0x6b34598137e25116
	CreatePoolEvent      uint64 = 0xb1310cd2a076a774
	DepositEvent         uint64 = 0x78f83d531f8e6b90
	DisableEvent         uint64 = 0x6bfdc14ce4ca1b68
	ExtendAccountEvent   uint64 = 0x6161d7905d92167c
	UpdateAdminEvent     uint64 = 0xe198ab57f63f42ea
	UpdateFeeConfigEvent uint64 = 0x5a1741233ef4bcd0
	WithdrawEvent        uint64 = 0x1609851aa02c47c0
)

// 按负载长度区分的版本。V2 追加了 coin_creator 相关字段。
const (
	CreatePoolArgsLenV1 = 18
	CreatePoolArgsLenV2 = 50

	SwapEventLenV1       = 304
	SwapEventLenV2       = 352
	CreatePoolEventLenV1 = 293
	CreatePoolEventLenV2 = 325
)

var Instructions = idl.MustNewRegistry(consts.ProtocolPumpfunAMM, idl.LayoutTag8,
	idl.Entry{
		Name:          "buy",
		Discriminator: idl.Tag8(Buy),
		Decode:        idl.Payload[BuyArgs](),
		Accounts:      idl.MustSchemaOf[SwapAccounts](),
	},
	idl.Entry{
		Name:          "sell",
		Discriminator: idl.Tag8(Sell),
		Decode:        idl.Payload[SellArgs](),
		Accounts:      idl.MustSchemaOf[SwapAccounts](),
	},
	idl.Entry{
		Name:          "create_pool",
		Discriminator: idl.Tag8(CreatePool),
		Variants: []idl.Variant{
			{Len: CreatePoolArgsLenV1, Name: "create_pool_v1", Decode: idl.Payload[CreatePoolArgsV1]()},
			{Len: CreatePoolArgsLenV2, Name: "create_pool_v2", Decode: idl.Payload[CreatePoolArgsV2]()},
		},
		Accounts: idl.MustSchemaOf[CreatePoolAccounts](),
	},
	idl.Entry{
		Name:          "deposit",
		Discriminator: idl.Tag8(Deposit),
		Decode:        idl.Payload[DepositArgs](),
		Accounts:      idl.MustSchemaOf[LiquidityAccounts](),
	},
	idl.Entry{
		Name:          "withdraw",
		Discriminator: idl.Tag8(Withdraw),
		Decode:        idl.Payload[WithdrawArgs](),
		Accounts:      idl.MustSchemaOf[LiquidityAccounts](),
	},
	idl.Entry{
		Name:          "create_config",
		Discriminator: idl.Tag8(CreateConfig),
		Decode:        idl.Payload[FeeConfigArgs](),
	},
	idl.Entry{
		Name:          "update_fee_config",
		Discriminator: idl.Tag8(UpdateFeeConfig),
		Decode:        idl.Payload[FeeConfigArgs](),
	},
	idl.Entry{
		Name:          "disable",
		Discriminator: idl.Tag8(Disable),
		Decode:        idl.Payload[DisableArgs](),
	},
	idl.Entry{
		Name:          "extend_account",
		Discriminator: idl.Tag8(ExtendAccount),
		Decode:        idl.Payload[EmptyArgs](),
	},
	idl.Entry{
		Name:          "update_admin",
		Discriminator: idl.Tag8(UpdateAdmin),
		Decode:        idl.Payload[EmptyArgs](),
	},
)

var Events = idl.MustNewRegistry(consts.ProtocolPumpfunAMM, idl.LayoutSelfCPI,
	idl.Entry{
		Name:          "buy_event",
		Discriminator: idl.Tag8(BuyEvent),
		Variants: []idl.Variant{
			{Len: SwapEventLenV1, Name: "buy_event_v1", Decode: idl.Payload[BuyEventV1]()},
			{Len: SwapEventLenV2, Name: "buy_event_v2", Decode: idl.Payload[BuyEventV2]()},
		},
	},
	idl.Entry{
		Name:          "sell_event",
		Discriminator: idl.Tag8(SellEvent),
		Variants: []idl.Variant{
			{Len: SwapEventLenV1, Name: "sell_event_v1", Decode: idl.Payload[SellEventV1]()},
			{Len: SwapEventLenV2, Name: "sell_event_v2", Decode: idl.Payload[SellEventV2]()},
		},
	},
	idl.Entry{
		Name:          "create_pool_event",
		Discriminator: idl.Tag8(CreatePoolEvent),
		Variants: []idl.Variant{
			{Len: CreatePoolEventLenV1, Name: "create_pool_event_v1", Decode: idl.Payload[CreatePoolEventV1]()},
			{Len: CreatePoolEventLenV2, Name: "create_pool_event_v2", Decode: idl.Payload[CreatePoolEventV2]()},
		},
	},
	idl.Entry{
		Name:          "deposit_event",
		Discriminator: idl.Tag8(DepositEvent),
		Decode:        idl.Payload[DepositEventData](),
	},
	idl.Entry{
		Name:          "withdraw_event",
		Discriminator: idl.Tag8(WithdrawEvent),
		Decode:        idl.Payload[WithdrawEventData](),
	},
	idl.Entry{
		Name:          "create_config_event",
		Discriminator: idl.Tag8(CreateConfigEvent),
		Decode:        idl.Payload[FeeConfigEventData](),
	},
	idl.Entry{
		Name:          "update_fee_config_event",
		Discriminator: idl.Tag8(UpdateFeeConfigEvent),
		Decode:        idl.Payload[FeeConfigEventData](),
	},
	idl.Entry{
		Name:          "disable_event",
		Discriminator: idl.Tag8(DisableEvent),
		Decode:        idl.Payload[DisableEventData](),
	},
	idl.Entry{
		Name:          "extend_account_event",
		Discriminator: idl.Tag8(ExtendAccountEvent),
		Decode:        idl.Payload[ExtendAccountEventData](),
	},
	idl.Entry{
		Name:          "update_admin_event",
		Discriminator: idl.Tag8(UpdateAdminEvent),
		Decode:        idl.Payload[UpdateAdminEventData](),
	},
)

// Register 注册 Pump.fun AMM（PumpSwap）程序
func Register(m map[types.Pubkey]*common.Program) {
	m[consts.PumpFunAMMProgram] = &common.Program{
		Name:           consts.ProtocolPumpfunAMM,
		ID:             consts.PumpFunAMMProgram,
		Instructions:   Instructions,
		Events:         Events,
		OnUnrecognized: idl.ReturnError,
	}
}
