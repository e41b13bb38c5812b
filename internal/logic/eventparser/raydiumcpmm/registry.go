package raydiumcpmm

import (
	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

const (
	SwapBaseInput  uint64 = 0x8fbe5adac41e33de
	SwapBaseOutput uint64 = 0x37d96256a34ab4ad
	Deposit        uint64 = 0xf223c68952e1f2b6
	Withdraw       uint64 = 0xb712469c946da122
	Initialize     uint64 = 0xafaf6d1f0d989bed

	LpChangeEvent uint64 = 0x79a3cdc939da753c
	SwapEvent     uint64 = 0x40c6cde8260871e2
)

// SwapEvent 负载长度：V2 追加了 input/output mint、trade_fee、creator_fee 与 creator_fee_on_input
const (
	SwapEventLenV1 = 32 + 8*6 + 1
	SwapEventLenV2 = SwapEventLenV1 + 32 + 32 + 8 + 8 + 1
)

var (
	swapAccounts      = idl.MustSchemaOf[SwapAccounts]()
	liquidityAccounts = idl.MustSchemaOf[LiquidityAccounts]()
)

var Instructions = idl.MustNewRegistry(consts.ProtocolRaydiumCPMM, idl.LayoutTag8,
	idl.Entry{Name: "close_permission_pda", Discriminator: idl.AnchorInstruction("close_permission_pda"), Decode: idl.Payload[EmptyArgs]()},
	idl.Entry{Name: "collect_creator_fee", Discriminator: idl.AnchorInstruction("collect_creator_fee"), Decode: idl.Payload[EmptyArgs]()},
	idl.Entry{Name: "collect_fund_fee", Discriminator: idl.AnchorInstruction("collect_fund_fee"), Decode: idl.Payload[AmountsRequestedArgs]()},
	idl.Entry{Name: "collect_protocol_fee", Discriminator: idl.AnchorInstruction("collect_protocol_fee"), Decode: idl.Payload[AmountsRequestedArgs]()},
	idl.Entry{Name: "create_amm_config", Discriminator: idl.AnchorInstruction("create_amm_config"), Decode: idl.Payload[CreateAmmConfigArgs]()},
	idl.Entry{Name: "create_permission_pda", Discriminator: idl.AnchorInstruction("create_permission_pda"), Decode: idl.Payload[EmptyArgs]()},
	idl.Entry{
		Name:          "deposit",
		Discriminator: idl.Tag8(Deposit),
		Decode:        idl.Payload[DepositArgs](),
		Accounts:      liquidityAccounts,
	},
	idl.Entry{
		Name:          "initialize",
		Discriminator: idl.Tag8(Initialize),
		Decode:        idl.Payload[InitializeArgs](),
		Accounts:      idl.MustSchemaOf[InitializeAccounts](),
	},
	idl.Entry{
		Name:          "initialize_with_permission",
		Discriminator: idl.AnchorInstruction("initialize_with_permission"),
		Decode:        idl.Payload[InitializeWithPermissionArgs](),
	},
	idl.Entry{
		Name:          "swap_base_input",
		Discriminator: idl.Tag8(SwapBaseInput),
		Decode:        idl.Payload[SwapBaseInputArgs](),
		Accounts:      swapAccounts,
	},
	idl.Entry{
		Name:          "swap_base_output",
		Discriminator: idl.Tag8(SwapBaseOutput),
		Decode:        idl.Payload[SwapBaseOutputArgs](),
		Accounts:      swapAccounts,
	},
	idl.Entry{Name: "update_amm_config", Discriminator: idl.AnchorInstruction("update_amm_config"), Decode: idl.Payload[UpdateAmmConfigArgs]()},
	idl.Entry{Name: "update_pool_status", Discriminator: idl.AnchorInstruction("update_pool_status"), Decode: idl.Payload[UpdatePoolStatusArgs]()},
	idl.Entry{
		Name:          "withdraw",
		Discriminator: idl.Tag8(Withdraw),
		Decode:        idl.Payload[WithdrawArgs](),
		Accounts:      liquidityAccounts,
	},
)

var Events = idl.MustNewRegistry(consts.ProtocolRaydiumCPMM, idl.LayoutSelfCPI,
	idl.Entry{
		Name:          "lp_change_event",
		Discriminator: idl.Tag8(LpChangeEvent),
		Decode:        idl.Payload[LpChangeEventData](),
	},
	idl.Entry{
		Name:          "swap_event",
		Discriminator: idl.Tag8(SwapEvent),
		Variants: []idl.Variant{
			{Len: SwapEventLenV1, Name: "swap_event_v1", Decode: idl.Payload[SwapEventV1]()},
			{Len: SwapEventLenV2, Name: "swap_event_v2", Decode: idl.Payload[SwapEventV2]()},
		},
	},
)

// Register 注册 Raydium CPMM；程序新增的指令与事件较多，未命中时返回 Unknown 而不是报错
func Register(m map[types.Pubkey]*common.Program) {
	m[consts.RaydiumCPMMProgram] = &common.Program{
		Name:           consts.ProtocolRaydiumCPMM,
		ID:             consts.RaydiumCPMMProgram,
		Instructions:   Instructions,
		Events:         Events,
		OnUnrecognized: idl.ReturnUnknownVariant,
	}
}
