package raydiumv4

import (
	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

// 指令 tag（首字节）
const (
	Initialize        byte = 0
	Initialize2       byte = 1
	MonitorStep       byte = 2
	Deposit           byte = 3
	Withdraw          byte = 4
	MigrateToOpenBook byte = 5
	SetParams         byte = 6
	WithdrawPnl       byte = 7
	WithdrawSrm       byte = 8
	SwapBaseIn        byte = 9
	PreInitialize     byte = 10
	SwapBaseOut       byte = 11
	SimulateInfo      byte = 12
	AdminCancelOrders byte = 13
	CreateConfig      byte = 14
	UpdateConfig      byte = 15
)

// ray_log 的 log_type
const (
	LogInit        byte = 0
	LogDeposit     byte = 1
	LogWithdraw    byte = 2
	LogSwapBaseIn  byte = 3
	LogSwapBaseOut byte = 4
)

// SwapArgsLen swap 指令负载固定 16 字节，多出的尾部字节链上合约同样忽略
const SwapArgsLen = 16

// LogPrefix 出现在 "Program log: " 之后
const LogPrefix = "ray_log: "

var (
	swapAccounts         = idl.MustSchemaOf[SwapAccounts]()
	swapAccountsNoTarget = idl.MustSchemaOf[SwapAccountsNoTarget]()
	swapLayouts          = map[int]*idl.AccountSchema{
		17: swapAccountsNoTarget,
		18: swapAccounts,
	}
)

var Instructions = idl.MustNewRegistry(consts.ProtocolRaydiumV4, idl.LayoutTag1,
	idl.Entry{Name: "initialize", Discriminator: idl.Tag1(Initialize), Decode: idl.Payload[InitializeArgs]()},
	idl.Entry{
		Name:          "initialize2",
		Discriminator: idl.Tag1(Initialize2),
		Decode:        idl.Payload[Initialize2Args](),
		Accounts:      idl.MustSchemaOf[Initialize2Accounts](),
	},
	idl.Entry{Name: "monitor_step", Discriminator: idl.Tag1(MonitorStep), Decode: idl.Payload[MonitorStepArgs]()},
	idl.Entry{
		Name:          "deposit",
		Discriminator: idl.Tag1(Deposit),
		Decode:        idl.Payload[DepositArgs](),
		Accounts:      idl.MustSchemaOf[DepositAccounts](),
	},
	idl.Entry{
		Name:          "withdraw",
		Discriminator: idl.Tag1(Withdraw),
		Decode:        idl.Payload[WithdrawArgs](),
		Accounts:      idl.MustSchemaOf[WithdrawAccounts](),
	},
	idl.Entry{Name: "migrate_to_open_book", Discriminator: idl.Tag1(MigrateToOpenBook), Decode: idl.Payload[EmptyArgs]()},
	idl.Entry{Name: "set_params", Discriminator: idl.Tag1(SetParams), Decode: idl.Payload[SetParamsArgs]()},
	idl.Entry{Name: "withdraw_pnl", Discriminator: idl.Tag1(WithdrawPnl), Decode: idl.Payload[EmptyArgs]()},
	idl.Entry{Name: "withdraw_srm", Discriminator: idl.Tag1(WithdrawSrm), Decode: idl.Payload[WithdrawSrmArgs]()},
	idl.Entry{
		Name:           "swap_base_in",
		Discriminator:  idl.Tag1(SwapBaseIn),
		Decode:         idl.Payload[SwapBaseInArgs](),
		FixedLen:       SwapArgsLen,
		Accounts:       swapAccounts,
		AccountLayouts: swapLayouts,
	},
	idl.Entry{Name: "pre_initialize", Discriminator: idl.Tag1(PreInitialize), Decode: idl.Payload[PreInitializeArgs]()},
	idl.Entry{
		Name:           "swap_base_out",
		Discriminator:  idl.Tag1(SwapBaseOut),
		Decode:         idl.Payload[SwapBaseOutArgs](),
		FixedLen:       SwapArgsLen,
		Accounts:       swapAccounts,
		AccountLayouts: swapLayouts,
	},
	idl.Entry{Name: "simulate_info", Discriminator: idl.Tag1(SimulateInfo), Decode: idl.Payload[SimulateInfoArgs]()},
	idl.Entry{Name: "admin_cancel_orders", Discriminator: idl.Tag1(AdminCancelOrders), Decode: idl.Payload[AdminCancelOrdersArgs]()},
	idl.Entry{Name: "create_config_account", Discriminator: idl.Tag1(CreateConfig), Decode: idl.Payload[EmptyArgs]()},
	idl.Entry{Name: "update_config_account", Discriminator: idl.Tag1(UpdateConfig), Decode: idl.Payload[ConfigArgs]()},
)

var LogEvents = idl.MustNewRegistry(consts.ProtocolRaydiumV4, idl.LayoutTag1,
	idl.Entry{Name: "init", Discriminator: idl.Tag1(LogInit), Decode: idl.Payload[InitLog]()},
	idl.Entry{Name: "deposit", Discriminator: idl.Tag1(LogDeposit), Decode: idl.Payload[DepositLog]()},
	idl.Entry{Name: "withdraw", Discriminator: idl.Tag1(LogWithdraw), Decode: idl.Payload[WithdrawLog]()},
	idl.Entry{Name: "swap_base_in", Discriminator: idl.Tag1(LogSwapBaseIn), Decode: idl.Payload[SwapBaseInLog]()},
	idl.Entry{Name: "swap_base_out", Discriminator: idl.Tag1(LogSwapBaseOut), Decode: idl.Payload[SwapBaseOutLog]()},
)

// Register 注册 Raydium V4 AMM：指令按 1 字节 tag 分派，事件来自 ray_log 日志
func Register(m map[types.Pubkey]*common.Program) {
	m[consts.RaydiumV4Program] = &common.Program{
		Name:           consts.ProtocolRaydiumV4,
		ID:             consts.RaydiumV4Program,
		Instructions:   Instructions,
		LogEvents:      LogEvents,
		LogPrefix:      LogPrefix,
		OnUnrecognized: idl.ReturnError,
	}
}
