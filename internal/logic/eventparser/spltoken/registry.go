package spltoken

import (
	sdktoken "github.com/blocto/solana-go-sdk/program/token"

	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

func tag(ins sdktoken.Instruction) idl.Discriminator {
	return idl.Tag1(byte(ins))
}

var (
	amount        = idl.Payload[AmountArgs]()
	amountChecked = idl.Payload[AmountCheckedArgs]()
	owner         = idl.Payload[InitializeAccountOwnerArgs]()
)

// Instructions 只覆盖与余额变动相关的指令，其余 TokenProgram 指令按未命中处理
var Instructions = idl.MustNewRegistry(consts.ProtocolSPLToken, idl.LayoutTag1,
	idl.Entry{
		Name:          "initialize_account",
		Discriminator: tag(sdktoken.InstructionInitializeAccount),
		Decode:        idl.Payload[EmptyArgs](),
		Accounts:      idl.MustSchemaOf[InitializeAccountAccounts](),
	},
	idl.Entry{
		Name:          "transfer",
		Discriminator: tag(sdktoken.InstructionTransfer),
		Decode:        amount,
		FixedLen:      AmountLen,
		Accounts:      idl.MustSchemaOf[TransferAccounts](),
	},
	idl.Entry{
		Name:          "mint_to",
		Discriminator: tag(sdktoken.InstructionMintTo),
		Decode:        amount,
		FixedLen:      AmountLen,
		Accounts:      idl.MustSchemaOf[MintToAccounts](),
	},
	idl.Entry{
		Name:          "burn",
		Discriminator: tag(sdktoken.InstructionBurn),
		Decode:        amount,
		FixedLen:      AmountLen,
		Accounts:      idl.MustSchemaOf[BurnAccounts](),
	},
	idl.Entry{
		Name:          "close_account",
		Discriminator: tag(sdktoken.InstructionCloseAccount),
		Decode:        idl.Payload[EmptyArgs](),
		Accounts:      idl.MustSchemaOf[CloseAccountAccounts](),
	},
	idl.Entry{
		Name:          "transfer_checked",
		Discriminator: tag(sdktoken.InstructionTransferChecked),
		Decode:        amountChecked,
		FixedLen:      AmountCheckedLen,
		Accounts:      idl.MustSchemaOf[TransferCheckedAccounts](),
	},
	idl.Entry{
		Name:          "mint_to_checked",
		Discriminator: tag(sdktoken.InstructionMintToChecked),
		Decode:        amountChecked,
		FixedLen:      AmountCheckedLen,
		Accounts:      idl.MustSchemaOf[MintToAccounts](),
	},
	idl.Entry{
		Name:          "burn_checked",
		Discriminator: tag(sdktoken.InstructionBurnChecked),
		Decode:        amountChecked,
		FixedLen:      AmountCheckedLen,
		Accounts:      idl.MustSchemaOf[BurnAccounts](),
	},
	idl.Entry{
		Name:          "initialize_account2",
		Discriminator: tag(sdktoken.InstructionInitializeAccount2),
		Decode:        owner,
		FixedLen:      OwnerLen,
		Accounts:      idl.MustSchemaOf[InitializeAccount3Accounts](),
	},
	idl.Entry{
		Name:          "initialize_account3",
		Discriminator: tag(sdktoken.InstructionInitializeAccount3),
		Decode:        owner,
		FixedLen:      OwnerLen,
		Accounts:      idl.MustSchemaOf[InitializeAccount3Accounts](),
	},
)

// Register 注册 Token 与 Token-2022，两者指令编号兼容，共用同一套 schema
func Register(m map[types.Pubkey]*common.Program) {
	for _, id := range []types.Pubkey{consts.TokenProgram, consts.TokenProgram2022} {
		m[id] = &common.Program{
			Name:           consts.ProtocolSPLToken,
			ID:             id,
			Instructions:   Instructions,
			OnUnrecognized: idl.ReturnUnknownVariant,
		}
	}
}
