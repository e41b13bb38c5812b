package pythreceiver

import (
	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

const (
	PythPostUpdate       uint64 = 0x855fcfaf0b4f762c
	PythPostUpdateAtomic uint64 = 0x31ac54c0afb434ea
	PythReclaimRent      uint64 = 0xdac813c5e359c016
)

var Instructions = idl.MustNewRegistry(consts.ProtocolPythReceiver, idl.LayoutTag8,
	idl.Entry{
		Name:          "post_update",
		Discriminator: idl.Tag8(PythPostUpdate),
		Decode:        decodePostUpdate,
		Accounts:      idl.MustSchemaOf[PostUpdateAccounts](),
	},
	idl.Entry{
		Name:          "post_update_atomic",
		Discriminator: idl.Tag8(PythPostUpdateAtomic),
		Decode:        decodePostUpdateAtomic,
		Accounts:      idl.MustSchemaOf[PostUpdateAtomicAccounts](),
	},
	idl.Entry{
		Name:          "reclaim_rent",
		Discriminator: idl.Tag8(PythReclaimRent),
		Decode:        idl.Payload[ReclaimRentArgs](),
		Accounts:      idl.MustSchemaOf[ReclaimRentAccounts](),
	},
)

// Register 注册 Pyth Receiver；治理类指令不关心，未命中时返回 Unknown
func Register(m map[types.Pubkey]*common.Program) {
	m[consts.PythReceiverProgram] = &common.Program{
		Name:           consts.ProtocolPythReceiver,
		ID:             consts.PythReceiverProgram,
		Instructions:   Instructions,
		OnUnrecognized: idl.ReturnUnknownVariant,
	}
}
