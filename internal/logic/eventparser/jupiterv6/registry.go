package jupiterv6

import (
	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

const (
	Claim                              uint64 = 0x3ec6d6c1d59f6cd2
	ClaimToken                         uint64 = 0x74ce1bbfa6130049
	CloseToken                         uint64 = 0x1a4aec976840b7f9
	CreateOpenOrders                   uint64 = 0xe5c2d4ac080a8693
	CreateProgramOpenOrders            uint64 = 0x1ce22094bc8871ab
	CreateTokenLedger                  uint64 = 0xe8f2c5fdf08f8134
	CreateTokenAccount                 uint64 = 0x93f17b64f484ae76
	ExactOutRoute                      uint64 = 0xd033ef977b2bed5c
	Route                              uint64 = 0xe517cb977ae3ad2a
	RouteWithTokenLedger               uint64 = 0x96564774a75d0e68
	SetTokenLedger                     uint64 = 0xe455b9704e4f4d02
	SharedAccountsExactOutRoute        uint64 = 0xb0d169a89a7d453e
	SharedAccountsRoute                uint64 = 0xc1209b3341d69c81
	SharedAccountsRouteWithTokenLedger uint64 = 0xe6798f50779f6aaa

	SwapEvent uint64 = 0x40c6cde8260871e2
	FeeEvent  uint64 = 0x494f4e7fb8d50ddc
)

var (
	routeAccounts       = idl.MustSchemaOf[RouteAccounts]()
	sharedRouteAccounts = idl.MustSchemaOf[SharedRouteAccounts]()

	route       = idl.PayloadWith(decodeRoute)
	sharedRoute = idl.PayloadWith(decodeSharedRoute)
	claim       = idl.Payload[ClaimArgs]()
	empty       = idl.Payload[EmptyArgs]()
)

func entry(name string, disc uint64, decode idl.PayloadFunc, accounts *idl.AccountSchema) idl.Entry {
	return idl.Entry{Name: name, Discriminator: idl.Tag8(disc), Decode: decode, Accounts: accounts}
}

var Instructions = idl.MustNewRegistry(consts.ProtocolJupiterV6, idl.LayoutTag8,
	entry("claim", Claim, claim, nil),
	entry("claim_token", ClaimToken, claim, nil),
	entry("close_token", CloseToken, idl.Payload[CloseTokenArgs](), nil),
	entry("create_open_orders", CreateOpenOrders, empty, nil),
	entry("create_program_open_orders", CreateProgramOpenOrders, claim, nil),
	entry("create_token_ledger", CreateTokenLedger, empty, nil),
	entry("create_token_account", CreateTokenAccount, idl.Payload[CreateTokenAccountArgs](), nil),
	entry("exact_out_route", ExactOutRoute, route, routeAccounts),
	entry("route", Route, route, routeAccounts),
	entry("route_with_token_ledger", RouteWithTokenLedger, route, nil),
	entry("set_token_ledger", SetTokenLedger, empty, nil),
	entry("shared_accounts_exact_out_route", SharedAccountsExactOutRoute, sharedRoute, sharedRouteAccounts),
	entry("shared_accounts_route", SharedAccountsRoute, sharedRoute, sharedRouteAccounts),
	entry("shared_accounts_route_with_token_ledger", SharedAccountsRouteWithTokenLedger, sharedRoute, nil),
)

var Events = idl.MustNewRegistry(consts.ProtocolJupiterV6, idl.LayoutSelfCPI,
	idl.Entry{Name: "swap_event", Discriminator: idl.Tag8(SwapEvent), Decode: idl.Payload[SwapEventData]()},
	idl.Entry{Name: "fee_event", Discriminator: idl.Tag8(FeeEvent), Decode: idl.Payload[FeeEventData]()},
)

// Register 注册 Jupiter V6；聚合器版本迭代快，未命中返回 Unknown
func Register(m map[types.Pubkey]*common.Program) {
	m[consts.JupiterV6Program] = &common.Program{
		Name:           consts.ProtocolJupiterV6,
		ID:             consts.JupiterV6Program,
		Instructions:   Instructions,
		Events:         Events,
		OnUnrecognized: idl.ReturnUnknownVariant,
	}
}
