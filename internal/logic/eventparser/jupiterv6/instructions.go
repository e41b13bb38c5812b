package jupiterv6

import (
	"bytes"

	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

type ClaimArgs struct {
	ID uint8 `json:"id"`
}

type CloseTokenArgs struct {
	ID      uint8 `json:"id"`
	BurnAll bool  `json:"burn_all"`
}

type CreateTokenAccountArgs struct {
	Bump uint8 `json:"bump"`
}

type EmptyArgs struct{}

// RouteArgs 保留原始负载。路由计划中的 Swap 枚举有上百个变体且随版本增加，这里不展开
type RouteArgs struct {
	Data []byte `json:"data"`
}

// SharedRouteArgs 用于 shared_accounts_* 系列，首字节是共享账户 id
type SharedRouteArgs struct {
	ID   uint8  `json:"id"`
	Data []byte `json:"data"`
}

func decodeRoute(c *idl.Cursor) (RouteArgs, error) {
	return RouteArgs{Data: bytes.Clone(c.Rest())}, nil
}

func decodeSharedRoute(c *idl.Cursor) (SharedRouteArgs, error) {
	id, err := idl.U8(c)
	if err != nil {
		return SharedRouteArgs{}, err
	}
	return SharedRouteArgs{ID: id, Data: bytes.Clone(c.Rest())}, nil
}

// RouteAccounts 未使用的可选账户由调用方以程序地址占位，账户数固定
type RouteAccounts struct {
	TokenProgram                types.Pubkey `account:"0,token_program"`
	UserTransferAuthority       types.Pubkey `account:"1,user_transfer_authority"`
	UserSourceTokenAccount      types.Pubkey `account:"2,user_source_token_account"`
	UserDestinationTokenAccount types.Pubkey `account:"3,user_destination_token_account"`
	DestinationTokenAccount     types.Pubkey `account:"4,destination_token_account"`
	DestinationMint             types.Pubkey `account:"5,destination_mint"`
	PlatformFeeAccount          types.Pubkey `account:"6,platform_fee_account"`
	EventAuthority              types.Pubkey `account:"7,event_authority"`
	Program                     types.Pubkey `account:"8,program"`
}

type SharedRouteAccounts struct {
	TokenProgram                   types.Pubkey `account:"0,token_program"`
	ProgramAuthority               types.Pubkey `account:"1,program_authority"`
	UserTransferAuthority          types.Pubkey `account:"2,user_transfer_authority"`
	SourceTokenAccount             types.Pubkey `account:"3,source_token_account"`
	ProgramSourceTokenAccount      types.Pubkey `account:"4,program_source_token_account"`
	ProgramDestinationTokenAccount types.Pubkey `account:"5,program_destination_token_account"`
	DestinationTokenAccount        types.Pubkey `account:"6,destination_token_account"`
	SourceMint                     types.Pubkey `account:"7,source_mint"`
	DestinationMint                types.Pubkey `account:"8,destination_mint"`
	PlatformFeeAccount             types.Pubkey `account:"9,platform_fee_account"`
	Token2022Program               types.Pubkey `account:"10,token_2022_program"`
	EventAuthority                 types.Pubkey `account:"11,event_authority"`
	Program                        types.Pubkey `account:"12,program"`
}
