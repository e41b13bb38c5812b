package spltoken

import "dex-idl-sol/internal/pkg/types"

// 负载长度按 Token Program 原始布局固定，Token-2022 追加的扩展字节会被截掉
const (
	AmountLen        = 8
	AmountCheckedLen = AmountLen + 1
	OwnerLen         = 32
)

type AmountArgs struct {
	Amount uint64 `json:"amount"`
}

type AmountCheckedArgs struct {
	Amount   uint64 `json:"amount"`
	Decimals uint8  `json:"decimals"`
}

// InitializeAccountOwnerArgs 用于 InitializeAccount2/3，owner 在数据中而不在账户列表中
type InitializeAccountOwnerArgs struct {
	Owner types.Pubkey `json:"owner"`
}

type EmptyArgs struct{}

// 多签时 authority 之后还会跟若干 signer 账户，这里只取固定部分

type TransferAccounts struct {
	Source      types.Pubkey `account:"0,source"`
	Destination types.Pubkey `account:"1,destination"`
	Authority   types.Pubkey `account:"2,authority"`
}

type TransferCheckedAccounts struct {
	Source      types.Pubkey `account:"0,source"`
	Mint        types.Pubkey `account:"1,mint"`
	Destination types.Pubkey `account:"2,destination"`
	Authority   types.Pubkey `account:"3,authority"`
}

type MintToAccounts struct {
	Mint      types.Pubkey `account:"0,mint"`
	Account   types.Pubkey `account:"1,account"`
	Authority types.Pubkey `account:"2,authority"`
}

type BurnAccounts struct {
	Account   types.Pubkey `account:"0,account"`
	Mint      types.Pubkey `account:"1,mint"`
	Authority types.Pubkey `account:"2,authority"`
}

type InitializeAccountAccounts struct {
	Account types.Pubkey `account:"0,account"`
	Mint    types.Pubkey `account:"1,mint"`
	Owner   types.Pubkey `account:"2,owner"`
}

// InitializeAccount3Accounts 同时用于 InitializeAccount2（其第 3 个账户是 Rent sysvar，不关心）
type InitializeAccount3Accounts struct {
	Account types.Pubkey `account:"0,account"`
	Mint    types.Pubkey `account:"1,mint"`
}

type CloseAccountAccounts struct {
	Account     types.Pubkey `account:"0,account"`
	Destination types.Pubkey `account:"1,destination"`
	Owner       types.Pubkey `account:"2,owner"`
}
