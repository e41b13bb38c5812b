package pumpfun

import "dex-idl-sol/internal/pkg/types"

type InitializeArgs struct{}

type WithdrawArgs struct{}

type SetParamsArgs struct {
	FeeRecipient                types.Pubkey `json:"fee_recipient"`
	InitialVirtualTokenReserves uint64       `json:"initial_virtual_token_reserves"`
	InitialVirtualSolReserves   uint64       `json:"initial_virtual_sol_reserves"`
	InitialRealTokenReserves    uint64       `json:"initial_real_token_reserves"`
	TokenTotalSupply            uint64       `json:"token_total_supply"`
	FeeBasisPoints              uint64       `json:"fee_basis_points"`
}

type CreateArgs struct {
	Name    string       `json:"name"`
	Symbol  string       `json:"symbol"`
	Uri     string       `json:"uri"`
	Creator types.Pubkey `json:"creator"`
}

type BuyArgs struct {
	Amount     uint64 `json:"amount"`
	MaxSolCost uint64 `json:"max_sol_cost"`
}

type SellArgs struct {
	Amount       uint64 `json:"amount"`
	MinSolOutput uint64 `json:"min_sol_output"`
}

type InitializeAccounts struct {
	GlobalState    types.Pubkey `account:"0,global_state"`
	Admin          types.Pubkey `account:"1,admin"`
	SystemProgram  types.Pubkey `account:"2,system_program"`
	EventAuthority types.Pubkey `account:"3,event_authority"`
	Program        types.Pubkey `account:"4,program"`
}

type SetParamsAccounts struct {
	CurveConfig    types.Pubkey `account:"0,curve_config"`
	Admin          types.Pubkey `account:"1,admin"`
	GlobalState    types.Pubkey `account:"2,global_state"`
	EventAuthority types.Pubkey `account:"3,event_authority"`
	Program        types.Pubkey `account:"4,program"`
}

// CreateAccounts 账户结构：
//  0. 新建的 Mint
//  1. Mint Authority
//  2. Bonding Curve 主账户
//  3. Bonding Curve 关联 TokenAccount
//  4. Global 配置账户
//  5. Metaplex Metadata Program
//  6. Metadata 账户
//  7. 创建者（fee payer）
//  8. ~ 13. System / Token / ATA Program、Rent、Event Authority、Pump.fun Program
type CreateAccounts struct {
	Mint                   types.Pubkey `account:"0,mint"`
	MintAuthority          types.Pubkey `account:"1,mint_authority"`
	BondingCurve           types.Pubkey `account:"2,bonding_curve"`
	AssociatedBondingCurve types.Pubkey `account:"3,associated_bonding_curve"`
	GlobalState            types.Pubkey `account:"4,global_state"`
	MetadataProgram        types.Pubkey `account:"5,metadata_program"`
	Metadata               types.Pubkey `account:"6,metadata"`
	User                   types.Pubkey `account:"7,user"`
	SystemProgram          types.Pubkey `account:"8,system_program"`
	TokenProgram           types.Pubkey `account:"9,token_program"`
	AssociatedTokenProgram types.Pubkey `account:"10,associated_token_program"`
	Rent                   types.Pubkey `account:"11,rent"`
	EventAuthority         types.Pubkey `account:"12,event_authority"`
	Program                types.Pubkey `account:"13,program"`
}

// BuyAccounts 账户结构：
//  0. Global 配置账户（不可变）
//  1. 手续费账户
//  2. 被购买代币的 Mint
//  3. Bonding Curve 主账户（池子地址）
//  4. Bonding Curve Vault（池子 TokenAccount）
//  5. 用户 Associated Token Account
//  6. 用户主账户
//  7. System Program
//  8. Token Program
//  9. Creator Vault
//  10. Event Authority
//  11. Pump.fun 程序账户
//
// 新版本追加的 volume accumulator 等账户不在布局内，解析时忽略。
type BuyAccounts struct {
	GlobalState    types.Pubkey `account:"0,global_state"`
	FeeRecipient   types.Pubkey `account:"1,fee_recipient"`
	Mint           types.Pubkey `account:"2,mint"`
	BondingCurve   types.Pubkey `account:"3,bonding_curve"`
	CurveVault     types.Pubkey `account:"4,curve_vault"`
	UserAccount    types.Pubkey `account:"5,user_token_account"`
	User           types.Pubkey `account:"6,user"`
	SystemProgram  types.Pubkey `account:"7,system_program"`
	TokenProgram   types.Pubkey `account:"8,token_program"`
	CreatorVault   types.Pubkey `account:"9,creator_vault"`
	EventAuthority types.Pubkey `account:"10,event_authority"`
	Program        types.Pubkey `account:"11,program"`
}

// SellAccounts 与 BuyAccounts 相同，但 8、9 两个槽位互换
type SellAccounts struct {
	GlobalState    types.Pubkey `account:"0,global_state"`
	FeeRecipient   types.Pubkey `account:"1,fee_recipient"`
	Mint           types.Pubkey `account:"2,mint"`
	BondingCurve   types.Pubkey `account:"3,bonding_curve"`
	CurveVault     types.Pubkey `account:"4,curve_vault"`
	UserAccount    types.Pubkey `account:"5,user_token_account"`
	User           types.Pubkey `account:"6,user"`
	SystemProgram  types.Pubkey `account:"7,system_program"`
	CreatorVault   types.Pubkey `account:"8,creator_vault"`
	TokenProgram   types.Pubkey `account:"9,token_program"`
	EventAuthority types.Pubkey `account:"10,event_authority"`
	Program        types.Pubkey `account:"11,program"`
}

type WithdrawAccounts struct {
	GlobalState    types.Pubkey `account:"0,global_state"`
	FeeRecipient   types.Pubkey `account:"1,fee_recipient"`
	SystemProgram  types.Pubkey `account:"2,system_program"`
	EventAuthority types.Pubkey `account:"3,event_authority"`
	Program        types.Pubkey `account:"4,program"`
}
