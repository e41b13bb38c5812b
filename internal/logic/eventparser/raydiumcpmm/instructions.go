package raydiumcpmm

import "dex-idl-sol/internal/pkg/types"

type EmptyArgs struct{}

type AmountsRequestedArgs struct {
	Amount0Requested uint64 `json:"amount_0_requested"`
	Amount1Requested uint64 `json:"amount_1_requested"`
}

type CreateAmmConfigArgs struct {
	Index           uint16 `json:"index"`
	TradeFeeRate    uint64 `json:"trade_fee_rate"`
	ProtocolFeeRate uint64 `json:"protocol_fee_rate"`
	FundFeeRate     uint64 `json:"fund_fee_rate"`
	CreatePoolFee   uint64 `json:"create_pool_fee"`
	CreatorFeeRate  uint64 `json:"creator_fee_rate"`
}

type DepositArgs struct {
	LpTokenAmount       uint64 `json:"lp_token_amount"`
	MaximumToken0Amount uint64 `json:"maximum_token_0_amount"`
	MaximumToken1Amount uint64 `json:"maximum_token_1_amount"`
}

type WithdrawArgs struct {
	LpTokenAmount       uint64 `json:"lp_token_amount"`
	MinimumToken0Amount uint64 `json:"minimum_token_0_amount"`
	MinimumToken1Amount uint64 `json:"minimum_token_1_amount"`
}

type InitializeArgs struct {
	InitAmount0 uint64 `json:"init_amount_0"`
	InitAmount1 uint64 `json:"init_amount_1"`
	OpenTime    uint64 `json:"open_time"`
}

// CreatorFeeOn 创建者手续费的收取币种
type CreatorFeeOn uint8

const (
	CreatorFeeBothToken CreatorFeeOn = iota
	CreatorFeeOnlyToken0
	CreatorFeeOnlyToken1
)

func (c CreatorFeeOn) String() string {
	switch c {
	case CreatorFeeBothToken:
		return "both_token"
	case CreatorFeeOnlyToken0:
		return "only_token_0"
	case CreatorFeeOnlyToken1:
		return "only_token_1"
	default:
		return "unknown"
	}
}

func (c CreatorFeeOn) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type InitializeWithPermissionArgs struct {
	InitializeArgs
	CreatorFeeOn CreatorFeeOn `json:"creator_fee_on" idl:"enum=3"`
}

type SwapBaseInputArgs struct {
	AmountIn         uint64 `json:"amount_in"`
	MinimumAmountOut uint64 `json:"minimum_amount_out"`
}

type SwapBaseOutputArgs struct {
	MaxAmountIn uint64 `json:"max_amount_in"`
	AmountOut   uint64 `json:"amount_out"`
}

type UpdateAmmConfigArgs struct {
	Param uint8  `json:"param"`
	Value uint64 `json:"value"`
}

type UpdatePoolStatusArgs struct {
	Status uint8 `json:"status"`
}

// SwapAccounts swap_base_input / swap_base_output 共用
type SwapAccounts struct {
	Payer              types.Pubkey `account:"0,payer"`
	Authority          types.Pubkey `account:"1,authority"`
	AmmConfig          types.Pubkey `account:"2,amm_config"`
	PoolState          types.Pubkey `account:"3,pool_state"`
	InputTokenAccount  types.Pubkey `account:"4,input_token_account"`
	OutputTokenAccount types.Pubkey `account:"5,output_token_account"`
	InputVault         types.Pubkey `account:"6,input_vault"`
	OutputVault        types.Pubkey `account:"7,output_vault"`
	InputTokenProgram  types.Pubkey `account:"8,input_token_program"`
	OutputTokenProgram types.Pubkey `account:"9,output_token_program"`
	InputTokenMint     types.Pubkey `account:"10,input_token_mint"`
	OutputTokenMint    types.Pubkey `account:"11,output_token_mint"`
	ObservationState   types.Pubkey `account:"12,observation_state"`
}

// LiquidityAccounts deposit / withdraw 共用前 13 个账户
type LiquidityAccounts struct {
	Owner            types.Pubkey `account:"0,owner"`
	Authority        types.Pubkey `account:"1,authority"`
	PoolState        types.Pubkey `account:"2,pool_state"`
	OwnerLpToken     types.Pubkey `account:"3,owner_lp_token"`
	Token0Account    types.Pubkey `account:"4,token_0_account"`
	Token1Account    types.Pubkey `account:"5,token_1_account"`
	Token0Vault      types.Pubkey `account:"6,token_0_vault"`
	Token1Vault      types.Pubkey `account:"7,token_1_vault"`
	TokenProgram     types.Pubkey `account:"8,token_program"`
	TokenProgram2022 types.Pubkey `account:"9,token_program_2022"`
	Vault0Mint       types.Pubkey `account:"10,vault_0_mint"`
	Vault1Mint       types.Pubkey `account:"11,vault_1_mint"`
	LpMint           types.Pubkey `account:"12,lp_mint"`
}

type InitializeAccounts struct {
	Creator                types.Pubkey `account:"0,creator"`
	AmmConfig              types.Pubkey `account:"1,amm_config"`
	Authority              types.Pubkey `account:"2,authority"`
	PoolState              types.Pubkey `account:"3,pool_state"`
	Token0Mint             types.Pubkey `account:"4,token_0_mint"`
	Token1Mint             types.Pubkey `account:"5,token_1_mint"`
	LpMint                 types.Pubkey `account:"6,lp_mint"`
	CreatorToken0          types.Pubkey `account:"7,creator_token_0"`
	CreatorToken1          types.Pubkey `account:"8,creator_token_1"`
	CreatorLpToken         types.Pubkey `account:"9,creator_lp_token"`
	Token0Vault            types.Pubkey `account:"10,token_0_vault"`
	Token1Vault            types.Pubkey `account:"11,token_1_vault"`
	CreatePoolFee          types.Pubkey `account:"12,create_pool_fee"`
	ObservationState       types.Pubkey `account:"13,observation_state"`
	TokenProgram           types.Pubkey `account:"14,token_program"`
	Token0Program          types.Pubkey `account:"15,token_0_program"`
	Token1Program          types.Pubkey `account:"16,token_1_program"`
	AssociatedTokenProgram types.Pubkey `account:"17,associated_token_program"`
	SystemProgram          types.Pubkey `account:"18,system_program"`
	Rent                   types.Pubkey `account:"19,rent"`
}
