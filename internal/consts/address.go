package consts

import "dex-idl-sol/internal/pkg/types"

// Base58 地址常量（可读性高，适合配置与日志使用）
const (
	//  Programs
	SystemProgramStr          = "11111111111111111111111111111111"
	TokenProgramStr           = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	TokenProgram2022Str       = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"
	AssociatedTokenProgramStr = "ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL"
	ComputeBudgetProgramIdStr = "ComputeBudget111111111111111111111111111111"
	VoteProgramStr            = "Vote111111111111111111111111111111111111111"

	WSOLMintStr = "So11111111111111111111111111111111111111112"

	// DEX: Raydium
	RaydiumV4ProgramStr        = "675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8"
	RaydiumCLMMProgramStr      = "CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK"
	RaydiumCPMMProgramStr      = "CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C"
	RaydiumLaunchpadProgramStr = "LanMV9sAd7wArD4vJFi2qDdfnVhFxYSUg6eADduJ3uj"

	// DEX: PumpFun
	PumpFunProgramStr    = "6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P"
	PumpFunAMMProgramStr = "pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA"

	// DEX: 其他
	BonkSwapProgramStr  = "BSwp6bEBihVLdqJRKGgzjcGLHkcTuzmSo1TQkHepzH8p"
	JupiterV6ProgramStr = "JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4"

	// DEX: Meteora / Orca
	MeteoraDLMMProgramStr   = "LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo"
	OrcaWhirlpoolProgramStr = "whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc"

	// Oracle
	PythReceiverProgramStr = "rec5EKMGg6MxZYaMdyBfgwp4d5rB9T1VQH5pJv5LtFJ"
)

var (
	// Programs
	SystemProgram          = types.PubkeyFromBase58(SystemProgramStr)
	TokenProgram           = types.PubkeyFromBase58(TokenProgramStr)
	TokenProgram2022       = types.PubkeyFromBase58(TokenProgram2022Str)
	AssociatedTokenProgram = types.PubkeyFromBase58(AssociatedTokenProgramStr)
	VoteProgram            = types.PubkeyFromBase58(VoteProgramStr)

	WSOLMint = types.PubkeyFromBase58(WSOLMintStr)

	// DEX Program
	RaydiumV4Program        = types.PubkeyFromBase58(RaydiumV4ProgramStr)
	RaydiumCLMMProgram      = types.PubkeyFromBase58(RaydiumCLMMProgramStr)
	RaydiumCPMMProgram      = types.PubkeyFromBase58(RaydiumCPMMProgramStr)
	RaydiumLaunchpadProgram = types.PubkeyFromBase58(RaydiumLaunchpadProgramStr)
	PumpFunProgram          = types.PubkeyFromBase58(PumpFunProgramStr)
	PumpFunAMMProgram       = types.PubkeyFromBase58(PumpFunAMMProgramStr)
	BonkSwapProgram         = types.PubkeyFromBase58(BonkSwapProgramStr)
	JupiterV6Program        = types.PubkeyFromBase58(JupiterV6ProgramStr)
	MeteoraDLMMProgram      = types.PubkeyFromBase58(MeteoraDLMMProgramStr)
	OrcaWhirlpoolProgram    = types.PubkeyFromBase58(OrcaWhirlpoolProgramStr)
	PythReceiverProgram     = types.PubkeyFromBase58(PythReceiverProgramStr)
)
