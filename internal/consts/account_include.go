package consts

// GrpcAccountInclude 是区块订阅过滤器的默认账户列表：
// 只推送涉及已注册解码 Program 的交易。
var GrpcAccountInclude = []string{
	TokenProgramStr,
	TokenProgram2022Str,

	PumpFunProgramStr,
	PumpFunAMMProgramStr,
	RaydiumV4ProgramStr,
	RaydiumCLMMProgramStr,
	RaydiumCPMMProgramStr,
	RaydiumLaunchpadProgramStr,
	BonkSwapProgramStr,
	JupiterV6ProgramStr,
	MeteoraDLMMProgramStr,
	OrcaWhirlpoolProgramStr,
	PythReceiverProgramStr,
}
