package consts

// 协议名，同时用作配置 decode.protocols 的取值、记录中的 program 字段和日志前缀
const (
	ProtocolPumpfun          = "pumpfun"
	ProtocolPumpfunAMM       = "pumpfunamm"
	ProtocolRaydiumV4        = "raydiumv4"
	ProtocolRaydiumCLMM      = "raydiumclmm"
	ProtocolRaydiumCPMM      = "raydiumcpmm"
	ProtocolRaydiumLaunchpad = "raydiumlaunchpad"
	ProtocolBonkSwap         = "bonkswap"
	ProtocolJupiterV6        = "jupiterv6"
	ProtocolMeteoraDLMM      = "meteoradlmm"
	ProtocolOrcaWhirlpool    = "orcawhirlpool"
	ProtocolPythReceiver     = "pythreceiver"
	ProtocolSPLToken         = "spltoken"
)

var ProtocolNames = []string{
	ProtocolPumpfun,
	ProtocolPumpfunAMM,
	ProtocolRaydiumV4,
	ProtocolRaydiumCLMM,
	ProtocolRaydiumCPMM,
	ProtocolRaydiumLaunchpad,
	ProtocolBonkSwap,
	ProtocolJupiterV6,
	ProtocolMeteoraDLMM,
	ProtocolOrcaWhirlpool,
	ProtocolPythReceiver,
	ProtocolSPLToken,
}

// IsKnownProtocol 判断配置中的协议名是否受支持
func IsKnownProtocol(name string) bool {
	for _, p := range ProtocolNames {
		if p == name {
			return true
		}
	}
	return false
}
