package eventparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dex-idl-sol/internal/consts"
)

func TestParseLogLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want logLine
	}{
		{"invoke", "Program 675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8 invoke [1]",
			logLine{kind: logInvoke, program: consts.RaydiumV4Program, depth: 1}},
		{"nested invoke", "Program TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA invoke [3]",
			logLine{kind: logInvoke, program: consts.TokenProgram, depth: 3}},
		{"success", "Program JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4 success",
			logLine{kind: logSuccess, program: consts.JupiterV6Program}},
		{"failed", "Program JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4 failed: custom program error: 0x1771",
			logLine{kind: logFailed, program: consts.JupiterV6Program}},
		{"data", "Program data: QMbN6CYI", logLine{kind: logData, text: "QMbN6CYI"}},
		{"log", "Program log: ray_log: AwBO", logLine{kind: logMessage, text: "ray_log: AwBO"}},
		{"truncated", "Log truncated", logLine{kind: logTruncated}},
		{"consumed", "Program JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4 consumed 1000 of 200000 compute units",
			logLine{kind: logOther}},
		{"return", "Program return: JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4 AQ==", logLine{kind: logOther}},
		{"bad id", "Program not-a-key invoke [1]", logLine{kind: logOther}},
		{"bad depth", "Program JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4 invoke [x]", logLine{kind: logOther}},
		{"unrelated", "Transfer: insufficient lamports", logLine{kind: logOther}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLine(tt.line))
		})
	}
}

func TestDecodeLogData(t *testing.T) {
	b, err := decodeLogData("AQI=")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)

	b, err = decodeLogData("AQI= Aw==")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)

	_, err = decodeLogData("!!!")
	assert.Error(t, err)
}
