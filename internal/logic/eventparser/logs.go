package eventparser

import (
	"encoding/base64"
	"strconv"
	"strings"

	"dex-idl-sol/internal/pkg/types"
)

type logKind uint8

const (
	logOther logKind = iota
	logInvoke
	logSuccess
	logFailed
	logData
	logMessage
	logTruncated
)

const (
	programPrefix = "Program "
	dataPrefix    = "Program data: "
	messagePrefix = "Program log: "
	truncatedLine = "Log truncated"
)

// logLine 是一行程序日志的解析结果
type logLine struct {
	kind    logKind
	program types.Pubkey // invoke / success / failed
	depth   int          // invoke [n]
	text    string       // data 行的 base64 部分，或 log 行的消息体
}

// parseLogLine 识别 runtime 输出的固定格式日志行，无法识别的归为 logOther
func parseLogLine(line string) logLine {
	switch {
	case strings.HasPrefix(line, dataPrefix):
		return logLine{kind: logData, text: line[len(dataPrefix):]}
	case strings.HasPrefix(line, messagePrefix):
		return logLine{kind: logMessage, text: line[len(messagePrefix):]}
	case line == truncatedLine:
		return logLine{kind: logTruncated}
	case !strings.HasPrefix(line, programPrefix):
		return logLine{kind: logOther}
	}

	// Program <id> invoke [n] / Program <id> success / Program <id> failed: ...
	rest := line[len(programPrefix):]
	sp := strings.IndexByte(rest, ' ')
	if sp <= 0 {
		return logLine{kind: logOther}
	}
	id, err := types.TryPubkeyFromBase58(rest[:sp])
	if err != nil {
		return logLine{kind: logOther}
	}
	verb := rest[sp+1:]

	switch {
	case strings.HasPrefix(verb, "invoke [") && strings.HasSuffix(verb, "]"):
		depth, err := strconv.Atoi(verb[len("invoke [") : len(verb)-1])
		if err != nil {
			return logLine{kind: logOther}
		}
		return logLine{kind: logInvoke, program: id, depth: depth}
	case verb == "success":
		return logLine{kind: logSuccess, program: id}
	case strings.HasPrefix(verb, "failed"):
		return logLine{kind: logFailed, program: id}
	default:
		return logLine{kind: logOther}
	}
}

// decodeLogData 解码 "Program data:" 后的 base64 字段，多个字段按顺序拼接
func decodeLogData(text string) ([]byte, error) {
	fields := strings.Fields(text)
	if len(fields) == 1 {
		return base64.StdEncoding.DecodeString(fields[0])
	}
	var out []byte
	for _, f := range fields {
		b, err := base64.StdEncoding.DecodeString(f)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}
