package eventparser

import (
	"errors"
	"fmt"
	"runtime/debug"
	"slices"
	"sort"
	"strings"

	"dex-idl-sol/internal/logic/core"
	"dex-idl-sol/internal/logic/eventparser/bonkswap"
	"dex-idl-sol/internal/logic/eventparser/common"
	"dex-idl-sol/internal/logic/eventparser/jupiterv6"
	"dex-idl-sol/internal/logic/eventparser/meteoradlmm"
	"dex-idl-sol/internal/logic/eventparser/orcawhirlpool"
	"dex-idl-sol/internal/logic/eventparser/pumpfun"
	"dex-idl-sol/internal/logic/eventparser/pumpfunamm"
	"dex-idl-sol/internal/logic/eventparser/pythreceiver"
	"dex-idl-sol/internal/logic/eventparser/raydiumclmm"
	"dex-idl-sol/internal/logic/eventparser/raydiumcpmm"
	"dex-idl-sol/internal/logic/eventparser/raydiumlaunchpad"
	"dex-idl-sol/internal/logic/eventparser/raydiumv4"
	"dex-idl-sol/internal/logic/eventparser/spltoken"
	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/logger"
	"dex-idl-sol/internal/pkg/types"
)

type Program = common.Program

// registrars 是所有协议包的注册函数，顺序无关
var registrars = []common.Registrar{
	spltoken.Register,
	pumpfun.Register,
	pumpfunamm.Register,
	raydiumv4.Register,
	raydiumclmm.Register,
	raydiumcpmm.Register,
	raydiumlaunchpad.Register,
	bonkswap.Register,
	jupiterv6.Register,
	meteoradlmm.Register,
	orcawhirlpool.Register,
	pythreceiver.Register,
}

// RegisterAll 将所有协议注册进 m
func RegisterAll(m map[types.Pubkey]*Program) {
	for _, register := range registrars {
		register(m)
	}
}

// Parser 按 program id 路由指令与日志，构造后只读，可在多个 goroutine 间共享
type Parser struct {
	programs map[types.Pubkey]*Program
	byName   map[string]*Program
}

// NewParser 校验并收录 programs；enabled 为 nil 时全部启用
func NewParser(programs map[types.Pubkey]*Program, enabled func(name string) bool) (*Parser, error) {
	p := &Parser{
		programs: make(map[types.Pubkey]*Program, len(programs)),
		byName:   make(map[string]*Program, len(programs)),
	}
	for id, prog := range programs {
		if err := prog.Validate(); err != nil {
			return nil, err
		}
		if id != prog.ID {
			return nil, fmt.Errorf("program %s registered under %s", prog.Name, id)
		}
		if enabled != nil && !enabled(prog.Name) {
			continue
		}
		p.programs[id] = prog
		// 同名程序（如 Token 与 Token-2022）按名称查找时返回任意一个，schema 相同
		p.byName[prog.Name] = prog
	}
	return p, nil
}

// NewDefaultParser 使用全部已知协议构造 Parser
func NewDefaultParser(enabled func(name string) bool) (*Parser, error) {
	m := make(map[types.Pubkey]*Program)
	RegisterAll(m)
	return NewParser(m, enabled)
}

func (p *Parser) Program(id types.Pubkey) (*Program, bool) {
	prog, ok := p.programs[id]
	return prog, ok
}

func (p *Parser) ProgramByName(name string) (*Program, bool) {
	prog, ok := p.byName[name]
	return prog, ok
}

// ProgramIDs 返回已启用的 program id，按 base58 排序，用于订阅过滤
func (p *Parser) ProgramIDs() []string {
	ids := make([]string, 0, len(p.programs))
	for id := range p.programs {
		ids = append(ids, id.String())
	}
	sort.Strings(ids)
	return ids
}

// ExtractRecords 解码一笔交易中所有已注册程序的指令与事件，按 (ix, inner, seq) 位置排序返回。
// 单条指令解码失败只跳过该条，panic 时整笔交易返回 nil。
func (p *Parser) ExtractRecords(tx *core.AdaptedTx) (result []*core.Record) {
	ctx := common.BuildParserContext(tx)
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("[EventParser:ExtractRecords] panic tx=%s: %+v\nstack: %s", ctx.TxHash, r, debug.Stack())
			result = nil
		}
	}()

	seqs := make(map[*core.AdaptedInstruction]uint16)
	for _, ix := range tx.Instructions {
		prog, ok := p.programs[ix.ProgramID]
		if !ok {
			continue
		}
		p.extractInstruction(ctx, prog, ix)
	}
	p.extractLogs(ctx, seqs)

	records := ctx.TakeRecords()
	slices.SortStableFunc(records, func(a, b *core.Record) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})
	return records
}

// extractInstruction 解码单条指令：带 self-CPI 前缀的视为事件，其余按指令解码并解析账户
func (p *Parser) extractInstruction(ctx *common.ParserContext, prog *Program, ix *core.AdaptedInstruction) {
	if prog.Events != nil && idl.IsSelfCPI(ix.Data) {
		d, err := prog.Events.Decode(ix.Data, prog.OnUnrecognized)
		if err != nil {
			reportDecodeError(ctx, prog, ix, core.KindEvent, err)
			return
		}
		ctx.AddRecord(ctx.NewRecord(prog, ix, 0, core.KindEvent, d), idl.NamedAccounts{})
		return
	}
	if prog.Instructions == nil {
		return
	}

	decoded, err := prog.Instructions.DecodeInstruction(ix.Data, ix.Accounts, prog.OnUnrecognized)
	if err != nil {
		reportDecodeError(ctx, prog, ix, core.KindInstruction, err)
		return
	}
	ctx.AddRecord(ctx.NewRecord(prog, ix, 0, core.KindInstruction, decoded.Decoded), decoded.Accounts)
}

type logFrame struct {
	prog *Program // 未注册的程序为 nil
	ix   *core.AdaptedInstruction
}

// extractLogs 根据 invoke / success / failed 维护调用栈，把 "Program data:" 与
// "Program log: <prefix>" 归属到当前栈顶程序对应的指令上。
// 第 k 个 invoke 对应展平后的第 k 条指令。
func (p *Parser) extractLogs(ctx *common.ParserContext, seqs map[*core.AdaptedInstruction]uint16) {
	instrs := ctx.Tx.Instructions
	next := 0
	var stack []logFrame

	for _, raw := range ctx.Tx.LogMessages {
		line := parseLogLine(raw)
		switch line.kind {
		case logInvoke:
			var ix *core.AdaptedInstruction
			if next < len(instrs) && instrs[next].ProgramID == line.program {
				ix = instrs[next]
			} else {
				logger.Debugf("[EventParser:extractLogs] invoke 与指令不对齐，停止日志解码: tx=%s, program=%s, pos=%d",
					ctx.TxHash, line.program, next)
				return
			}
			next++
			prog := p.programs[line.program]
			stack = append(stack, logFrame{prog: prog, ix: ix})

		case logSuccess, logFailed:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case logData:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			if top.prog == nil || top.prog.Events == nil {
				continue
			}
			data, err := decodeLogData(line.text)
			if err != nil {
				logger.Errorf("[EventParser:extractLogs] Program data 非法 base64: tx=%s, program=%s, ix=%d, inner=%d, err=%v",
					ctx.TxHash, top.prog.Name, top.ix.IxIndex, top.ix.InnerIndex, err)
				continue
			}
			p.addLogRecord(ctx, seqs, top, top.prog.Events, core.KindEvent, data)

		case logMessage:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			if top.prog == nil || top.prog.LogEvents == nil || !strings.HasPrefix(line.text, top.prog.LogPrefix) {
				continue
			}
			data, err := decodeLogData(line.text[len(top.prog.LogPrefix):])
			if err != nil {
				logger.Errorf("[EventParser:extractLogs] %s 非法 base64: tx=%s, ix=%d, inner=%d, err=%v",
					strings.TrimSpace(top.prog.LogPrefix), ctx.TxHash, top.ix.IxIndex, top.ix.InnerIndex, err)
				continue
			}
			p.addLogRecord(ctx, seqs, top, top.prog.LogEvents, core.KindLogEvent, data)

		case logTruncated:
			return
		}
	}
}

func (p *Parser) addLogRecord(
	ctx *common.ParserContext,
	seqs map[*core.AdaptedInstruction]uint16,
	frame logFrame,
	registry *idl.Registry,
	kind core.RecordKind,
	data []byte,
) {
	d, err := registry.Decode(data, frame.prog.OnUnrecognized)
	if err != nil {
		reportDecodeError(ctx, frame.prog, frame.ix, kind, err)
		return
	}
	seqs[frame.ix]++
	ctx.AddRecord(ctx.NewRecord(frame.prog, frame.ix, seqs[frame.ix], kind, d), idl.NamedAccounts{})
}

// reportDecodeError 未命中判别符只记 debug，其余（负载损坏、账户缺失）记 error
func reportDecodeError(ctx *common.ParserContext, prog *Program, ix *core.AdaptedInstruction, kind core.RecordKind, err error) {
	if errors.Is(err, idl.ErrUnrecognized) {
		logger.Debugf("[EventParser:%s] 未识别的 %s: tx=%s, ix=%d, inner=%d, err=%v",
			prog.Name, kind, ctx.TxHash, ix.IxIndex, ix.InnerIndex, err)
		return
	}
	logger.Errorf("[EventParser:%s] %s 解码失败: tx=%s, ix=%d, inner=%d, err=%v",
		prog.Name, kind, ctx.TxHash, ix.IxIndex, ix.InnerIndex, err)
}

// DecodeData 不依赖交易上下文解码一段原始数据：依次尝试事件（带 self-CPI 前缀时）、指令和日志事件
func DecodeData(prog *Program, data []byte, accounts []types.Pubkey) (core.RecordKind, idl.Instruction, error) {
	if prog.Events != nil && idl.IsSelfCPI(data) {
		d, err := prog.Events.Decode(data, idl.ReturnError)
		return core.KindEvent, idl.Instruction{Decoded: d}, err
	}

	var firstErr error
	if prog.Instructions != nil {
		ix, err := prog.Instructions.DecodeInstruction(data, accounts, idl.ReturnError)
		if err == nil || !errors.Is(err, idl.ErrUnrecognized) {
			return core.KindInstruction, ix, err
		}
		firstErr = err
	}
	for _, candidate := range []struct {
		registry *idl.Registry
		kind     core.RecordKind
	}{
		{prog.Events, core.KindEvent},
		{prog.LogEvents, core.KindLogEvent},
	} {
		if candidate.registry == nil {
			continue
		}
		d, err := candidate.registry.Decode(data, idl.ReturnError)
		if err == nil || !errors.Is(err, idl.ErrUnrecognized) {
			return candidate.kind, idl.Instruction{Decoded: d}, err
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = fmt.Errorf("program %s: no registry", prog.Name)
	}
	return 0, idl.Instruction{}, firstErr
}
