package common

import (
	"fmt"

	"dex-idl-sol/internal/pkg/idl"
	"dex-idl-sol/internal/pkg/types"
)

// Program 描述一个链上程序的全部解码 schema。
// 构造后只读，由 Parser 在多个 goroutine 间共享。
type Program struct {
	Name string
	ID   types.Pubkey

	// Instructions 解码指令数据（含账户布局）
	Instructions *idl.Registry

	// Events 解码 self-CPI 事件指令与 "Program data: <base64>" 日志
	Events *idl.Registry

	// LogEvents 解码 "Program log: <LogPrefix><base64>" 日志，例如 Raydium V4 的 ray_log
	LogEvents *idl.Registry
	LogPrefix string

	// OnUnrecognized 判别符未命中时的处理方式
	OnUnrecognized idl.OnUnrecognized
}

// Validate 检查 Program 声明是否完整，在注册阶段调用
func (p *Program) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("program %s: empty name", p.ID)
	}
	if p.ID.IsZero() {
		return fmt.Errorf("program %s: empty program id", p.Name)
	}
	if p.Instructions == nil && p.Events == nil && p.LogEvents == nil {
		return fmt.Errorf("program %s: no registry", p.Name)
	}
	if (p.LogEvents == nil) != (p.LogPrefix == "") {
		return fmt.Errorf("program %s: LogEvents and LogPrefix must be set together", p.Name)
	}
	return nil
}

// Registrar 是各协议包对外暴露的注册函数签名
type Registrar func(m map[types.Pubkey]*Program)
