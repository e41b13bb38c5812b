package progress

// SlotStatus 表示 slot 的处理状态，数值即 Redis 中保存的值
type SlotStatus int

const (
	SlotUnknown   SlotStatus = 0 // Redis 不存在
	SlotProcessed SlotStatus = 1 // 已处理成功
	SlotInvalid   SlotStatus = 2 // 存在发送失败的记录，等待补偿
	SlotPending   SlotStatus = 3 // 处理中
)

func (s SlotStatus) String() string {
	switch s {
	case SlotProcessed:
		return "processed"
	case SlotInvalid:
		return "invalid"
	case SlotPending:
		return "pending"
	default:
		return "unknown"
	}
}

// Done 表示该 slot 不需要再处理
func (s SlotStatus) Done() bool {
	return s == SlotProcessed
}
