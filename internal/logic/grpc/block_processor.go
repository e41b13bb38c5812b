package grpc

import (
	"context"
	"errors"
	"time"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"github.com/zeromicro/go-zero/core/logx"

	"dex-idl-sol/internal/config"
	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/core"
	"dex-idl-sol/internal/logic/dispatcher"
	"dex-idl-sol/internal/logic/eventparser"
	"dex-idl-sol/internal/logic/progress"
	"dex-idl-sol/internal/logic/txadapter"
	"dex-idl-sol/internal/pkg/mq"
	"dex-idl-sol/internal/pkg/types"
	"dex-idl-sol/internal/svc"
	"dex-idl-sol/pkg/utils"
)

// SlotProgress 是 slot 处理进度的读写接口，由 progress.RedisProgressStore 实现
type SlotProgress interface {
	GetSlotStatus(ctx context.Context, slot uint64) (progress.SlotStatus, error)
	MarkSlotStatus(ctx context.Context, slot uint64, status progress.SlotStatus) error
}

// JobSender 发送 KafkaJob，签名与 mq.SendKafkaJobs 去掉 producer 后一致
type JobSender func(ctx context.Context, jobs []*mq.KafkaJob, perMessageTimeout time.Duration) (ok []*mq.KafkaJob, failed []mq.KafkaSendResult)

type BlockProcessor struct {
	parser    *eventparser.Parser
	progress  SlotProgress
	send      JobSender
	checker   *SlotChecker // 可为 nil，表示不做漏块检测
	kafkaConf config.KafkaProducerConfig
	timeConf  config.TimeConfig

	lastSlot  uint64
	blockChan chan *pb.SubscribeUpdateBlock // 接收 block 的 channel
	ctx       context.Context
	cancel    func(err error)
	logx.Logger
}

// blockResult 是单个 block 的处理结果
type blockResult struct {
	skipped bool
	records int
	jobs    int
	failed  int
	status  progress.SlotStatus
}

func NewBlockProcessor(sc *svc.GrpcServiceContext, blockChan chan *pb.SubscribeUpdateBlock, checker *SlotChecker) *BlockProcessor {
	producer := sc.Producer
	send := func(ctx context.Context, jobs []*mq.KafkaJob, timeout time.Duration) ([]*mq.KafkaJob, []mq.KafkaSendResult) {
		return mq.SendKafkaJobs(ctx, producer, jobs, timeout)
	}
	return newBlockProcessor(sc.Parser, sc.Progress, send, sc.Config.KafkaProducerConf, sc.Config.TimeConf, blockChan, checker)
}

func newBlockProcessor(
	parser *eventparser.Parser,
	store SlotProgress,
	send JobSender,
	kafkaConf config.KafkaProducerConfig,
	timeConf config.TimeConfig,
	blockChan chan *pb.SubscribeUpdateBlock,
	checker *SlotChecker,
) *BlockProcessor {
	ctx, cancel := context.WithCancelCause(context.Background())
	return &BlockProcessor{
		parser:    parser,
		progress:  store,
		send:      send,
		checker:   checker,
		kafkaConf: kafkaConf,
		timeConf:  timeConf,
		blockChan: blockChan,
		Logger:    logx.WithContext(ctx).WithFields(logx.Field("service", "block_processor")),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (p *BlockProcessor) Start() {
	for {
		select {
		case <-p.ctx.Done():
			return
		case block, ok := <-p.blockChan:
			if !ok {
				return
			}
			p.procBlock(block)
			if len(p.blockChan) > 10 {
				p.Debugf("block chan len:%v", len(p.blockChan))
			}
		}
	}
}

func (p *BlockProcessor) Stop() {
	p.cancel(errors.New("service stop"))
}

func (p *BlockProcessor) procBlock(block *pb.SubscribeUpdateBlock) (res blockResult) {
	startTime := time.Now()
	defer func() {
		p.Infof("区块处理总耗时: %v, slot: %d, records: %d, jobs: %d, failed: %d",
			time.Since(startTime), block.Slot, res.records, res.jobs, res.failed)
	}()

	p.trackSlotGap(block.Slot)

	// 1. 已处理过的 slot 直接跳过（重连后服务端可能重推）
	status, err := p.progress.GetSlotStatus(p.ctx, block.Slot)
	if err != nil {
		p.Errorf("读取 slot 进度失败，继续处理: slot=%d, err=%v", block.Slot, err)
	} else if status.Done() {
		p.Infof("slot 已处理，跳过: slot=%d", block.Slot)
		return blockResult{skipped: true, status: status}
	}

	// 2. 过滤合法交易
	validTxs := make([]*pb.SubscribeUpdateTransactionInfo, 0, len(block.Transactions))
	for _, tx := range block.Transactions {
		if txadapter.IsValidGrpcTx(tx) {
			validTxs = append(validTxs, tx)
		}
	}

	// 3. 并发解码
	txCtx := buildTxContext(block)
	results := utils.ParallelMap(validTxs, consts.CpuCount+2,
		func(tx *pb.SubscribeUpdateTransactionInfo) []*core.Record {
			return p.decodeTx(txCtx, tx)
		})

	total := 0
	for _, list := range results {
		total += len(list)
	}
	records := make([]*core.Record, 0, total)
	for _, list := range results {
		records = append(records, list...)
	}
	res.records = len(records)
	p.Debugf("总tx数量: %v, 有效tx数量: %v, 记录数量: %v", len(block.Transactions), len(validTxs), len(records))

	// 4. 构造并发送 KafkaJob
	jobs, skipped := dispatcher.BuildRecordJobs(records, p.kafkaConf.Topic, p.kafkaConf.Partitions, p.kafkaConf.Encoding)
	res.jobs = len(jobs)
	if skipped > 0 {
		p.Errorf("记录编码失败: slot=%d, skipped=%d", block.Slot, skipped)
	}
	if len(jobs) > 0 {
		ctx, cancel := context.WithTimeout(p.ctx, time.Duration(p.timeConf.SlotDispatchTimeoutMs)*time.Millisecond)
		_, failed := p.send(ctx, jobs, time.Duration(p.timeConf.EventSendTimeoutMs)*time.Millisecond)
		cancel()
		res.failed = len(failed)
		for i, f := range failed {
			if i >= 3 {
				break
			}
			p.Errorf("Kafka 发送失败: slot=%d, partition=%d, err=%v", block.Slot, f.Job.Partition, f.Err)
		}
	}

	// 5. 记录进度：有发送失败的记录标记 invalid，等待补偿
	res.status = progress.SlotProcessed
	if res.failed > 0 {
		res.status = progress.SlotInvalid
	}
	if err := p.progress.MarkSlotStatus(p.ctx, block.Slot, res.status); err != nil {
		p.Errorf("写入 slot 进度失败: slot=%d, status=%s, err=%v", block.Slot, res.status, err)
	}
	return res
}

func (p *BlockProcessor) decodeTx(txCtx *core.TxContext, tx *pb.SubscribeUpdateTransactionInfo) []*core.Record {
	adaptedTx, err := txadapter.AdaptGrpcTx(txCtx, tx)
	if err != nil {
		p.Errorf("交易适配失败: slot=%d, txIndex=%d, err=%v", txCtx.Slot, tx.Index, err)
		return nil
	}
	return p.parser.ExtractRecords(adaptedTx)
}

// trackSlotGap 发现 slot 不连续时提交给 SlotChecker 确认是空块还是漏推
func (p *BlockProcessor) trackSlotGap(slot uint64) {
	if p.lastSlot > 0 && slot > p.lastSlot+1 && p.checker != nil {
		p.checker.Submit(p.lastSlot+1, slot-1)
	}
	if slot > p.lastSlot {
		p.lastSlot = slot
	}
}

func buildTxContext(block *pb.SubscribeUpdateBlock) *core.TxContext {
	// blockHash 解析失败只打日志，使用零值
	blockHash, err := types.HashFromBase58(block.Blockhash)
	if err != nil {
		logx.Errorf("[严重] BlockHash 无法解析，将使用零值：slot=%d, blockhash=%s, err=%v",
			block.Slot, block.Blockhash, err)
	}

	txCtx := &core.TxContext{
		Slot:       block.Slot,
		ParentSlot: block.ParentSlot,
		BlockHash:  blockHash,
	}
	if block.BlockTime != nil {
		txCtx.BlockTime = block.BlockTime.Timestamp
	}
	if block.BlockHeight != nil {
		txCtx.BlockHeight = block.BlockHeight.BlockHeight
	}
	return txCtx
}
