package grpc

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"
	"testing"
	"time"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dex-idl-sol/internal/config"
	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/logic/dispatcher"
	"dex-idl-sol/internal/logic/eventparser"
	"dex-idl-sol/internal/logic/progress"
	"dex-idl-sol/internal/pkg/mq"
)

type memProgress struct {
	mu      sync.Mutex
	status  map[uint64]progress.SlotStatus
	readErr error
}

func newMemProgress() *memProgress {
	return &memProgress{status: map[uint64]progress.SlotStatus{}}
}

func (m *memProgress) GetSlotStatus(_ context.Context, slot uint64) (progress.SlotStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return progress.SlotUnknown, m.readErr
	}
	return m.status[slot], nil
}

func (m *memProgress) MarkSlotStatus(_ context.Context, slot uint64, status progress.SlotStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status[slot] = status
	return nil
}

type recordingSender struct {
	calls int
	jobs  []*mq.KafkaJob
	fail  bool
}

func (s *recordingSender) send(_ context.Context, jobs []*mq.KafkaJob, _ time.Duration) ([]*mq.KafkaJob, []mq.KafkaSendResult) {
	s.calls++
	s.jobs = append(s.jobs, jobs...)
	if s.fail {
		failed := make([]mq.KafkaSendResult, 0, len(jobs))
		for _, j := range jobs {
			failed = append(failed, mq.KafkaSendResult{Job: j, Err: errors.New("broker down")})
		}
		return nil, failed
	}
	return jobs, nil
}

func key(b byte) []byte {
	k := make([]byte, 32)
	k[0] = b
	return k
}

func sig(b byte) []byte {
	s := make([]byte, 64)
	s[0] = b
	return s
}

// transferTx 一条 SPL Token transfer：accounts = source, destination, authority(signer)
func transferTx(index uint64, amount uint64) *pb.SubscribeUpdateTransactionInfo {
	data := binary.LittleEndian.AppendUint64([]byte{3}, amount)
	return &pb.SubscribeUpdateTransactionInfo{
		Signature: sig(byte(index + 1)),
		Index:     index,
		Transaction: &pb.Transaction{
			Signatures: [][]byte{sig(byte(index + 1))},
			Message: &pb.Message{
				Header:      &pb.MessageHeader{NumRequiredSignatures: 1},
				AccountKeys: [][]byte{key(1), key(2), key(3), consts.TokenProgram[:]},
				Instructions: []*pb.CompiledInstruction{
					{ProgramIdIndex: 3, Accounts: []byte{1, 2, 0}, Data: data},
				},
			},
		},
		Meta: &pb.TransactionStatusMeta{},
	}
}

func sampleBlock(slot uint64) *pb.SubscribeUpdateBlock {
	vote := transferTx(1, 5)
	vote.IsVote = true
	failed := transferTx(2, 6)
	failed.Meta.Err = &pb.TransactionError{Err: []byte{1}}
	return &pb.SubscribeUpdateBlock{
		Slot:         slot,
		ParentSlot:   slot - 1,
		Blockhash:    "11111111111111111111111111111111",
		BlockTime:    &pb.UnixTimestamp{Timestamp: 1_700_000_000},
		BlockHeight:  &pb.BlockHeight{BlockHeight: slot - 20},
		Transactions: []*pb.SubscribeUpdateTransactionInfo{transferTx(0, 1_000), vote, failed},
	}
}

func newTestProcessor(t *testing.T, store SlotProgress, sender *recordingSender, checker *SlotChecker) *BlockProcessor {
	t.Helper()
	parser, err := eventparser.NewDefaultParser(nil)
	require.NoError(t, err)
	p := newBlockProcessor(parser, store, sender.send,
		config.KafkaProducerConfig{Topic: "idl-records", Partitions: 4, Encoding: dispatcher.EncodingJSON},
		config.TimeConfig{SlotDispatchTimeoutMs: 1000, EventSendTimeoutMs: 500},
		make(chan *pb.SubscribeUpdateBlock, 1), checker)
	t.Cleanup(p.Stop)
	return p
}

func TestProcBlock(t *testing.T) {
	store := newMemProgress()
	sender := &recordingSender{}
	p := newTestProcessor(t, store, sender, nil)

	res := p.procBlock(sampleBlock(100))
	assert.False(t, res.skipped)
	assert.Equal(t, 1, res.records, "vote 与失败交易被过滤")
	assert.Equal(t, 1, res.jobs)
	assert.Zero(t, res.failed)
	assert.Equal(t, progress.SlotProcessed, store.status[100])

	require.Len(t, sender.jobs, 1)
	job := sender.jobs[0]
	assert.Equal(t, "idl-records", job.Topic)
	assert.Equal(t, consts.TokenProgram[:], job.Key)

	_, body, err := dispatcher.DecodeKindPrefix(job.Value)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"name":"transfer"`)
	assert.Contains(t, string(body), `"slot":100`)
}

func TestProcBlockSkipsProcessedSlot(t *testing.T) {
	store := newMemProgress()
	store.status[100] = progress.SlotProcessed
	sender := &recordingSender{}
	p := newTestProcessor(t, store, sender, nil)

	res := p.procBlock(sampleBlock(100))
	assert.True(t, res.skipped)
	assert.Zero(t, sender.calls)
}

func TestProcBlockMarksInvalidOnSendFailure(t *testing.T) {
	store := newMemProgress()
	sender := &recordingSender{fail: true}
	p := newTestProcessor(t, store, sender, nil)

	res := p.procBlock(sampleBlock(101))
	assert.Equal(t, 1, res.failed)
	assert.Equal(t, progress.SlotInvalid, store.status[101])
}

func TestProcBlockProgressReadError(t *testing.T) {
	store := newMemProgress()
	store.readErr = errors.New("redis down")
	sender := &recordingSender{}
	p := newTestProcessor(t, store, sender, nil)

	res := p.procBlock(sampleBlock(102))
	assert.False(t, res.skipped, "读进度失败时仍然处理")
	assert.Equal(t, 1, sender.calls)
}

func TestProcBlockEmptyBlock(t *testing.T) {
	store := newMemProgress()
	sender := &recordingSender{}
	p := newTestProcessor(t, store, sender, nil)

	res := p.procBlock(&pb.SubscribeUpdateBlock{Slot: 103, Blockhash: "bad!"})
	assert.Zero(t, res.records)
	assert.Zero(t, sender.calls)
	assert.Equal(t, progress.SlotProcessed, store.status[103])
}

func TestProcBlockSubmitsSlotGap(t *testing.T) {
	checker := NewSlotChecker("http://127.0.0.1:1", nil)
	t.Cleanup(checker.Stop)
	p := newTestProcessor(t, newMemProgress(), &recordingSender{}, checker)

	p.procBlock(sampleBlock(100))
	p.procBlock(sampleBlock(101))
	p.procBlock(sampleBlock(105))
	p.procBlock(sampleBlock(104)) // 乱序到达不回退

	require.Len(t, checker.rangeCh, 1)
	r := <-checker.rangeCh
	assert.Equal(t, uint64(102), r.From)
	assert.Equal(t, uint64(104), r.To)
}

func TestStartStopsOnClosedChannel(t *testing.T) {
	p := newTestProcessor(t, newMemProgress(), &recordingSender{}, nil)
	done := make(chan struct{})
	go func() {
		p.Start()
		close(done)
	}()
	p.blockChan <- sampleBlock(200)
	close(p.blockChan)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Start 未退出")
	}
}
