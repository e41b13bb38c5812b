package grpc

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/metadata"

	"dex-idl-sol/internal/config"
	"dex-idl-sol/internal/pkg/logger"
)

// GrpcStreamManager 维护 yellowstone Geyser 订阅，断流或长时间无 block 时自动重连，
// 收到的 block 写入 blockChan
type GrpcStreamManager struct {
	mu                sync.Mutex                    // 保护以下连接状态
	conn              *grpc.ClientConn              // gRPC 连接对象
	client            pb.GeyserClient               // gRPC 客户端
	stream            pb.Geyser_SubscribeClient     // gRPC 订阅流
	stopped           bool                          // 标记是否已经停止
	reconnectAttempts int                           // 已重连次数
	connCtx           context.Context               // 当前连接的 context
	connCancel        context.CancelFunc            // 当前连接的 cancel 函数
	blockChan         chan *pb.SubscribeUpdateBlock // 区块数据通道

	accountInclude    []string      // 订阅过滤：只推送涉及这些程序的交易
	xToken            string        // 认证用的 x-token
	reconnectInterval time.Duration // 重连基础间隔
	pingInterval      time.Duration // Stream 心跳包发送间隔
	blockTimeout      time.Duration // 超过该时长未收到 block 则重连
	sendTimeout       time.Duration // gRPC 发送超时
}

func NewGrpcStreamManager(
	grpcConf config.GrpcStreamConfig,
	accountInclude []string,
	blockChan chan *pb.SubscribeUpdateBlock,
) (*GrpcStreamManager, error) {
	if len(accountInclude) == 0 {
		return nil, errors.New("grpc stream: empty account include filter")
	}

	configTls := &tls.Config{
		InsecureSkipVerify: true,
	}

	dialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(grpcConf.ConnectTimeoutSec)*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		grpcConf.Endpoint,
		grpc.WithTransportCredentials(credentials.NewTLS(configTls)),
		grpc.WithInitialWindowSize(int32(grpcConf.InitialWindowSize)),
		grpc.WithInitialConnWindowSize(int32(grpcConf.InitialConnWindowSize)),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallSendMsgSize(grpcConf.MaxCallSendMsgSize),
			grpc.MaxCallRecvMsgSize(grpcConf.MaxCallRecvMsgSize),
		),
		grpc.WithBlock(),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                time.Duration(grpcConf.KeepalivePingIntervalSec) * time.Second,
			Timeout:             time.Duration(grpcConf.KeepalivePingTimeoutSec) * time.Second,
			PermitWithoutStream: true,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect %s: %w", grpcConf.Endpoint, err)
	}

	return &GrpcStreamManager{
		conn:              conn,
		client:            pb.NewGeyserClient(conn),
		blockChan:         blockChan,
		accountInclude:    accountInclude,
		xToken:            grpcConf.XToken,
		reconnectInterval: time.Duration(grpcConf.ReconnectIntervalSec) * time.Second,
		pingInterval:      time.Duration(grpcConf.StreamPingIntervalSec) * time.Second,
		blockTimeout:      time.Duration(grpcConf.RecvTimeoutSec) * time.Second,
		sendTimeout:       time.Duration(grpcConf.SendTimeoutSec) * time.Second,
	}, nil
}

func (m *GrpcStreamManager) Start() {
	m.mustConnect()
}

func (m *GrpcStreamManager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopped = true
	if m.connCancel != nil {
		m.connCancel()
		m.connCancel = nil
	}
	if m.conn != nil {
		if err := m.conn.Close(); err != nil {
			logger.Warnf("[GrpcStream:Stop] 关闭连接失败: %v", err)
		}
	}
}

// mustConnect 循环直到连接成功或被 Stop
func (m *GrpcStreamManager) mustConnect() {
	for {
		m.mu.Lock()
		if m.stopped {
			m.mu.Unlock()
			return
		}
		attempts := m.reconnectAttempts
		m.reconnectAttempts++
		m.mu.Unlock()

		if attempts > 0 {
			if attempts > 3 {
				time.Sleep(m.reconnectInterval * 2)
			} else {
				time.Sleep(m.reconnectInterval)
			}
		}
		logger.Infof("[GrpcStream:connect] 开始连接: attempt=%d, programs=%d", attempts+1, len(m.accountInclude))
		err := m.connect()
		if err == nil {
			return
		}
		logger.Warnf("[GrpcStream:connect] 连接失败，稍后重试: %v", err)
	}
}

func buildSubscribeRequest(accountInclude []string) *pb.SubscribeRequest {
	blocks := make(map[string]*pb.SubscribeRequestFilterBlocks)
	blocks["blocks"] = &pb.SubscribeRequestFilterBlocks{
		AccountInclude:      accountInclude,
		IncludeTransactions: boolPtr(true),
		IncludeAccounts:     boolPtr(false), // 只需要交易，账户更新不解码
		IncludeEntries:      boolPtr(false),
	}
	commitment := pb.CommitmentLevel_CONFIRMED
	return &pb.SubscribeRequest{
		Blocks:     blocks,
		Commitment: &commitment,
	}
}

// connect 只尝试一次连接
func (m *GrpcStreamManager) connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return errors.New("manager is stopped")
	}

	// 先关闭旧的 context，让旧 goroutine 退出
	if m.connCancel != nil {
		m.connCancel()
		m.connCancel = nil
	}
	m.connCtx, m.connCancel = context.WithCancel(context.Background())

	metaCtx := metadata.NewOutgoingContext(
		m.connCtx,
		metadata.New(map[string]string{"x-token": m.xToken}),
	)
	stream, err := m.client.Subscribe(metaCtx)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	req := buildSubscribeRequest(m.accountInclude)
	if err := sendWithTimeout(m.connCtx, stream.Send, req, m.sendTimeout); err != nil {
		return fmt.Errorf("send subscribe request: %w", err)
	}

	m.stream = stream
	m.reconnectAttempts = 0
	logger.Infof("[GrpcStream:connect] 订阅建立成功")

	go m.pingLoop(m.connCtx, stream)
	go m.blockRecvLoop(m.connCtx, stream)
	return nil
}

func (m *GrpcStreamManager) blockRecvLoop(ctx context.Context, stream pb.Geyser_SubscribeClient) {
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		update, err := stream.Recv()
		now := time.Now()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, io.EOF) {
				logger.Warnf("[GrpcStream:recv] 服务端关闭订阅 (EOF)，重连")
				m.reconnect()
				return
			}
			logger.Errorf("[GrpcStream:recv] 接收失败: %v", err)
			if m.reconnectIfBlockTimeout(last) {
				return
			}
			time.Sleep(100 * time.Millisecond)
			continue
		}

		if u, ok := update.GetUpdateOneof().(*pb.SubscribeUpdate_Block); ok {
			if u.Block.BlockTime != nil {
				latency := now.UnixMilli() - u.Block.BlockTime.Timestamp*1000
				logger.Debugf("[GrpcStream:recv] 收到区块: slot=%d, txs=%d, latency=%dms",
					u.Block.Slot, len(u.Block.Transactions), latency)
			}
			select {
			case m.blockChan <- u.Block:
			case <-ctx.Done():
				return
			}
			last = now
		}

		if m.reconnectIfBlockTimeout(last) {
			return
		}
	}
}

// sendWithTimeout 带超时的 Send
func sendWithTimeout[T any](ctx context.Context, sendFunc func(T) error, req T, timeout time.Duration) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- sendFunc(req)
	}()

	select {
	case <-timeoutCtx.Done():
		return timeoutCtx.Err()
	case err := <-done:
		return err
	}
}

// pingLoop 应用层心跳，失败只记日志，由 block 超时触发重连
func (m *GrpcStreamManager) pingLoop(ctx context.Context, stream pb.Geyser_SubscribeClient) {
	ticker := time.NewTicker(m.pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingReq := &pb.SubscribeRequest{
				Ping: &pb.SubscribeRequestPing{Id: 1},
			}
			if err := sendWithTimeout(ctx, stream.Send, pingReq, m.sendTimeout); err != nil {
				logger.Warnf("[GrpcStream:ping] 心跳发送失败: %v", err)
			}
		}
	}
}

func (m *GrpcStreamManager) reconnectIfBlockTimeout(last time.Time) bool {
	if time.Since(last) > m.blockTimeout {
		logger.Warnf("[GrpcStream:recv] %v 未收到 block，触发重连", m.blockTimeout)
		m.reconnect()
		return true
	}
	return false
}

func (m *GrpcStreamManager) reconnect() {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	if m.connCancel != nil {
		m.connCancel()
		m.connCancel = nil
	}
	m.mu.Unlock()

	go m.mustConnect()
}

func boolPtr(b bool) *bool {
	return &b
}
