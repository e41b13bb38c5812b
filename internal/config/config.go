package config

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dex-idl-sol/internal/consts"
	"dex-idl-sol/internal/pkg/logger"
	"dex-idl-sol/internal/pkg/mq"
)

type LogConfig struct {
	Format   string `json:"format,default=console,options=console|json"` // 日志格式，支持 "console" 或 "json"
	LogDir   string `json:"log_dir,optional"`                            // 日志目录，为空时只输出到 stdout
	Level    string `json:"level,default=info"`                          // 日志级别：debug / info / warn / error
	Compress bool   `json:"compress,optional"`                           // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// KafkaProducerConfig 表示 Kafka 生产者相关配置
type KafkaProducerConfig struct {
	Brokers   string `json:"brokers"`             // Kafka broker 地址，多个用英文逗号分隔
	BatchSize int    `json:"batch_size,optional"` // 批处理大小（单位字节）
	LingerMs  int    `json:"linger_ms,default=5"` // 批处理最大延迟（毫秒）

	Topic      string `json:"topic,default=solana-idl-records"`            // 解码记录的 topic
	Partitions int    `json:"partitions,default=12"`                       // 分区数
	Encoding   string `json:"encoding,default=json,options=json|protobuf"` // 记录编码格式
}

func (c *KafkaProducerConfig) ToKafkaOption() mq.KafkaProducerOption {
	return mq.KafkaProducerOption{
		Brokers:   c.Brokers,
		BatchSize: c.BatchSize,
		LingerMs:  c.LingerMs,
		Topics:    []mq.TopicSpec{{Topic: c.Topic, Partitions: c.Partitions}},
	}
}

// RedisConfig slot 处理进度存储
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,optional"`
	DB       int    `json:"db,optional"`
	Stream   string `json:"stream,default=grpc"`   // 进度 key 的命名空间，区分多条数据流
	TTLSec   int    `json:"ttl_sec,default=86400"` // 进度记录过期时间（秒）
}

func (c *RedisConfig) ToRedisOptions() *redis.Options {
	return &redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	}
}

func (c *RedisConfig) TTL() time.Duration {
	return time.Duration(c.TTLSec) * time.Second
}

// RpcConfig Solana JSON-RPC 节点，decodetx 拉取交易使用
type RpcConfig struct {
	Endpoint string `json:"endpoint,default=https://api.mainnet-beta.solana.com"`
}

// DecodeConfig 控制启用哪些协议的解码
type DecodeConfig struct {
	Protocols []string `json:"protocols,optional"` // 为空表示全部启用
}

// Validate 检查协议名是否都受支持
func (c *DecodeConfig) Validate() error {
	for _, p := range c.Protocols {
		if !consts.IsKnownProtocol(p) {
			return fmt.Errorf("unknown protocol %q", p)
		}
	}
	return nil
}

// Enabled 判断协议是否启用
func (c *DecodeConfig) Enabled(protocol string) bool {
	if len(c.Protocols) == 0 {
		return true
	}
	for _, p := range c.Protocols {
		if p == protocol {
			return true
		}
	}
	return false
}

// TimeConfig 表示各种超时配置（单位：毫秒）
type TimeConfig struct {
	SlotDispatchTimeoutMs int `json:"slot_dispatch_timeout_ms,default=3000"` // 每个 slot 的处理最大耗时（Kafka + Redis）
	EventSendTimeoutMs    int `json:"event_send_timeout_ms,default=2000"`    // 单条记录发送到 Kafka 并等待 ack 的超时时间
}

// GrpcStreamConfig gRPC 客户端连接相关配置
type GrpcStreamConfig struct {
	Endpoint string `json:"endpoint"`         // gRPC 服务端地址
	XToken   string `json:"x_token,optional"` // x-token 认证

	// 应用级逻辑心跳（ping）配置
	StreamPingIntervalSec int `json:"stream_ping_interval_sec,default=10"` // 应用层 ping 心跳间隔（秒）

	// gRPC Keepalive 底层连接检测配置
	KeepalivePingIntervalSec int `json:"keepalive_ping_interval_sec,default=30"` // 底层 keepalive 间隔（秒）
	KeepalivePingTimeoutSec  int `json:"keepalive_ping_timeout_sec,default=10"`  // 底层 keepalive 超时（秒）

	// gRPC 窗口大小调优（用于大数据流推送）
	InitialWindowSize     int `json:"initial_window_size,default=16777216"`      // 单流窗口大小（字节）
	InitialConnWindowSize int `json:"initial_conn_window_size,default=33554432"` // 整体连接窗口大小（字节）

	// 消息体大小限制
	MaxCallSendMsgSize int `json:"max_call_send_msg_size,default=4194304"`   // 单条消息最大发送字节数
	MaxCallRecvMsgSize int `json:"max_call_recv_msg_size,default=134217728"` // 单条消息最大接收字节数

	// 超时与重连策略
	ReconnectIntervalSec int `json:"reconnect_interval_sec,default=3"` // 重连最小间隔（秒）
	ConnectTimeoutSec    int `json:"connect_timeout_sec,default=10"`   // 连接建立超时（秒）
	SendTimeoutSec       int `json:"send_timeout_sec,default=5"`       // 发送超时（秒）
	RecvTimeoutSec       int `json:"recv_timeout_sec,default=30"`      // 接收超时（秒），超过未收到 block 则重连
}

// GrpcConfig 是 cmd/grpc 的主配置
type GrpcConfig struct {
	LogConf           LogConfig           `json:"logger"`
	KafkaProducerConf KafkaProducerConfig `json:"kafka_producer"`
	RedisConf         RedisConfig         `json:"redis"`
	DecodeConf        DecodeConfig        `json:"decode,optional"`
	TimeConf          TimeConfig          `json:"time_conf,optional"`
	RpcConf           RpcConfig           `json:"rpc,optional"` // 漏块检测使用
	Grpc              GrpcStreamConfig    `json:"grpc"`
}

// DecodeTxConfig 是 cmd/decodetx 的配置
type DecodeTxConfig struct {
	LogConf    LogConfig    `json:"logger,optional"`
	RpcConf    RpcConfig    `json:"rpc,optional"`
	DecodeConf DecodeConfig `json:"decode,optional"`
}
