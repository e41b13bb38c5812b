package svc

import (
	"context"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/redis/go-redis/v9"

	"dex-idl-sol/internal/config"
	"dex-idl-sol/internal/logic/eventparser"
	"dex-idl-sol/internal/logic/progress"
	"dex-idl-sol/internal/pkg/logger"
	"dex-idl-sol/internal/pkg/mq"
)

// GrpcServiceContext 包含 gRPC 解码服务的共享资源
type GrpcServiceContext struct {
	Config   config.GrpcConfig
	Parser   *eventparser.Parser
	Producer *kafka.Producer
	Redis    *redis.Client
	Progress *progress.RedisProgressStore
}

// NewGrpcServiceContext 按配置初始化解码器、Kafka 生产者与 Redis 进度存储
func NewGrpcServiceContext(c config.GrpcConfig) (*GrpcServiceContext, error) {
	// 1. 解码器：只启用配置中的协议
	if err := c.DecodeConf.Validate(); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	parser, err := eventparser.NewDefaultParser(c.DecodeConf.Enabled)
	if err != nil {
		return nil, fmt.Errorf("build parser: %w", err)
	}

	// 2. Kafka 生产者
	producer, err := mq.NewKafkaProducer(c.KafkaProducerConf.ToKafkaOption())
	if err != nil {
		logger.Errorf("[Svc:init] Kafka producer 初始化失败: %v", err)
		return nil, err
	}

	// 3. Redis 客户端（slot 处理进度）
	rdb := redis.NewClient(c.RedisConf.ToRedisOptions())
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		producer.Close()
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", c.RedisConf.Addr, err)
	}

	sc := &GrpcServiceContext{
		Config:   c,
		Parser:   parser,
		Producer: producer,
		Redis:    rdb,
		Progress: progress.NewRedisProgressStore(rdb, c.RedisConf.Stream, c.RedisConf.TTL()),
	}
	logger.Infof("[Svc:init] gRPC 服务上下文初始化完成: programs=%d, topic=%s, encoding=%s",
		len(parser.ProgramIDs()), c.KafkaProducerConf.Topic, c.KafkaProducerConf.Encoding)
	return sc, nil
}

// Close 关闭服务上下文中的资源
func (sc *GrpcServiceContext) Close() {
	if sc.Producer != nil {
		sc.Producer.Flush(5000)
		sc.Producer.Close()
	}
	if sc.Redis != nil {
		if err := sc.Redis.Close(); err != nil {
			logger.Warnf("[Svc:close] 关闭 Redis 失败: %v", err)
		}
	}
}
