package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/conf"
)

const grpcYaml = `
logger:
  format: json
  level: debug
kafka_producer:
  brokers: 127.0.0.1:9092
  partitions: 6
redis:
  addr: 127.0.0.1:6379
decode:
  protocols: [pumpfun, raydiumv4]
time_conf: {}
grpc:
  endpoint: grpc.example.com:443
  x_token: secret
`

func TestLoadGrpcConfigDefaults(t *testing.T) {
	var c GrpcConfig
	require.NoError(t, conf.LoadFromYamlBytes([]byte(grpcYaml), &c))

	assert.Equal(t, "json", c.LogConf.Format)
	assert.Equal(t, "debug", c.LogConf.Level)
	assert.Equal(t, "solana-idl-records", c.KafkaProducerConf.Topic)
	assert.Equal(t, 6, c.KafkaProducerConf.Partitions)
	assert.Equal(t, "json", c.KafkaProducerConf.Encoding)
	assert.Equal(t, 24*time.Hour, c.RedisConf.TTL())
	assert.Equal(t, "grpc", c.RedisConf.Stream)
	assert.Equal(t, "127.0.0.1:6379", c.RedisConf.ToRedisOptions().Addr)
	assert.Equal(t, 10, c.Grpc.StreamPingIntervalSec)
	assert.Equal(t, 3000, c.TimeConf.SlotDispatchTimeoutMs)
	require.NoError(t, c.DecodeConf.Validate())

	opt := c.KafkaProducerConf.ToKafkaOption()
	require.Len(t, opt.Topics, 1)
	assert.Equal(t, "solana-idl-records", opt.Topics[0].Topic)
	assert.Equal(t, 6, opt.Topics[0].Partitions)
}

func TestLoadGrpcConfigMissingRequired(t *testing.T) {
	var c GrpcConfig
	assert.Error(t, conf.LoadFromYamlBytes([]byte("logger:\n  level: info\n"), &c))
}

func TestDecodeConfig(t *testing.T) {
	all := DecodeConfig{}
	assert.True(t, all.Enabled("jupiterv6"))

	some := DecodeConfig{Protocols: []string{"pumpfun"}}
	assert.True(t, some.Enabled("pumpfun"))
	assert.False(t, some.Enabled("raydiumv4"))

	bad := DecodeConfig{Protocols: []string{"pumpfun", "uniswap"}}
	assert.ErrorContains(t, bad.Validate(), "uniswap")
}

func TestLoadDecodeTxConfigEmpty(t *testing.T) {
	var c DecodeTxConfig
	require.NoError(t, conf.LoadFromYamlBytes([]byte("logger: {}\nrpc: {}\n"), &c))
	assert.Equal(t, "https://api.mainnet-beta.solana.com", c.RpcConf.Endpoint)
	assert.Equal(t, "console", c.LogConf.Format)
}
