package logger

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFile    = "app.log"
	defaultMaxSizeMB  = 200
	defaultMaxBackups = 20
	defaultMaxAgeDays = 7
)

// LogOption 日志初始化参数，对应配置文件中的 logger 段
type LogOption struct {
	Format   string // console / json
	LogDir   string // 为空时只输出到 stdout
	Level    string // debug / info / warn / error
	Compress bool   // 是否压缩轮转后的旧文件
}

// 未调用 Init 前使用控制台 logger，保证各包在初始化阶段也能打日志
var sugar = newConsole(zapcore.InfoLevel).Sugar()

func newConsole(level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.Lock(os.Stdout),
		level,
	)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

func parseLevel(s string) zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// Init 按配置替换全局 logger。LogDir 非空时同时写入按大小轮转的日志文件。
func Init(opt LogOption) error {
	level := parseLevel(opt.Level)

	var encoder zapcore.Encoder
	if strings.EqualFold(opt.Format, "json") {
		encoder = zapcore.NewJSONEncoder(encoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig())
	}

	sinks := []zapcore.WriteSyncer{zapcore.Lock(os.Stdout)}
	if opt.LogDir != "" {
		if err := os.MkdirAll(opt.LogDir, 0o755); err != nil {
			return err
		}
		sinks = append(sinks, zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(opt.LogDir, defaultLogFile),
			MaxSize:    defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAge:     defaultMaxAgeDays,
			Compress:   opt.Compress,
			LocalTime:  true,
		}))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(sinks...), level)
	SetLogger(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)))
	return nil
}

// SetLogger 直接替换底层 logger，测试中用于接入 observer
func SetLogger(l *zap.Logger) {
	old := sugar
	sugar = l.Sugar()
	_ = old.Sync()
}

// Sync 刷新缓冲区，进程退出前调用
func Sync() {
	_ = sugar.Sync()
}

func Debugf(template string, args ...any) { sugar.Debugf(template, args...) }

func Infof(template string, args ...any) { sugar.Infof(template, args...) }

func Warnf(template string, args ...any) { sugar.Warnf(template, args...) }

func Errorf(template string, args ...any) { sugar.Errorf(template, args...) }
