package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	zerosvc "github.com/zeromicro/go-zero/core/service"

	"dex-idl-sol/internal/config"
	"dex-idl-sol/internal/logic/grpc"
	"dex-idl-sol/internal/pkg/logger"
	"dex-idl-sol/internal/svc"
)

var configFile = flag.String("f", "etc/grpc.yaml", "the config file")

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
			logger.Sync()
			os.Exit(1)
		}
	}()

	flag.Parse()

	var c config.GrpcConfig
	conf.MustLoad(*configFile, &c)

	if err := logger.Init(c.LogConf.ToLogOption()); err != nil {
		panic(err)
	}
	defer logger.Sync()

	serviceContext, err := svc.NewGrpcServiceContext(c)
	if err != nil {
		panic(err)
	}
	defer serviceContext.Close()

	sg := zerosvc.NewServiceGroup()

	blockChan := make(chan *pb.SubscribeUpdateBlock, 200)

	// 漏块检测：确认漏推的 slot 标记为 invalid，交由补偿任务处理
	var checker *grpc.SlotChecker
	if c.RpcConf.Endpoint != "" {
		checker = grpc.NewSlotChecker(c.RpcConf.Endpoint, func(slot uint64) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := serviceContext.Progress.MarkSlotInvalid(ctx, slot); err != nil {
				logger.Errorf("[SlotChecker] 标记漏推 slot 失败: slot=%d, err=%v", slot, err)
			}
		})
		sg.Add(checker)
	}

	sg.Add(grpc.NewBlockProcessor(serviceContext, blockChan, checker))

	grpcService, err := grpc.NewGrpcStreamManager(c.Grpc, serviceContext.Parser.ProgramIDs(), blockChan)
	if err != nil {
		panic(err)
	}
	sg.Add(grpcService)

	logx.Infof("Starting grpc stream service, programs: %v", serviceContext.Parser.ProgramIDs())

	// BlockProcessor.Start 常驻阻塞，ServiceGroup 放到后台启动
	go sg.Start()

	// 等待退出信号
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logx.Info("Shutting down services...")
	sg.Stop()
}
