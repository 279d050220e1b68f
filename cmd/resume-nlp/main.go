package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"

	"resume-nlp-go/internal/api/handler"
	"resume-nlp-go/internal/api/router"
	"resume-nlp-go/internal/config"
	"resume-nlp-go/internal/extractor"
	appCoreLogger "resume-nlp-go/internal/logger"
	"resume-nlp-go/internal/nlp"
	"resume-nlp-go/internal/storage"
	"resume-nlp-go/internal/tracing"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "internal/config/config.yaml", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg)
	glog.Info("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 链路追踪（可选）
	if cfg.Tracing.Enabled {
		shutdownTracing, err := tracing.Init(ctx, tracing.Options{
			ServiceName:  cfg.Tracing.ServiceName,
			OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
			SampleRatio:  cfg.Tracing.SampleRatio,
		})
		if err != nil {
			glog.Warnf("初始化链路追踪失败: %v", err)
		} else {
			defer func() {
				shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancelShutdown()
				if err := shutdownTracing(shutdownCtx); err != nil {
					glog.Warnf("关闭链路追踪失败: %v", err)
				}
			}()
			glog.Info("链路追踪初始化成功")
		}
	}

	storageManager, err := storage.NewStorage(ctx, cfg)
	if err != nil {
		glog.Fatalf("初始化存储失败: %v", err)
	}
	defer storageManager.Close()
	glog.Info("存储服务初始化成功")

	// NER边车客户端
	var nerOptions []nlp.RecognizerOption
	if cfg.NER.Timeout > 0 {
		nerOptions = append(nerOptions, nlp.WithNERTimeout(time.Duration(cfg.NER.Timeout)*time.Second))
	}
	if cfg.Logger.Level == "debug" {
		nerOptions = append(nerOptions, nlp.WithNERLogger(log.New(os.Stderr, "[NERMain] ", log.LstdFlags)))
	}
	ner := nlp.NewHTTPRecognizer(cfg.NER.ServerURL, nerOptions...)

	// 预热检查，失败不阻塞启动（提取器自带降级策略）
	warmupCtx, cancelWarmup := context.WithTimeout(ctx, 5*time.Second)
	if err := ner.Healthy(warmupCtx); err != nil {
		glog.Warnf("NER服务预热检查失败，实体识别将按请求降级: %v", err)
	} else {
		glog.Info("NER服务连接正常")
	}
	cancelWarmup()

	builder := extractor.NewProfileBuilder(ner,
		extractor.WithModelVersion(cfg.Extractor.ModelVersion),
		extractor.WithBuilderLogger(appCoreLogger.Component("profile_builder")),
	)
	glog.Info("画像构建器初始化成功")

	extractHandler := handler.NewExtractHandler(cfg, storageManager, builder)

	// 启动消费者（RabbitMQ配置了才启动）
	if storageManager.RabbitMQ != nil {
		retryInterval := config.GetDuration(cfg.RabbitMQ.RetryInterval, 5*time.Second)
		consumerErr := extractHandler.StartParsedConsumer(ctx, cfg.RabbitMQ.PrefetchCount)
		for attempt := 1; consumerErr != nil && attempt <= cfg.RabbitMQ.MaxRetries; attempt++ {
			glog.Warnf("启动解析完成事件消费者失败 (第%d次重试): %v", attempt, consumerErr)
			time.Sleep(retryInterval)
			consumerErr = extractHandler.StartParsedConsumer(ctx, cfg.RabbitMQ.PrefetchCount)
		}
		if consumerErr != nil {
			glog.Fatalf("启动解析完成事件消费者失败: %v", consumerErr)
		}
		glog.Info("解析完成事件消费者启动成功")
	} else {
		glog.Info("RabbitMQ未配置，仅提供HTTP接口")
	}

	h := server.New(
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
	)
	h.Use(func(c context.Context, ctx *app.RequestContext) {
		glog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		glog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	})

	router.RegisterRoutes(h, extractHandler)
	glog.Info("HTTP路由注册成功")

	glog.Infof("HTTP 服务器启动中，监听地址: %s", cfg.Server.Address)
	go func() {
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initLogger 初始化zerolog并把Hertz的hlog接到同一个输出上
func initLogger(cfg *config.Config) {
	appCoreLogger.Init(appCoreLogger.Config{
		Level:        cfg.Logger.Level,
		Format:       cfg.Logger.Format,
		TimeFormat:   cfg.Logger.TimeFormat,
		ReportCaller: cfg.Logger.ReportCaller,
	})

	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
	if cfg.Logger.Level == "debug" {
		glog.SetLevel(glog.LevelDebug)
	} else {
		glog.SetLevel(glog.LevelInfo)
	}
}
