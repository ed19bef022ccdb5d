package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	syllabusv1 "github.com/coursedeck/syllabus-tracker/gen/proto/syllabus/v1"
	"github.com/coursedeck/syllabus-tracker/internal/common"
	"github.com/coursedeck/syllabus-tracker/internal/export"
	"github.com/coursedeck/syllabus-tracker/internal/extract"
	"github.com/coursedeck/syllabus-tracker/internal/llm"
	"github.com/coursedeck/syllabus-tracker/internal/llm/openai"
	"github.com/coursedeck/syllabus-tracker/internal/pipeline"
	"github.com/coursedeck/syllabus-tracker/internal/repository"
	"github.com/coursedeck/syllabus-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health OK")

	courses := repository.NewCourseRepository(entc, logger)
	assignments := repository.NewAssignmentRepository(entc, logger)
	files := repository.NewSyllabusFileRepository(entc, logger)
	jobs := repository.NewParseJobRepository(entc, logger)

	extractor := extract.NewExtractor(logger)

	// No API key means the deterministic pipeline runs alone; extraction
	// still succeeds, just without the AI fallback for sparse documents.
	var fallback llm.FallbackExtractor
	modelName := ""
	if cfg.LLM.APIKey != "" {
		fallback = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		modelName = cfg.LLM.Model
		logger.Info("AI fallback enabled", "model", modelName)
	} else {
		logger.Info("AI fallback disabled: OPENAI_API_KEY not set")
	}

	pipe := pipeline.New(logger, pipeline.Config{
		MinTextLength: cfg.Parser.MinTextLength,
		AITimeout:     cfg.LLM.Timeout,
	}, extractor, fallback)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewSyllabusService(server.Deps{
		Extractor:   extractor,
		Pipeline:    pipe,
		Courses:     courses,
		Assignments: assignments,
		Files:       files,
		Jobs:        jobs,
		Exporter:    export.NewService(courses, assignments, logger),
		ModelName:   modelName,
	}, logger)
	syllabusv1.RegisterSyllabusServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
