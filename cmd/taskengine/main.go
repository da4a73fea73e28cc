package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/taskengine/pkg/config"
	"github.com/dmitrymomot/taskengine/pkg/engine"
	"github.com/dmitrymomot/taskengine/pkg/logger"
	"github.com/dmitrymomot/taskengine/pkg/task"
	"github.com/dmitrymomot/taskengine/pkg/taskfile"
)

// echoTaskType is the content type handled by the demo executable.
const echoTaskType = 1

type appConfig struct {
	TasksFile string `env:"TASKENGINE_TASKS_FILE"`
}

func main() {
	var logCfg logger.Config
	config.MustLoad(&logCfg)

	logOpts, err := logCfg.Options()
	if err != nil {
		slog.Error("invalid log configuration", logger.Error(err))
		os.Exit(1)
	}
	log := logger.New(append(logOpts, logger.WithContextExtractors(engine.LogExtractor()))...)
	logger.SetAsDefault(log)

	var appCfg appConfig
	config.MustLoad(&appCfg)

	engineCfg, err := engine.LoadConfig()
	if err != nil {
		log.Error("failed to load engine configuration", logger.Error(err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, log, engineCfg, appCfg.TasksFile); err != nil {
		log.Error("taskengine stopped with error", logger.Error(err))
		os.Exit(1)
	}

	log.Info("shutdown complete")
}

func run(ctx context.Context, log *slog.Logger, cfg engine.Config, tasksFile string) error {
	store := engine.NewMemoryStore()

	d, err := engine.NewDispatcher(store, append(cfg.Options(), engine.WithLogger(log))...)
	if err != nil {
		return err
	}

	if err := d.Register(echoTaskType, task.ContentExecutable(echo(log))); err != nil {
		return err
	}

	tasks, err := loadTasks(ctx, tasksFile)
	if err != nil {
		return err
	}
	for _, t := range tasks {
		id, err := d.Submit(ctx, t)
		if err != nil {
			return err
		}
		log.Info("task submitted",
			logger.TaskID(id),
			logger.TaskType(t.Content().Type()),
			slog.String("plan", t.Plan().String()))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(d.Run(gctx))
	return g.Wait()
}

func echo(log *slog.Logger) task.ContentFunc {
	return func(ctx context.Context, content *task.Content, plan *task.Plan, _ *task.Context) task.Result {
		log.InfoContext(ctx, "echo",
			slog.String("content", content.String()),
			logger.Instant("last", plan.Last()))
		return task.ResultSuccess
	}
}

// loadTasks reads task definitions from path, or returns the built-in demo
// task when no file is configured.
func loadTasks(ctx context.Context, path string) ([]*task.Task, error) {
	if path != "" {
		return taskfile.Load(ctx, path)
	}
	t, err := demoTask()
	if err != nil {
		return nil, err
	}
	return []*task.Task{t}, nil
}

func demoTask() (*task.Task, error) {
	content, err := task.NewContentBuilder(echoTaskType).
		AddString("message", "hello").
		AddInt("count", 3).
		Build()
	if err != nil {
		return nil, err
	}

	plan, err := task.NewPlanBuilder().
		PriorityHigh().
		StartAfterSeconds(1).
		EnableSchedule().Max(5).IntervalInSeconds(2).DeadlineAfterMinutes(1).
		Build()
	if err != nil {
		return nil, err
	}

	return task.New(content, plan)
}
