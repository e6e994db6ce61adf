package worker

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"gympoint/internal/application/mail"
	"gympoint/internal/infrastructure/config"
	"gympoint/internal/infrastructure/database"
	"gympoint/internal/infrastructure/email"
	"gympoint/internal/infrastructure/queue"
	"gympoint/internal/infrastructure/repository"
	mailtemplate "gympoint/internal/infrastructure/template"
	"gympoint/internal/shared/biztime"
	"gympoint/internal/shared/constants"
	"gympoint/internal/shared/logger"
	"gympoint/internal/shared/services/markdown"
)

var (
	env        string
	configPath string
	limit      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Start the background job worker",
		Long:  `Consume queued jobs from Redis and deliver registration and cancellation mails.`,
		RunE:  run,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newFailedCommand())

	return cmd
}

func newFailedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "failed",
		Short: "List jobs that exhausted their retries",
		RunE:  runFailed,
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of jobs to show")

	return cmd
}

func setup() (*config.Config, logger.Interface, error) {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, logger.NewLogger().Named("worker"), nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	redisClient, err := database.OpenRedis(context.Background(), &cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	worker, err := NewWorker(cfg, database.Get(), redisClient, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Infow("worker started",
		"environment", env,
		"queues", worker.Keys(),
		"concurrency", cfg.Queue.Concurrency)

	if err := worker.Run(ctx); err != nil {
		return fmt.Errorf("worker stopped with error: %w", err)
	}

	log.Infow("worker exited gracefully")
	return nil
}

func runFailed(cmd *cobra.Command, args []string) error {
	_, log, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	rows, err := repository.NewFailedJobRepository(database.Get(), log).ListRecent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "JOB ID\tQUEUE\tATTEMPTS\tFAILED AT\tERROR")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			row.JobID, row.Queue, row.Attempts, row.FailedAt.Format("2006-01-02 15:04:05"), row.Error)
	}
	return w.Flush()
}

// NewWorker assembles the queue worker with both mail jobs registered.
// Without an SMTP host mail is only logged.
func NewWorker(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log logger.Interface) (*queue.Worker, error) {
	loader := mailtemplate.NewMailTemplateLoader(cfg.Mail.TemplatesPath, log)
	if err := loader.Load(); err != nil {
		return nil, fmt.Errorf("failed to load mail templates: %w", err)
	}

	formatter, err := email.NewFormatter(cfg.Mail.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail formatter: %w", err)
	}

	renderer := email.NewTemplateRenderer(loader, markdown.NewService(), formatter)
	sender := newSender(cfg, log)

	worker := queue.NewWorker(
		queue.NewRedisBroker(redisClient, cfg.Queue.Prefix),
		repository.NewFailedJobRepository(db, log),
		queue.WorkerConfig{
			ID:              workerID(cfg),
			Concurrency:     cfg.Queue.Concurrency,
			MaxAttempts:     cfg.Queue.MaxAttempts,
			Backoff:         cfg.Queue.Backoff(),
			PollTimeout:     cfg.Queue.PollTimeout(),
			PromoteInterval: cfg.Queue.PromoteInterval(),
		},
		log,
	)

	registrationJob := mail.NewRegistrationMailJob(sender, renderer, log)
	cancellationJob := mail.NewCancellationMailJob(sender, renderer, log)
	worker.Register(registrationJob.Key(), registrationJob)
	worker.Register(cancellationJob.Key(), cancellationJob)

	return worker, nil
}

func workerID(cfg *config.Config) string {
	if cfg.Queue.WorkerID != "" {
		return cfg.Queue.WorkerID
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "worker"
}

func newSender(cfg *config.Config, log logger.Interface) mail.Sender {
	if cfg.Email.SMTPHost == "" {
		log.Warnw("smtp host not configured, mail will only be logged")
		return email.NewLogSender(log)
	}

	return email.NewSMTPSender(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	}, log)
}
