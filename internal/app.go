package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ak7sky/net-reduce/internal/config"
	"github.com/ak7sky/net-reduce/internal/core/service"
	"github.com/ak7sky/net-reduce/internal/core/storage/mem"
	grpcserver "github.com/ak7sky/net-reduce/internal/grpc/server"
	"github.com/ak7sky/net-reduce/internal/input"
	"github.com/ak7sky/net-reduce/internal/logger"
	"github.com/ak7sky/net-reduce/internal/output"
	"github.com/ak7sky/net-reduce/internal/parser"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	logLevel   string
	workers    int
	file       string
	output     string
	canonical  bool
	listenAddr string
}

func Run() error {
	return NewCommand().Execute()
}

// NewCommand returns the root netreduce command with its serve subcommand.
func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "netreduce",
		Short: "drop IP prefixes covered by other prefixes of the input",
		Long: `netreduce reads IPv4 and IPv6 prefixes, one per line, and prints only
those not contained in another prefix of the same input.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReduce(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	cmd.PersistentFlags().IntVarP(&opts.workers, "workers", "w", 0, "number of containment check workers, 0 means GOMAXPROCS")

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "input file, stdin if empty")
	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutput, "output format: list, json, yaml")
	cmd.Flags().BoolVar(&opts.canonical, "canonical", false, "print canonical CIDR instead of the input text")

	cmd.AddCommand(newServeCommand(opts))

	return cmd
}

func newServeCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "run the gRPC reduce service",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.listenAddr, "listen", config.DefaultListenAddr, "gRPC listen address")
	return cmd
}

// resolveConfig loads the config file if any and applies flags set on the command line.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.LoadConfig(opts.configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("listen") {
		cfg.ListenAddr = opts.listenAddr
	}

	if !logger.ValidLevel(cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("invalid workers: %d", cfg.Workers)
	}
	return cfg, nil
}

func runReduce(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	appLogger := logger.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())

	var lines []string
	if opts.file != "" {
		lines, err = input.FromFile(opts.file)
	} else {
		lines, err = input.ReadLines(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	prefixes, failures := parser.ParseLines(lines)
	for _, failure := range failures {
		appLogger.Warn("skipping malformed line %d: %q", failure.LineNum, failure.Text)
	}

	kept, err := service.NewReducer(cfg.Workers).Reduce(prefixes)
	if err != nil {
		return err
	}
	appLogger.Debug("reduced %d prefixes to %d, %d lines skipped", len(prefixes), len(kept), len(failures))

	result := make([]string, 0, len(kept))
	for _, prefix := range kept {
		if opts.canonical {
			result = append(result, prefix.String())
		} else {
			result = append(result, prefix.Text)
		}
	}
	return format.Write(cmd.OutOrStdout(), result)
}

func runServe(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	appLogger := logger.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())

	listSrv := service.NewListService(mem.NewListMemStorage(), service.NewReducer(cfg.Workers))
	appServer := grpcserver.Start(listSrv, appLogger, cfg.ListenAddr, cfg.ShutdownTimeout)

	// Waiting signal
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalCh)

	var serveErr error
	select {
	case oss := <-signalCh:
		appLogger.Info("app stops after receiving a signal %s", oss.String())
	case <-cmd.Context().Done():
		appLogger.Info("app stops: %v", cmd.Context().Err())
	case serveErr = <-appServer.ErrCh():
		appLogger.Error("app stops after an err %v", serveErr)
	}

	// Shutdown
	if err = appServer.Shutdown(); err != nil {
		appLogger.Error("app stopped with err %v", err)
		if serveErr == nil {
			serveErr = err
		}
	}
	return serveErr
}
