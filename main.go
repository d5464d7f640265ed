package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"syscall"

	"code.cloudfoundry.org/lager"
	"github.com/alphagov/paas-runtime-poller/eventio"
	"github.com/alphagov/paas-runtime-poller/eventstream"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	cfg, err := NewConfigFromEnv()
	if err != nil {
		getDefaultLogger().Error("config", err)
		os.Exit(1)
	}
	logger := cfg.Logger

	ctx, shutdown := context.WithCancel(context.Background())
	defer shutdown()
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Reset(syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-signalChan:
			shutdown()
		case <-ctx.Done():
		}
	}()

	if err := newRootCommand(ctx, cfg).Execute(); err != nil {
		logger.Error("main", err)
		os.Exit(1)
	}
	logger.Info("shutdown")
}

func newRootCommand(ctx context.Context, cfg Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "runtime-poller",
		Short:         "Pulls invocation events from the runtime API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPollCommand(ctx, cfg), newNextCommand(ctx, cfg))
	return root
}

func newPollCommand(ctx context.Context, cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   "poll",
		Short: "Pull events continuously and hand each one to the event handler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoller(ctx, cfg)
		},
	}
}

func newNextCommand(ctx context.Context, cfg Config) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Pull a number of events and print each outcome as a JSON line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return errors.New("--count must be at least 1")
			}
			return printNext(ctx, cfg, cmd.OutOrStdout(), count)
		},
	}
	cmd.Flags().IntVar(&count, "count", 1, "number of events to pull")
	return cmd
}

func runPoller(ctx context.Context, cfg Config) error {
	app, err := New(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "failed to initialise app")
	}
	if err := app.StartPoller(); err != nil {
		return err
	}
	if cfg.EnableHealthServer {
		if err := app.StartHealthServer(); err != nil {
			return err
		}
	}
	return app.Wait()
}

type outcomeLine struct {
	RequestID  string `json:"request_id,omitempty"`
	StatusCode int    `json:"status,omitempty"`
	Body       string `json:"body,omitempty"`
	Error      string `json:"error,omitempty"`
}

func printNext(ctx context.Context, cfg Config, w io.Writer, count int) error {
	app, err := New(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "failed to initialise app")
	}
	defer app.Shutdown()

	stream := app.Stream()
	defer stream.Close()

	enc := json.NewEncoder(w)
	for i := 0; i < count; i++ {
		outcome, err := stream.Next(ctx)
		if err != nil {
			return err
		}
		if err := enc.Encode(toOutcomeLine(outcome)); err != nil {
			return err
		}
	}
	cfg.Logger.Debug("printed", lager.Data{
		"count":   count,
		"path":    eventstream.NextEventPath,
		"issued":  stream.Issued(),
		"yielded": stream.Yielded(),
	})
	return nil
}

func toOutcomeLine(outcome eventio.Outcome) outcomeLine {
	if outcome.Err != nil {
		return outcomeLine{Error: outcome.Err.Error()}
	}
	if outcome.Response == nil {
		return outcomeLine{Error: "no response"}
	}
	return outcomeLine{
		RequestID:  outcome.Response.RequestID(),
		StatusCode: outcome.Response.StatusCode,
		Body:       string(outcome.Response.Body),
	}
}
