// Command tipwatch waits for a tip payment to settle the way a tipping dialog
// does: it polls the tip status endpoint until the tip leaves PENDING or the
// payment timeout passes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/internal/adapters/out/tipapi"
	"marketplace/internal/core/application/tips"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/logging"
)

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "marketplace API base URL")
	tipIDFlag := flag.String("tip", "", "tip id returned by POST /api/v1/tips")
	interval := flag.Duration("interval", tips.DefaultPollInterval, "poll interval")
	timeout := flag.Duration("timeout", tips.DefaultPollTimeout, "give up after this long")
	level := flag.String("log-level", "warn", "log level")
	flag.Parse()

	os.Exit(run(*baseURL, *tipIDFlag, *interval, *timeout, *level))
}

func run(baseURL, rawTipID string, interval, timeout time.Duration, level string) int {
	logger := logging.New(level, os.Stderr)

	tipID, err := kernel.UUIDFromString(rawTipID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -tip: %v\n", err)
		return 2
	}

	client, err := tipapi.NewClient(baseURL, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -base-url: %v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	view, err := tips.NewStatusPoller(client, interval, timeout, logger).Wait(ctx, tipID)
	var failure *errs.PaymentFailedError
	switch {
	case err == nil:
		fmt.Printf("tip %s %s\n", view.TipID, view.Status)
		return 0
	case errors.As(err, &failure):
		fmt.Printf("tip %s %s: %s\n", tipID, view.Status, failure.Reason)
		if failure.ActionRequired != "" {
			fmt.Printf("next step: %s\n", failure.ActionRequired)
		}
		return 1
	default:
		fmt.Fprintf(os.Stderr, "waiting for tip %s: %v\n", tipID, err)
		return 1
	}
}
