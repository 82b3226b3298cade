package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/netip"
	"os"
	"os/signal"
	"syscall"

	"github.com/cerfical/hostaddr/internal/config"
	"github.com/cerfical/hostaddr/internal/hostaddr"
	"github.com/cerfical/hostaddr/internal/log"
	"github.com/spf13/pflag"
)

func main() {
	flags := config.NewFlagSet(os.Args[0])
	config, err := config.Load(flags, os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flags.Usage()
		os.Exit(2)
	}

	log := log.New(
		log.WithLevel(config.LogLevel),
		log.WithFields("hosts", config.Hosts),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	if config.Timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	err = run(ctx, hostaddr.DefaultResolver, config.Hosts, os.Stdout, log)
	stop()
	if err != nil {
		log.Error("Failed to resolve hosts", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, r *hostaddr.Resolver, hosts string, out io.Writer, log *log.Logger) error {
	log.Verbose("Resolving hosts")

	addrs, err := r.ResolveList(ctx, hosts)
	if err != nil {
		return err
	}

	for _, a := range addrs {
		fmt.Fprintln(out, formatAddr(a))
	}
	log.Info("Hosts resolved", "count", len(addrs))
	return nil
}

func formatAddr(a netip.Addr) string {
	if a == hostaddr.None {
		return "none"
	}
	return a.String()
}
