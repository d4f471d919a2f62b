package core

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/ChainSafe/log15"
	"github.com/mapprotocol/deployconf/internal/chain"
	"github.com/mapprotocol/deployconf/pkg/util"
	"github.com/pkg/errors"
)

type Core struct {
	Registry []chain.Network
	log      log15.Logger
	timeout  time.Duration
	alarm    func(ctx context.Context, msg string)
}

// New returns a Core that gives each network check at most timeout, zero
// means no limit.
func New(log log15.Logger, timeout time.Duration) *Core {
	return &Core{
		Registry: make([]chain.Network, 0),
		log:      log,
		timeout:  timeout,
		alarm:    util.Alarm,
	}
}

// AddNetwork registers the network in the Registry
func (c *Core) AddNetwork(network chain.Network) {
	c.Registry = append(c.Registry, network)
}

// Run checks every registered network in order. It stops early when ctx is
// cancelled or an interrupt is received. Skipped networks are not failures;
// every failure is joined into the returned error, each wrapped with its
// network name.
func (c *Core) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer func() {
		for _, network := range c.Registry {
			network.Close()
		}
	}()

	var failed []error
	for _, network := range c.Registry {
		if ctx.Err() != nil {
			c.log.Warn("Interrupt received, shutting down now.")
			return ctx.Err()
		}
		err := c.check(ctx, network)
		if errors.Is(err, chain.ErrSkipped) {
			c.log.Debug(fmt.Sprintf("Skipped %s network", network.Name()))
			continue
		}
		if err != nil {
			c.log.Error("network check failed", "network", network.Name(), "err", err)
			c.alarm(ctx, fmt.Sprintf("network check failed, network=%s err=%s", network.Name(), err))
			failed = append(failed, errors.Wrap(err, network.Name()))
			continue
		}
		c.log.Info(fmt.Sprintf("Checked %s network", network.Name()))
	}

	if len(failed) > 0 {
		return errors.Wrapf(stderrors.Join(failed...), "%d of %d networks failed", len(failed), len(c.Registry))
	}
	return nil
}

func (c *Core) check(ctx context.Context, network chain.Network) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return network.Check(ctx)
}
