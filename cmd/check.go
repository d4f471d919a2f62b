package main

import (
	log "github.com/ChainSafe/log15"
	"github.com/mapprotocol/deployconf/chains/eth"
	"github.com/mapprotocol/deployconf/internal/config"
	"github.com/mapprotocol/deployconf/internal/core"
	"github.com/urfave/cli/v2"
)

var checkCommand = cli.Command{
	Name:        "check",
	Usage:       "probe network endpoints",
	Description: "The check command validates the descriptor and then connects to each remote profile to confirm its chain id. Local profiles are probed with --local or when named by --network.",
	Action:      check,
	Flags:       []cli.Flag{config.FileFlag, config.NetworkFlag, config.LocalFlag, config.TimeoutFlag},
}

func check(ctx *cli.Context) error {
	err := startLogger(ctx)
	if err != nil {
		return err
	}

	log.Info("Starting network check...")

	cfg, err := config.GetConfig(ctx)
	if err != nil {
		return err
	}

	names, err := selectNetworks(ctx, cfg)
	if err != nil {
		return err
	}

	withLocal := ctx.Bool(config.LocalFlag.Name) || ctx.String(config.NetworkFlag.Name) != ""
	c := core.New(log.New("system", "core"), ctx.Duration(config.TimeoutFlag.Name))
	for _, name := range names {
		n, _ := cfg.Network(name)
		if n.IsLocal() && !withLocal {
			log.Debug("Skipping local network, pass --local to probe it", "network", name)
			continue
		}
		profileConfig, err := config.ParseProfileConfig(name, n)
		if err != nil {
			return err
		}

		logger := log.Root().New("network", name)
		c.AddNetwork(eth.InitializeNetwork(profileConfig, logger))
	}

	return c.Run(ctx.Context)
}
