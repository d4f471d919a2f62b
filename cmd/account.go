package main

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/ChainSafe/log15"
	"github.com/mapprotocol/deployconf/internal/config"
	"github.com/urfave/cli/v2"
)

var accountCommand = cli.Command{
	Name:        "account",
	Usage:       "print the signing address of remote profiles",
	Description: "The account command derives the address each remote-signed profile deploys from.",
	Action:      account,
	Flags:       []cli.Flag{config.FileFlag, config.NetworkFlag},
}

func startLogger(ctx *cli.Context) error {
	var lvl log.Lvl

	if lvlToInt, err := strconv.Atoi(ctx.String(config.VerbosityFlag.Name)); err == nil {
		lvl = log.Lvl(lvlToInt)
	} else if lvl, err = log.LvlFromString(ctx.String(config.VerbosityFlag.Name)); err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.TerminalFormat())))

	return nil
}

func account(ctx *cli.Context) error {
	if err := startLogger(ctx); err != nil {
		return err
	}

	cfg, err := config.GetConfig(ctx)
	if err != nil {
		return err
	}

	names, err := selectNetworks(ctx, cfg)
	if err != nil {
		return err
	}
	for _, name := range names {
		n, _ := cfg.Network(name)
		if !n.IsRemote() {
			continue
		}
		pc, err := config.ParseProfileConfig(name, n)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.App.Writer, "%s\t%s\n", name, pc.Keypair.CommonAddress().Hex())
	}
	return nil
}
