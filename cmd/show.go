package main

import (
	"encoding/json"
	"fmt"

	log "github.com/ChainSafe/log15"
	"github.com/mapprotocol/deployconf/internal/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var showCommand = cli.Command{
	Name:        "show",
	Usage:       "print the descriptor",
	Description: "The show command prints the descriptor, or a single network profile, as JSON. Key material is never printed.",
	Action:      show,
	Flags:       []cli.Flag{config.FileFlag, config.NetworkFlag},
}

var validateCommand = cli.Command{
	Name:        "validate",
	Usage:       "validate the descriptor",
	Description: "The validate command loads the descriptor and exits non-zero when it is malformed.",
	Action:      validate,
	Flags:       []cli.Flag{config.FileFlag},
}

func show(ctx *cli.Context) error {
	if err := startLogger(ctx); err != nil {
		return err
	}

	cfg, err := config.GetConfig(ctx)
	if err != nil {
		return err
	}

	var out interface{} = cfg
	if name := ctx.String(config.NetworkFlag.Name); name != "" {
		n, ok := cfg.Network(name)
		if !ok {
			return errors.Wrap(config.ErrUnknownProfile, name)
		}
		out = n
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, string(data))
	return nil
}

func validate(ctx *cli.Context) error {
	if err := startLogger(ctx); err != nil {
		return err
	}

	cfg, err := config.GetConfig(ctx)
	if err != nil {
		return err
	}
	log.Info("Descriptor is valid", "networks", cfg.Names(), "solc", cfg.Compilers.Solc.Version)
	return nil
}

// selectNetworks returns the profile named by --network, or every profile
func selectNetworks(ctx *cli.Context, cfg *config.Config) ([]string, error) {
	name := ctx.String(config.NetworkFlag.Name)
	if name == "" {
		return cfg.Names(), nil
	}
	if _, ok := cfg.Network(name); !ok {
		return nil, errors.Wrap(config.ErrUnknownProfile, name)
	}
	return []string{name}, nil
}
