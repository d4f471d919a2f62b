package config

import (
	"github.com/ChainSafe/log15"
	"github.com/urfave/cli/v2"
)

var (
	FileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "JSON or YAML descriptor file, the built-in descriptor is used when empty",
	}
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Supports levels crit (silent) to trce (trace)",
		Value: log15.LvlInfo.String(),
	}
	NetworkFlag = &cli.StringFlag{
		Name:  "network",
		Usage: "Restrict the command to one network profile",
	}
	LocalFlag = &cli.BoolFlag{
		Name:  "local",
		Usage: "Also probe local host/port profiles, a node that refuses the connection is skipped",
	}
	TimeoutFlag = &cli.DurationFlag{
		Name:  "timeout",
		Usage: "Per network probe timeout",
		Value: DefaultTimeout,
	}
)
