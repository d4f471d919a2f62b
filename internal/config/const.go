package config

import "time"

const (
	DefaultEnvPrefix = "DEPLOY"
	DefaultHost      = "localhost"
	DefaultTimeout   = time.Second * 15
)

// Profile names of the built-in descriptor
const (
	Development = "_development"
	Local       = "local"
	Ropsten     = "ropsten"
)

const (
	RopstenEndpoint = "https://ropsten.infura.io/"
	SolcVersion     = "0.5.6"
	SolcImage       = "ethereum/solc"
)

const (
	DefaultOptimizerRuns = 200
	SolcOptimizerRuns    = 400
)

const (
	DevelopmentGasLimit = 4700000
	LocalGasLimit       = 6712390
	RopstenGasLimit     = 4712394
	LocalGasPrice       = 1
	RopstenGasPrice     = 10000000000
)

// Accepted endpoint schemes for remote-signed profiles
var (
	EndpointSchemes = []string{"http", "https", "ws", "wss"}
)
