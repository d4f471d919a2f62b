package config

import (
	"fmt"
	"math/big"
	"net"
	"strconv"
	"strings"

	"github.com/ChainSafe/chainbridge-utils/crypto/secp256k1"
	"github.com/pkg/errors"
)

// ProfileConfig is a network profile resolved into the values a connection needs
type ProfileConfig struct {
	Name      string             // Profile name
	NetworkID NetworkID          // Expected chain id, or wildcard
	Endpoint  string             // url for rpc endpoint
	Local     bool               // Unsigned local node
	GasLimit  *big.Int           // gas
	GasPrice  *big.Int           // gasPrice in wei
	Keypair   *secp256k1.Keypair // Signing key, nil for local profiles
}

// ParseProfileConfig uses a Network profile to construct a corresponding ProfileConfig
func ParseProfileConfig(name string, n Network) (*ProfileConfig, error) {
	cfg := &ProfileConfig{
		Name:      name,
		NetworkID: n.NetworkID,
		GasLimit:  new(big.Int).SetUint64(n.Gas),
		GasPrice:  new(big.Int).SetUint64(n.GasPrice),
	}

	if n.IsLocal() {
		cfg.Local = true
		cfg.Endpoint = fmt.Sprintf("http://%s", net.JoinHostPort(n.Host, strconv.Itoa(n.Port)))
		return cfg, nil
	}
	if !n.IsRemote() {
		return nil, errors.Wrap(ErrEmptyProfile, name)
	}

	cfg.Endpoint = n.Provider.Endpoint
	if n.Provider.PrivateKey == "" {
		return nil, errors.Wrap(ErrMissingKey, name)
	}
	kp, err := secp256k1.NewKeypairFromString(strings.TrimPrefix(n.Provider.PrivateKey, "0x"))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidKey, "%s: %v", name, err)
	}
	cfg.Keypair = kp
	return cfg, nil
}

// GasPriceGwei formats the profile gas price in gwei
func (p *ProfileConfig) GasPriceGwei() string {
	return WeiToGwei(p.GasPrice)
}
