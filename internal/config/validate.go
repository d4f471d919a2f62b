package config

import (
	"net/url"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

// Validate checks the descriptor the way the consuming toolchain would before
// using it. Profiles are checked in name order so the first error is stable.
func (c *Config) Validate() error {
	if c.Solc.Optimizer.Runs <= 0 {
		return errors.Wrapf(ErrInvalidRuns, "solc.optimizer.runs=%d", c.Solc.Optimizer.Runs)
	}
	if c.Compilers.Solc.Optimizer.Runs <= 0 {
		return errors.Wrapf(ErrInvalidRuns, "compilers.solc.optimizer.runs=%d", c.Compilers.Solc.Optimizer.Runs)
	}
	if _, err := semver.StrictNewVersion(c.Compilers.Solc.Version); err != nil {
		return errors.Wrapf(ErrInvalidVersion, "compilers.solc.version=%q: %v", c.Compilers.Solc.Version, err)
	}

	for _, name := range c.Names() {
		if err := c.Networks[name].validate(); err != nil {
			return errors.Wrapf(err, "networks.%s", name)
		}
	}
	return nil
}

func (n Network) validate() error {
	switch {
	case n.IsLocal() && n.IsRemote():
		return ErrAmbiguousProfile
	case n.IsLocal():
		if n.Host == "" || n.Port <= 0 || n.Port > 65535 {
			return errors.Wrapf(ErrInvalidHost, "%s:%d", n.Host, n.Port)
		}
		if id, ok := n.NetworkID.ID(); ok && id == 0 {
			return errors.Wrap(ErrInvalidNetworkID, "missing")
		}
	case n.IsRemote():
		if err := validateEndpoint(n.Provider.Endpoint); err != nil {
			return err
		}
		id, ok := n.NetworkID.ID()
		if !ok {
			return errors.Wrap(ErrInvalidNetworkID, "remote profiles need a concrete network_id")
		}
		if id == 0 {
			return errors.Wrap(ErrInvalidNetworkID, "missing")
		}
	default:
		return ErrEmptyProfile
	}

	if n.Gas == 0 || n.GasPrice == 0 {
		return errors.Wrapf(ErrInvalidGas, "gas=%d gasPrice=%d", n.Gas, n.GasPrice)
	}
	return nil
}

func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return errors.Wrapf(ErrInvalidEndpoint, "%q: %v", endpoint, err)
	}
	if u.Host == "" {
		return errors.Wrapf(ErrInvalidEndpoint, "%q has no host", endpoint)
	}
	for _, scheme := range EndpointSchemes {
		if u.Scheme == scheme {
			return nil
		}
	}
	return errors.Wrapf(ErrInvalidEndpoint, "%q has unsupported scheme %q", endpoint, u.Scheme)
}
