package eth

import (
	"context"
	"syscall"

	"github.com/ChainSafe/log15"
	"github.com/mapprotocol/deployconf/internal/chain"
	"github.com/mapprotocol/deployconf/internal/config"
	"github.com/mapprotocol/deployconf/pkg/ethereum"
	"github.com/pkg/errors"
)

var ErrChainMismatch = errors.New("endpoint chain id does not match network_id")

type Network struct {
	*chain.Common
}

func InitializeNetwork(cfg *config.ProfileConfig, logger log15.Logger) *Network {
	conn := ethereum.NewConnection(cfg.Endpoint, cfg.Keypair, logger, cfg.GasLimit, cfg.GasPrice)
	return newNetwork(conn, cfg, logger)
}

func newNetwork(conn chain.Connection, cfg *config.ProfileConfig, logger log15.Logger) *Network {
	return &Network{Common: chain.NewCommon(conn, cfg, logger)}
}

// Check connects to the endpoint and verifies it serves the profile's network
func (n *Network) Check(ctx context.Context) error {
	if err := n.Conn.Connect(ctx); err != nil {
		if n.Cfg.Local && errors.Is(err, syscall.ECONNREFUSED) {
			n.Log.Debug("Local node not running, skipping", "url", n.Cfg.Endpoint)
			return errors.Wrap(chain.ErrSkipped, n.Cfg.Name)
		}
		return err
	}

	chainID, err := n.Conn.ChainID()
	if err != nil {
		return err
	}
	if !chainID.IsUint64() || !n.Cfg.NetworkID.Matches(chainID.Uint64()) {
		return errors.Wrapf(ErrChainMismatch, "%s: want %s, endpoint reports %s", n.Cfg.Name, n.Cfg.NetworkID, chainID)
	}

	latest, err := n.Conn.LatestBlock(ctx)
	if err != nil {
		return errors.Wrap(err, "query latest block")
	}
	suggested, err := n.Conn.SuggestGasPrice(ctx)
	if err != nil {
		return errors.Wrap(err, "query gas price")
	}

	if n.Cfg.GasPrice.Cmp(suggested) < 0 {
		n.Log.Warn("Profile gas price below node suggestion",
			"gasPrice", n.Cfg.GasPriceGwei(), "suggested", config.WeiToGwei(suggested))
	}

	ctxLog := []interface{}{"chainId", chainID, "block", latest, "gasPrice", n.Cfg.GasPriceGwei(), "gas", n.Cfg.GasLimit}
	if kp := n.Conn.Keypair(); kp != nil {
		ctxLog = append(ctxLog, "from", kp.Address())
	}
	n.Log.Info("Network reachable", ctxLog...)
	return nil
}

func (n *Network) Name() string {
	return n.Cfg.Name
}

func (n *Network) Close() {
	if n.Conn != nil {
		n.Conn.Close()
	}
}
