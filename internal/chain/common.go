package chain

import (
	"github.com/ChainSafe/log15"
	"github.com/mapprotocol/deployconf/internal/config"
)

type Common struct {
	Cfg  config.ProfileConfig
	Conn Connection
	Log  log15.Logger
}

// NewCommon bundles what every network implementation carries
func NewCommon(conn Connection, cfg *config.ProfileConfig, log log15.Logger) *Common {
	return &Common{
		Cfg:  *cfg,
		Conn: conn,
		Log:  log,
	}
}
