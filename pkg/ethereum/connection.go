package ethereum

import (
	"context"
	"math/big"
	"sync"

	"github.com/ChainSafe/chainbridge-utils/crypto/secp256k1"
	"github.com/ChainSafe/log15"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
)

var ErrNotConnected = errors.New("connection not established")

// Connection is the credentialed connection of a network profile. The
// keypair is optional: local profiles connect without one and can only call.
type Connection struct {
	endpoint string
	kp       *secp256k1.Keypair
	gasLimit *big.Int
	gasPrice *big.Int
	log      log15.Logger

	conn     *ethclient.Client
	chainID  *big.Int
	opts     *bind.TransactOpts
	callOpts *bind.CallOpts
	optsLock sync.Mutex
}

// NewConnection returns an uninitialized connection, must call Connection.Connect() before using.
func NewConnection(endpoint string, kp *secp256k1.Keypair, log log15.Logger, gasLimit, gasPrice *big.Int) *Connection {
	return &Connection{
		endpoint: endpoint,
		kp:       kp,
		gasLimit: gasLimit,
		gasPrice: gasPrice,
		log:      log,
	}
}

// Connect dials the endpoint, reads its chain id and, when a keypair is
// present, prepares signing options with the profile gas settings. ctx only
// bounds the dial and the chain id query; the options carry a background
// context. A previous client is closed when Connect is called again.
func (c *Connection) Connect(ctx context.Context) error {
	c.log.Info("Connecting to network...", "url", c.endpoint)
	client, err := ethclient.DialContext(ctx, c.endpoint)
	if err != nil {
		return errors.Wrapf(err, "dial %s", c.endpoint)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return errors.Wrap(err, "query chain id")
	}

	callOpts := &bind.CallOpts{Context: context.Background()}
	var opts *bind.TransactOpts
	if c.kp != nil {
		callOpts.From = c.kp.CommonAddress()
		opts, err = bind.NewKeyedTransactorWithChainID(c.kp.PrivateKey(), chainID)
		if err != nil {
			client.Close()
			return errors.Wrap(err, "build transactor")
		}
		opts.GasLimit = c.gasLimit.Uint64()
		opts.GasPrice = new(big.Int).Set(c.gasPrice)
		opts.Context = context.Background()
	}

	c.optsLock.Lock()
	defer c.optsLock.Unlock()
	if c.conn != nil {
		c.conn.Close()
	}
	c.conn = client
	c.chainID = chainID
	c.callOpts = callOpts
	c.opts = opts
	return nil
}

func (c *Connection) Keypair() *secp256k1.Keypair {
	return c.kp
}

// Opts returns the signing options, nil for unsigned connections
func (c *Connection) Opts() *bind.TransactOpts {
	return c.opts
}

func (c *Connection) CallOpts() *bind.CallOpts {
	return c.callOpts
}

// LockAndUpdateOpts takes the options lock and refreshes the nonce. The lock
// is held on return whether or not an error is reported; callers always
// release it with UnlockOpts.
func (c *Connection) LockAndUpdateOpts(ctx context.Context) error {
	c.optsLock.Lock()
	if c.opts == nil {
		return nil
	}
	nonce, err := c.conn.PendingNonceAt(ctx, c.kp.CommonAddress())
	if err != nil {
		return errors.Wrap(err, "query pending nonce")
	}
	c.opts.Nonce = new(big.Int).SetUint64(nonce)
	return nil
}

func (c *Connection) UnlockOpts() {
	c.optsLock.Unlock()
}

func (c *Connection) Client() *ethclient.Client {
	return c.conn
}

// ChainID returns the chain id reported at connect time
func (c *Connection) ChainID() (*big.Int, error) {
	if c.chainID == nil {
		return nil, ErrNotConnected
	}
	return new(big.Int).Set(c.chainID), nil
}

func (c *Connection) LatestBlock(ctx context.Context) (*big.Int, error) {
	if c.conn == nil {
		return nil, ErrNotConnected
	}
	header, err := c.conn.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetUint64(header), nil
}

func (c *Connection) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if c.conn == nil {
		return nil, ErrNotConnected
	}
	return c.conn.SuggestGasPrice(ctx)
}

// Close terminates the client connection
func (c *Connection) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
