// Copyright 2021 Compass Systems
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"context"
	"math/big"

	"github.com/ChainSafe/chainbridge-utils/crypto/secp256k1"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
)

// ErrSkipped is returned by Network.Check when the network was not probed,
// for example a local node that is not running. It is not a failure.
var ErrSkipped = errors.New("network check skipped")

type Connection interface {
	Connect(ctx context.Context) error
	Keypair() *secp256k1.Keypair
	Opts() *bind.TransactOpts
	CallOpts() *bind.CallOpts
	LockAndUpdateOpts(ctx context.Context) error
	UnlockOpts()
	Client() *ethclient.Client
	ChainID() (*big.Int, error)
	LatestBlock(ctx context.Context) (*big.Int, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	Close()
}

// Network is a deployment target that can be probed
type Network interface {
	Check(ctx context.Context) error
	Name() string
	Close()
}
