package config

import (
	"math/big"

	"github.com/shopspring/decimal"
)

const gweiExp = 9

func WeiToGwei(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -gweiExp).String()
}
