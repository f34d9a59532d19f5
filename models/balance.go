package models

import "math/big"

// TokenBalance — баланс одного токена на адресе кошелька
type TokenBalance struct {
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Kind      TokenKind `json:"kind"`
	RawAmount *big.Int  `json:"-"`      // в минимальных единицах токена
	Amount    float64   `json:"amount"` // RawAmount / 10^decimals
	Price     float64   `json:"price"`
	UsdValue  float64   `json:"usd_value"`
	Icon      string    `json:"icon"`
}

type BalanceSheet struct {
	Network  string         `json:"network"`
	Address  string         `json:"address"`
	Tokens   []TokenBalance `json:"tokens"`
	TotalUsd float64        `json:"total_usd"`
}
