package models

// TokenKind — нативная монета сети или токен по контракту
type TokenKind string

const (
	KindNative   TokenKind = "NATIVE"
	KindContract TokenKind = "CONTRACT"
)

// PriceSource определяет, откуда берём курс токена
type PriceSource string

const (
	SourceFixed       PriceSource = "FIXED"       // фиксированная цена (стейблы)
	SourceBinance     PriceSource = "BINANCE"     // тикер биржи
	SourceDexScreener PriceSource = "DEXSCREENER" // агрегатор DEX по адресу контракта
)

type Token struct {
	Symbol     string      `json:"symbol"`
	Name       string      `json:"name"`
	Kind       TokenKind   `json:"kind"`
	Address    string      `json:"address,omitempty"` // только для Kind == CONTRACT
	Decimals   uint8       `json:"decimals"`
	Source     PriceSource `json:"source,omitempty"`
	ApiID      string      `json:"api_id,omitempty"`      // тикер для биржи, например BNBUSDT
	FixedPrice float64     `json:"fixed_price,omitempty"` // для Source == FIXED
	Icon       string      `json:"icon"`
}

type Network struct {
	ID      string `json:"id"` // BSC | ETH
	Name    string `json:"name"`
	ChainID int64  `json:"chain_id"`
	Icon    string `json:"icon"`
}
