package service

import (
	"context"
	"math/big"

	"github.com/sirupsen/logrus"

	"social_wallet_back/models"
	"social_wallet_back/pkg/registry"
)

type BalanceService struct {
	chain  ChainClient
	prices Prices
}

func NewBalanceService(chain ChainClient, prices Prices) *BalanceService {
	return &BalanceService{
		chain:  chain,
		prices: prices,
	}
}

// ActiveNetwork возвращает сеть, соответствующую подключённому chainID
func (s *BalanceService) ActiveNetwork() string {
	return registry.NetworkByChainID(s.chain.ActiveChainID())
}

// Resolve собирает балансы всех токенов сети для адреса. Чтение идёт
// через RPC именно запрошенной сети, независимо от активной.
// Ошибка чтения одного токена даёт нулевой баланс и не мешает остальным.
func (s *BalanceService) Resolve(ctx context.Context, network, address string) models.BalanceSheet {
	table := s.prices.GetPrices(ctx)

	chainID := registry.RequiredChainID(network)
	tokens := registry.TokensFor(network)
	balances := make([]models.TokenBalance, 0, len(tokens))
	totalUsd := 0.0

	for _, token := range tokens {
		raw := s.readBalance(ctx, chainID, token, address)

		amount := decimalAmount(raw, token.Decimals)
		price := table.PriceOf(token.Symbol)

		balance := models.TokenBalance{
			Symbol:    token.Symbol,
			Name:      token.Name,
			Kind:      token.Kind,
			RawAmount: raw,
			Amount:    amount,
			Price:     price,
			UsdValue:  amount * price,
			Icon:      token.Icon,
		}
		balances = append(balances, balance)

		// в общую сумму входит только нативная монета
		if token.Kind == models.KindNative {
			totalUsd += balance.UsdValue
		}
	}

	return models.BalanceSheet{
		Network:  network,
		Address:  address,
		Tokens:   balances,
		TotalUsd: totalUsd,
	}
}

func (s *BalanceService) readBalance(ctx context.Context, chainID int64, token models.Token, address string) *big.Int {
	var raw *big.Int
	var err error

	if token.Kind == models.KindNative {
		raw, err = s.chain.NativeBalance(ctx, chainID, address)
	} else {
		raw, err = s.chain.TokenBalance(ctx, chainID, token.Address, address)
	}

	if err != nil {
		logrus.Warnf("Не удалось прочитать баланс %s для %s: %v", token.Symbol, address, err)
		return big.NewInt(0)
	}
	return raw
}

func decimalAmount(raw *big.Int, decimals uint8) float64 {
	scale := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	value, _ := new(big.Float).Quo(new(big.Float).SetInt(raw), scale).Float64()
	return value
}
