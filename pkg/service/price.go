package service

import (
	"context"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"social_wallet_back/models"
	"social_wallet_back/pkg/cache"
	"social_wallet_back/pkg/registry"
)

const (
	binanceAPI     = "https://api.binance.com"
	dexScreenerAPI = "https://api.dexscreener.com"

	// таблица живёт 30 секунд, фоновый цикл обновляет её раз в 60
	priceStaleness = 30 * time.Second
	RefreshPeriod  = 60 * time.Second
)

type binanceTicker struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

type dexScreenerResponse struct {
	Pairs []struct {
		PriceUsd string `json:"priceUsd"`
	} `json:"pairs"`
}

type PriceService struct {
	client         *resty.Client
	cache          *cache.PriceCache
	binanceURL     string
	dexScreenerURL string
}

func NewPriceService() *PriceService {
	return &PriceService{
		client:         resty.New(),
		cache:          cache.NewPriceCache(priceStaleness),
		binanceURL:     binanceAPI,
		dexScreenerURL: dexScreenerAPI,
	}
}

// GetPrices возвращает таблицу из кэша, пока она не устарела,
// иначе собирает заново
func (s *PriceService) GetPrices(ctx context.Context) models.PriceTable {
	if table, ok := s.cache.Get(); ok {
		return table
	}
	return s.RefreshPrices(ctx)
}

// RefreshPrices пересобирает таблицу цен целиком по всем токенам реестра.
// Ошибка одного источника даёт нулевую цену этого токена и не прерывает цикл.
func (s *PriceService) RefreshPrices(ctx context.Context) models.PriceTable {
	prices := make(map[string]float64)

	for _, token := range registry.AllTokens() {
		switch token.Source {
		case models.SourceFixed:
			prices[token.Symbol] = token.FixedPrice
		case models.SourceBinance:
			prices[token.Symbol] = s.binancePrice(ctx, token.ApiID)
		case models.SourceDexScreener:
			prices[token.Symbol] = s.dexScreenerPrice(ctx, token.Address)
		default:
			// токен без стратегии в таблицу не попадает
		}
	}

	table := models.PriceTable{
		Prices:      prices,
		RefreshedAt: time.Now(),
	}
	s.cache.Set(table)

	return table
}

func (s *PriceService) binancePrice(ctx context.Context, apiID string) float64 {
	var ticker binanceTicker

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("symbol", apiID).
		SetResult(&ticker).
		Get(s.binanceURL + "/api/v3/ticker/price")

	if err != nil || resp.IsError() {
		logrus.Warnf("Не удалось получить курс Binance для %s: %v", apiID, err)
		return 0
	}

	price, err := strconv.ParseFloat(ticker.Price, 64)
	if err != nil {
		logrus.Warnf("Некорректный курс Binance для %s: %q", apiID, ticker.Price)
		return 0
	}

	return price
}

func (s *PriceService) dexScreenerPrice(ctx context.Context, address string) float64 {
	var result dexScreenerResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&result).
		Get(s.dexScreenerURL + "/latest/dex/tokens/" + address)

	if err != nil || resp.IsError() {
		logrus.Warnf("Не удалось получить курс DexScreener для %s: %v", address, err)
		return 0
	}

	// берём цену первой торговой пары
	if len(result.Pairs) == 0 {
		logrus.Warnf("DexScreener не вернул пар для %s", address)
		return 0
	}

	price, err := strconv.ParseFloat(result.Pairs[0].PriceUsd, 64)
	if err != nil {
		logrus.Warnf("Некорректная цена DexScreener для %s: %q", address, result.Pairs[0].PriceUsd)
		return 0
	}

	return price
}
