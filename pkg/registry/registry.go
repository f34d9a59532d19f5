package registry

import "social_wallet_back/models"

// Статический реестр сетей и токенов. Меняется только при деплое.

const (
	NetworkBSC = "BSC"
	NetworkETH = "ETH"

	ChainIDBSC int64 = 56
	ChainIDETH int64 = 1
)

var networks = map[string]models.Network{
	NetworkBSC: {
		ID:      NetworkBSC,
		Name:    "BSC",
		ChainID: ChainIDBSC,
		Icon:    "/assets/bnb-chain.png",
	},
	NetworkETH: {
		ID:      NetworkETH,
		Name:    "Ethereum",
		ChainID: ChainIDETH,
		Icon:    "/assets/ethereum.png",
	},
}

var tokens = map[string][]models.Token{
	NetworkBSC: {
		{
			Symbol:   "BNB",
			Name:     "BNB",
			Kind:     models.KindNative,
			Decimals: 18,
			Source:   models.SourceBinance,
			ApiID:    "BNBUSDT",
			Icon:     "/assets/bnb.png",
		},
		{
			Symbol:     "USDT",
			Name:       "Tether USD",
			Kind:       models.KindContract,
			Address:    "0x55d398326f99059fF775485246999027B3197955",
			Decimals:   18,
			Source:     models.SourceFixed,
			FixedPrice: 1.00,
			Icon:       "/assets/usdt.png",
		},
		{
			Symbol:   "CAMLY",
			Name:     "Camly Coin",
			Kind:     models.KindContract,
			Address:  "0x0910320181889feFDE0BB1Ca63962b0A8882e413",
			Decimals: 18,
			Source:   models.SourceDexScreener,
			Icon:     "/assets/camly.png",
		},
		{
			Symbol:   "BTCB",
			Name:     "Bitcoin BEP20",
			Kind:     models.KindContract,
			Address:  "0x7130d2A12B9BCbFAe4f2634d864A1Ee1Ce3Ead9c",
			Decimals: 18,
			Source:   models.SourceBinance,
			ApiID:    "BTCUSDT",
			Icon:     "/assets/btcb.png",
		},
	},
	NetworkETH: {
		{
			Symbol:   "ETH",
			Name:     "Ethereum",
			Kind:     models.KindNative,
			Decimals: 18,
			Source:   models.SourceBinance,
			ApiID:    "ETHUSDT",
			Icon:     "/assets/ethereum.png",
		},
	},
}

// TokensFor возвращает токены сети в фиксированном порядке.
// Неизвестная сеть трактуется как BSC.
func TokensFor(network string) []models.Token {
	if list, ok := tokens[network]; ok {
		return list
	}
	return tokens[NetworkBSC]
}

func NetworkConfig(network string) models.Network {
	if cfg, ok := networks[network]; ok {
		return cfg
	}
	return networks[NetworkBSC]
}

func Networks() []models.Network {
	return []models.Network{networks[NetworkBSC], networks[NetworkETH]}
}

// NetworkByChainID: 56 — BSC, 1 — ETH, всё остальное считаем BSC
func NetworkByChainID(chainID int64) string {
	switch chainID {
	case ChainIDBSC:
		return NetworkBSC
	case ChainIDETH:
		return NetworkETH
	default:
		return NetworkBSC
	}
}

func RequiredChainID(network string) int64 {
	return NetworkConfig(network).ChainID
}

func TokenBySymbol(network, symbol string) (models.Token, bool) {
	for _, t := range TokensFor(network) {
		if t.Symbol == symbol {
			return t, true
		}
	}
	return models.Token{}, false
}

// NativeToken — базовая монета сети; в реестре она ровно одна на сеть
func NativeToken(network string) (models.Token, bool) {
	for _, t := range TokensFor(network) {
		if t.Kind == models.KindNative {
			return t, true
		}
	}
	return models.Token{}, false
}

func FirstToken(network string) models.Token {
	return TokensFor(network)[0]
}

// AllTokens — токены всех сетей, для цикла обновления цен
func AllTokens() []models.Token {
	all := make([]models.Token, 0, len(tokens[NetworkBSC])+len(tokens[NetworkETH]))
	all = append(all, tokens[NetworkBSC]...)
	all = append(all, tokens[NetworkETH]...)
	return all
}
