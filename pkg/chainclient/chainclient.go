package chainclient

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"
)

const (
	gasLimitNative   = 21000
	gasLimitContract = 100000

	// селекторы ERC20/BEP20
	methodIDBalanceOf = "70a08231"
	methodIDTransfer  = "a9059cbb"
)

// EvmClient держит подключения к RPC каждой поддерживаемой сети.
// Активная сеть одна, переключается через SwitchChain.
type EvmClient struct {
	mu      sync.Mutex
	clients map[int64]*ethclient.Client
	active  int64
}

// NewEvmClient подключается к RPC по chainID. Первая сеть из карты — активная по умолчанию.
func NewEvmClient(rpcURLs map[int64]string, defaultChainID int64) (*EvmClient, error) {
	if _, ok := rpcURLs[defaultChainID]; !ok {
		return nil, fmt.Errorf("no RPC url for default chain %d", defaultChainID)
	}

	clients := make(map[int64]*ethclient.Client, len(rpcURLs))
	for chainID, url := range rpcURLs {
		client, err := ethclient.Dial(url)
		if err != nil {
			return nil, fmt.Errorf("failed to dial RPC %s: %v", url, err)
		}
		clients[chainID] = client
	}

	return &EvmClient{
		clients: clients,
		active:  defaultChainID,
	}, nil
}

func (c *EvmClient) ActiveChainID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// SwitchChain переключает активную сеть на указанный chainID
func (c *EvmClient) SwitchChain(chainID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.clients[chainID]; !ok {
		return fmt.Errorf("unsupported chain id: %d", chainID)
	}
	c.active = chainID
	logrus.Infof("Активная сеть переключена на chainID %d", chainID)
	return nil
}

func (c *EvmClient) activeClient() (*ethclient.Client, int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clients[c.active], c.active
}

// clientFor возвращает подключение нужной сети, не трогая активную
func (c *EvmClient) clientFor(chainID int64) (*ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	client, ok := c.clients[chainID]
	if !ok {
		return nil, fmt.Errorf("unsupported chain id: %d", chainID)
	}
	return client, nil
}

// NativeBalance возвращает баланс нативной монеты сети chainID в wei
func (c *EvmClient) NativeBalance(ctx context.Context, chainID int64, address string) (*big.Int, error) {
	client, err := c.clientFor(chainID)
	if err != nil {
		return nil, err
	}

	balance, err := client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get native balance: %v", err)
	}
	return balance, nil
}

// TokenBalance читает balanceOf(owner) контракта в сети chainID через eth_call
func (c *EvmClient) TokenBalance(ctx context.Context, chainID int64, contract, owner string) (*big.Int, error) {
	client, err := c.clientFor(chainID)
	if err != nil {
		return nil, err
	}

	data, err := hex.DecodeString(methodIDBalanceOf + fmt.Sprintf("%064x", common.HexToAddress(owner).Bytes()))
	if err != nil {
		return nil, fmt.Errorf("failed to encode balanceOf params: %v", err)
	}

	contractAddr := common.HexToAddress(contract)
	result, err := client.CallContract(ctx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call balanceOf: %v", err)
	}

	if len(result) == 0 {
		return big.NewInt(0), nil
	}

	return new(big.Int).SetBytes(result), nil
}

// SendNative отправляет нативную монету: сумма уходит как value транзакции
func (c *EvmClient) SendNative(ctx context.Context, privKeyHex, to string, amount *big.Int) (string, error) {
	client, chainID := c.activeClient()

	privKey, fromAddr, err := parseKey(privKeyHex)
	if err != nil {
		return "", err
	}

	nonce, err := client.PendingNonceAt(ctx, fromAddr)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %v", err)
	}

	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get gas price: %v", err)
	}

	tx := types.NewTransaction(nonce, common.HexToAddress(to), amount, gasLimitNative, gasPrice, nil)

	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(big.NewInt(chainID)), privKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %v", err)
	}

	if err := client.SendTransaction(ctx, signedTx); err != nil {
		return "", fmt.Errorf("failed to broadcast transaction: %v", err)
	}

	return signedTx.Hash().Hex(), nil
}

// TransferToken вызывает transfer(to, amount) на контракте токена
func (c *EvmClient) TransferToken(ctx context.Context, privKeyHex, contract, to string, amount *big.Int) (string, error) {
	client, chainID := c.activeClient()

	privKey, fromAddr, err := parseKey(privKeyHex)
	if err != nil {
		return "", err
	}

	nonce, err := client.PendingNonceAt(ctx, fromAddr)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %v", err)
	}

	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get gas price: %v", err)
	}

	data, err := encodeTransferParams(to, amount)
	if err != nil {
		return "", err
	}

	// value = 0, сумма зашита в аргументы вызова
	tx := types.NewTransaction(nonce, common.HexToAddress(contract), big.NewInt(0), gasLimitContract, gasPrice, data)

	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(big.NewInt(chainID)), privKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %v", err)
	}

	if err := client.SendTransaction(ctx, signedTx); err != nil {
		return "", fmt.Errorf("failed to broadcast transaction: %v", err)
	}

	return signedTx.Hash().Hex(), nil
}

// encodeTransferParams собирает calldata для transfer(address,uint256)
func encodeTransferParams(to string, amount *big.Int) ([]byte, error) {
	addrParam := fmt.Sprintf("%064x", common.HexToAddress(to).Bytes())
	amountParam := fmt.Sprintf("%064x", amount)

	data, err := hex.DecodeString(methodIDTransfer + addrParam + amountParam)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transfer params: %v", err)
	}
	return data, nil
}

func parseKey(privKeyHex string) (*ecdsa.PrivateKey, common.Address, error) {
	key, err := crypto.HexToECDSA(privKeyHex)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to parse private key: %v", err)
	}
	return key, crypto.PubkeyToAddress(key.PublicKey), nil
}
