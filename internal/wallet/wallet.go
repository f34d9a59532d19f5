package wallet

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// Wallet структура с приватным ключом и адресом
type Wallet struct {
	PrivateKey string
	Address    string
}

// GenerateWallet генерирует новый EVM-кошелек (BSC и Ethereum используют один формат адреса)
func GenerateWallet() (*Wallet, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}

	privBytes := crypto.FromECDSA(privateKey)
	privHex := hex.EncodeToString(privBytes)

	address := crypto.PubkeyToAddress(privateKey.PublicKey).Hex()

	return &Wallet{
		PrivateKey: privHex,
		Address:    address,
	}, nil
}

// AddressFromPrivKey получает EVM-адрес из приватного ключа
func AddressFromPrivKey(privKeyHex string) (string, *ecdsa.PrivateKey, error) {
	privBytes, err := hex.DecodeString(privKeyHex)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode private key hex: %v", err)
	}

	privKey, err := crypto.ToECDSA(privBytes)
	if err != nil {
		return "", nil, fmt.Errorf("failed to convert to ECDSA: %v", err)
	}

	address := crypto.PubkeyToAddress(privKey.PublicKey).Hex()

	return address, privKey, nil
}
