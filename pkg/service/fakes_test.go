package service

import (
	"context"
	"database/sql"
	"errors"
	"math/big"
	"sync"

	"social_wallet_back/models"
)

// Фейки коллабораторов для тестов сервисов, в духе in-memory хранилищ.

type sentNative struct {
	To     string
	Amount *big.Int
}

type sentToken struct {
	Contract string
	To       string
	Amount   *big.Int
}

type fakeChain struct {
	mu      sync.Mutex
	chainID int64

	// балансы лежат в одной конкретной сети, чтение из другой даёт ноль
	balancesOn   int64
	native       map[string]*big.Int            // address -> balance
	tokens       map[string]map[string]*big.Int // contract -> owner -> balance
	failContract map[string]bool
	nativeErr    error
	sendErr      error

	switched    []int64
	readChains  []int64
	sentNatives []sentNative
	sentTokens  []sentToken
	txHash      string
}

func newFakeChain(chainID int64) *fakeChain {
	return &fakeChain{
		chainID:      chainID,
		balancesOn:   chainID,
		native:       make(map[string]*big.Int),
		tokens:       make(map[string]map[string]*big.Int),
		failContract: make(map[string]bool),
		txHash:       "0xdeadbeef",
	}
}

func (f *fakeChain) ActiveChainID() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.chainID
}

func (f *fakeChain) SwitchChain(chainID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.switched = append(f.switched, chainID)
	f.chainID = chainID
	return nil
}

func (f *fakeChain) NativeBalance(_ context.Context, chainID int64, address string) (*big.Int, error) {
	f.mu.Lock()
	f.readChains = append(f.readChains, chainID)
	f.mu.Unlock()

	if f.nativeErr != nil {
		return nil, f.nativeErr
	}
	if chainID != f.balancesOn {
		return big.NewInt(0), nil
	}
	if bal, ok := f.native[address]; ok {
		return new(big.Int).Set(bal), nil
	}
	return big.NewInt(0), nil
}

func (f *fakeChain) TokenBalance(_ context.Context, chainID int64, contract, owner string) (*big.Int, error) {
	f.mu.Lock()
	f.readChains = append(f.readChains, chainID)
	f.mu.Unlock()

	if f.failContract[contract] {
		return nil, errors.New("contract read reverted")
	}
	if chainID != f.balancesOn {
		return big.NewInt(0), nil
	}
	if owners, ok := f.tokens[contract]; ok {
		if bal, ok := owners[owner]; ok {
			return new(big.Int).Set(bal), nil
		}
	}
	return big.NewInt(0), nil
}

func (f *fakeChain) SendNative(_ context.Context, _, to string, amount *big.Int) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sentNatives = append(f.sentNatives, sentNative{To: to, Amount: new(big.Int).Set(amount)})
	return f.txHash, nil
}

func (f *fakeChain) TransferToken(_ context.Context, _, contract, to string, amount *big.Int) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sentTokens = append(f.sentTokens, sentToken{Contract: contract, To: to, Amount: new(big.Int).Set(amount)})
	return f.txHash, nil
}

type fakePrices struct {
	table models.PriceTable
}

func (f *fakePrices) GetPrices(context.Context) models.PriceTable     { return f.table }
func (f *fakePrices) RefreshPrices(context.Context) models.PriceTable { return f.table }

type fakeWalletRepo struct {
	wallets map[int64]models.Wallet
}

func (f *fakeWalletRepo) CreateWallet(userID int64, privKey, address string) (int64, error) {
	id := int64(len(f.wallets) + 1)
	f.wallets[userID] = models.Wallet{ID: id, UserID: userID, PrivateKey: privKey, Address: address}
	return id, nil
}

func (f *fakeWalletRepo) GetWallet(userID int64) (models.Wallet, error) {
	w, ok := f.wallets[userID]
	if !ok {
		return models.Wallet{}, sql.ErrNoRows
	}
	return w, nil
}

type historyRecord struct {
	UserID      int64
	Type        string
	Amount      float64
	Description string
	TxHash      string
}

type fakeHistoryRepo struct {
	mu      sync.Mutex
	records []historyRecord
	failErr error
}

func (f *fakeHistoryRepo) CreateTransaction(userID int64, txType string, amount float64, description, txHash string) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, historyRecord{
		UserID:      userID,
		Type:        txType,
		Amount:      amount,
		Description: description,
		TxHash:      txHash,
	})
	return nil
}

func (f *fakeHistoryRepo) GetTransactions(userID int64) ([]models.Transaction, error) {
	return nil, nil
}

type fakeContactRepo struct {
	contacts []models.Contact
}

func (f *fakeContactRepo) GetContacts(userID int64) ([]models.Contact, error) {
	return f.contacts, nil
}

func (f *fakeContactRepo) CreateContact(userID int64, input models.ContactInput) (int64, error) {
	id := int64(len(f.contacts) + 1)
	f.contacts = append(f.contacts, models.Contact{
		ID:      id,
		UserID:  userID,
		Name:    input.Name,
		Address: input.Address,
		Network: input.Network,
	})
	return id, nil
}

func (f *fakeContactRepo) DeleteContact(userID, contactID int64) error {
	return nil
}

// blockingContactRepo зависает в GetContacts до сигнала release,
// имитируя медленную базу
type blockingContactRepo struct {
	started chan struct{}
	release chan struct{}
}

func newBlockingContactRepo() *blockingContactRepo {
	return &blockingContactRepo{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (f *blockingContactRepo) GetContacts(int64) ([]models.Contact, error) {
	f.started <- struct{}{}
	<-f.release
	return nil, nil
}

func (f *blockingContactRepo) CreateContact(int64, models.ContactInput) (int64, error) {
	return 0, nil
}

func (f *blockingContactRepo) DeleteContact(int64, int64) error {
	return nil
}
