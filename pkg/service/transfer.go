package service

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"social_wallet_back/models"
	"social_wallet_back/pkg/registry"
	"social_wallet_back/pkg/repository"
)

var (
	ErrEmptyFields      = errors.New("не заполнены получатель или сумма")
	ErrTransferInFlight = errors.New("предыдущий перевод ещё выполняется")
	ErrBadAmount        = errors.New("некорректная сумма")
)

// TransferService ведёт перевод по состояниям
// Draft → Reviewing → NetworkMismatch | Confirming → Submitting → Recording → Succeeded | Failed.
// Ничего не ретраится автоматически: любой повтор — новое действие пользователя.
type TransferService struct {
	chain    ChainClient
	wallets  repository.Wallet
	contacts Contacts
	history  repository.History

	mu       sync.Mutex
	drafts   map[int64]*models.TransferDraft
	inFlight map[int64]bool
}

func NewTransferService(chain ChainClient, wallets repository.Wallet, contacts Contacts, history repository.History) *TransferService {
	return &TransferService{
		chain:    chain,
		wallets:  wallets,
		contacts: contacts,
		history:  history,
		drafts:   make(map[int64]*models.TransferDraft),
		inFlight: make(map[int64]bool),
	}
}

// draftFor возвращает черновик пользователя, создавая пустой при первом обращении.
// Сеть по умолчанию выводится из подключённого chainID, токен — первый в сети.
func (s *TransferService) draftFor(userID int64) *models.TransferDraft {
	draft, ok := s.drafts[userID]
	if !ok {
		network := registry.NetworkByChainID(s.chain.ActiveChainID())
		draft = &models.TransferDraft{
			TokenSymbol: registry.FirstToken(network).Symbol,
			Network:     network,
		}
		s.drafts[userID] = draft
	}
	return draft
}

func (s *TransferService) GetDraft(userID int64) models.TransferDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.draftFor(userID)
}

func (s *TransferService) UpdateDraft(userID int64, input models.TransferDraft) models.TransferDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.draftFor(userID)
	if input.TokenSymbol != "" {
		draft.TokenSymbol = input.TokenSymbol
	}
	if input.Network != "" {
		draft.Network = input.Network
	}
	draft.Receiver = input.Receiver
	draft.Amount = input.Amount
	return *draft
}

// Review — переход Draft → Reviewing. Пустые поля возвращают черновик в Draft
// с ошибкой валидации; несовпадение сети даёт NetworkMismatch и запрос на
// переключение, без автоматического повтора.
func (s *TransferService) Review(ctx context.Context, userID int64) (models.ReviewResult, error) {
	s.mu.Lock()
	draft := *s.draftFor(userID)
	s.mu.Unlock()

	return s.reviewDraft(userID, draft)
}

// reviewDraft работает с копией черновика и не держит s.mu:
// обращения к сети и адресной книге идут вне блокировки
func (s *TransferService) reviewDraft(userID int64, draft models.TransferDraft) (models.ReviewResult, error) {
	if draft.Receiver == "" || draft.Amount == "" {
		return models.ReviewResult{State: models.StateDraft}, ErrEmptyFields
	}

	requiredChainID := registry.RequiredChainID(draft.Network)
	if s.chain.ActiveChainID() != requiredChainID {
		// просим переключить сеть, дальше пользователь повторяет Review сам
		if err := s.chain.SwitchChain(requiredChainID); err != nil {
			logrus.Errorf("Не удалось запросить переключение сети на %d: %v", requiredChainID, err)
		}
		return models.ReviewResult{
			State:        models.StateNetworkMismatch,
			Network:      draft.Network,
			RequiredChId: requiredChainID,
		}, nil
	}

	token, ok := registry.TokenBySymbol(draft.Network, draft.TokenSymbol)
	if !ok {
		token = registry.FirstToken(draft.Network)
	}

	contactName := ""
	if contacts, err := s.contacts.GetContacts(userID); err == nil {
		contactName, _ = s.contacts.Lookup(contacts, draft.Receiver)
	}

	return models.ReviewResult{
		State:        models.StateConfirming,
		Token:        token,
		Receiver:     draft.Receiver,
		ContactName:  contactName,
		Amount:       draft.Amount,
		Network:      draft.Network,
		RequiredChId: requiredChainID,
	}, nil
}

// Confirm — переходы Confirming → Submitting → Recording → Succeeded | Failed.
// При успехе черновик сбрасывается, при ошибке отправки — сохраняется для
// повторной попытки. Ошибка записи в историю перевод не роняет.
func (s *TransferService) Confirm(ctx context.Context, userID int64) (models.TransferResult, error) {
	s.mu.Lock()

	if s.inFlight[userID] {
		s.mu.Unlock()
		return models.TransferResult{}, ErrTransferInFlight
	}
	s.inFlight[userID] = true
	draft := *s.draftFor(userID)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, userID)
		s.mu.Unlock()
	}()

	review, err := s.reviewDraft(userID, draft)
	if err != nil {
		return models.TransferResult{}, err
	}
	if review.State != models.StateConfirming {
		return models.TransferResult{State: review.State}, nil
	}

	wallet, err := s.wallets.GetWallet(userID)
	if err != nil {
		return models.TransferResult{}, errors.Wrap(err, "кошелёк пользователя не найден")
	}

	rawAmount, amountValue, err := NormalizeAmount(review.Amount, review.Token.Decimals)
	if err != nil {
		return models.TransferResult{}, err
	}

	// Submitting: ровно один путь отправки, выбор только по виду токена
	var txHash string
	if review.Token.Kind == models.KindNative {
		txHash, err = s.chain.SendNative(ctx, wallet.PrivateKey, review.Receiver, rawAmount)
	} else {
		txHash, err = s.chain.TransferToken(ctx, wallet.PrivateKey, review.Token.Address, review.Receiver, rawAmount)
	}

	if err != nil {
		logrus.Errorf("Перевод отклонён для пользователя %d: %v", userID, err)
		return models.TransferResult{
			State: models.StateFailed,
			Error: failureMessage(err),
		}, nil
	}

	// Recording: история — наблюдательная, её ошибка не отменяет перевод
	receiverLabel := review.Receiver
	if review.ContactName != "" {
		receiverLabel = review.ContactName
	}
	description := fmt.Sprintf("Sent %v %s to %s", amountValue, review.Token.Symbol, receiverLabel)

	if err := s.history.CreateTransaction(userID, "send", amountValue, description, txHash); err != nil {
		logrus.Errorf("Не удалось записать перевод в историю (tx %s): %v", txHash, err)
	}

	// Succeeded: сброс черновика
	s.mu.Lock()
	stored := s.draftFor(userID)
	stored.Receiver = ""
	stored.Amount = ""
	stored.TokenSymbol = registry.FirstToken(stored.Network).Symbol
	s.mu.Unlock()

	return models.TransferResult{
		State:  models.StateSucceeded,
		TxHash: txHash,
	}, nil
}

func (s *TransferService) GetTransactions(userID int64) ([]models.Transaction, error) {
	return s.history.GetTransactions(userID)
}

// NormalizeAmount переводит человеческий ввод в минимальные единицы токена.
// Точка — разделитель тысяч, запятая — дробной части: "1.234,56" → 1234.56.
func NormalizeAmount(input string, decimals uint8) (*big.Int, float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(input), ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	value, ok := new(big.Rat).SetString(cleaned)
	if !ok || value.Sign() < 0 {
		return nil, 0, ErrBadAmount
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	scaled := new(big.Rat).Mul(value, new(big.Rat).SetInt(scale))

	raw := roundRat(scaled)
	approx, _ := value.Float64()

	return raw, approx, nil
}

// roundRat округляет до ближайшего целого, половина — вверх
func roundRat(r *big.Rat) *big.Int {
	num := new(big.Int).Set(r.Num())
	denom := r.Denom()

	quo, rem := new(big.Int).QuoRem(num, denom, new(big.Int))
	if new(big.Int).Lsh(rem, 1).Cmp(denom) >= 0 {
		quo.Add(quo, big.NewInt(1))
	}
	return quo
}

func failureMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Транзакция не прошла"
	}
	return err.Error()
}
