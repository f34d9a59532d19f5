package cache

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"social_wallet_back/models"
)

// PriceCache хранит последнюю собранную таблицу цен.
// Таблица подменяется целиком, частичных обновлений нет.
type PriceCache struct {
	mu    sync.Mutex
	table models.PriceTable
	ttl   time.Duration
}

func NewPriceCache(ttl time.Duration) *PriceCache {
	return &PriceCache{ttl: ttl}
}

// Get возвращает таблицу из кэша или false, если её нет или она устарела
func (c *PriceCache) Get() (models.PriceTable, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.table.Prices == nil {
		return models.PriceTable{}, false
	}

	if time.Since(c.table.RefreshedAt) > c.ttl {
		return models.PriceTable{}, false
	}

	logrus.Debug("Таблица цен взята из кэша")
	return c.table, true
}

// Set сохраняет свежую таблицу цен в кэш
func (c *PriceCache) Set(table models.PriceTable) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.table = table

	logrus.Infof("Таблица цен сохранена в кэш: %d токенов", len(table.Prices))
}
