package models

import "time"

// PriceTable — курсы всех токенов в USD на момент RefreshedAt.
// Таблица пересобирается целиком на каждом цикле обновления.
type PriceTable struct {
	Prices      map[string]float64 `json:"prices"`
	RefreshedAt time.Time          `json:"refreshed_at"`
}

func (t PriceTable) PriceOf(symbol string) float64 {
	return t.Prices[symbol]
}
