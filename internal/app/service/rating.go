package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Допустимый диапазон годов производства
const (
	MinProdYear = 2800
	MaxProdYear = 3019
)

// ComputeRating — рейтинг корабля: 80 * speed * k / (3019 - год + 1),
// k = 0.5 для б/у корабля. Результат округляется до двух знаков (половина вверх).
// Валидация не пропускает годы вне диапазона, поэтому знаменатель всегда >= 1.
func ComputeRating(prodDate time.Time, isUsed bool, speed float64) float64 {
	usedFactor := 1.0
	if isUsed {
		usedFactor = 0.5
	}
	raw := 80 * speed * usedFactor / float64(MaxProdYear-prodDate.Year()+1)
	rating, _ := decimal.NewFromFloat(raw).Round(2).Float64()
	return rating
}
