package service

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"space_catalog/internal/app/ds"
)

var validate = validator.New()

// ValidateCreate — проверка запроса на создание: все обязательные поля
// присутствуют и укладываются в границы. Всё или ничего.
func ValidateCreate(req ds.CreateShipRequest) error {
	if err := validate.Struct(req); err != nil {
		validationErrs, ok := err.(validator.ValidationErrors)
		if ok && len(validationErrs) > 0 {
			fieldErr := validationErrs[0]
			return ds.NewValidationError(fieldErr.Field(), fmt.Sprintf("fails %q constraint", fieldErr.Tag()))
		}
		return err
	}
	if !prodYearInRange(ds.ProdDateTime(*req.ProdDate)) {
		return ds.NewValidationError("prodDate", fmt.Sprintf("production year must be in [%d, %d]", MinProdYear, MaxProdYear))
	}
	return nil
}

// ValidateUpdate — проверка запроса на частичное обновление: каждое
// присутствующее поле обязано укладываться в те же границы, что и при
// создании; отсутствующее поле пропускается.
func ValidateUpdate(id int64, req ds.UpdateShipRequest) error {
	if id <= 0 {
		return ds.NewValidationError("id", "must be a positive integer")
	}
	if req.Name != nil && !nameValid(*req.Name) {
		return ds.NewValidationError("name", "must be 1..50 characters")
	}
	if req.Planet != nil && !nameValid(*req.Planet) {
		return ds.NewValidationError("planet", "must be 1..50 characters")
	}
	if req.ShipType != nil && !req.ShipType.IsValid() {
		return ds.NewValidationError("shipType", "unknown ship type")
	}
	if req.ProdDate != nil {
		if *req.ProdDate < 0 {
			return ds.NewValidationError("prodDate", "must be non-negative")
		}
		if !prodYearInRange(ds.ProdDateTime(*req.ProdDate)) {
			return ds.NewValidationError("prodDate", fmt.Sprintf("production year must be in [%d, %d]", MinProdYear, MaxProdYear))
		}
	}
	if req.Speed != nil && !speedValid(*req.Speed) {
		return ds.NewValidationError("speed", "must be in [0.01, 0.99]")
	}
	if req.CrewSize != nil && !crewSizeValid(*req.CrewSize) {
		return ds.NewValidationError("crewSize", "must be in [1, 9999]")
	}
	return nil
}

// Пополевые проверки границ, общие для валидации и best-effort обновления

func nameValid(value string) bool {
	length := utf8.RuneCountInString(value)
	return length >= 1 && length <= 50
}

func speedValid(value float64) bool {
	return value >= 0.01 && value <= 0.99
}

func crewSizeValid(value int) bool {
	return value >= 1 && value <= 9999
}

// Год извлекается в локальной таймзоне системы
func prodYearInRange(prodDate time.Time) bool {
	year := prodDate.Year()
	return year >= MinProdYear && year <= MaxProdYear
}
