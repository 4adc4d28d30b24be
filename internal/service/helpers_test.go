package service

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/tastyhub/internal/models"
	"github.com/mmynk/tastyhub/internal/money"
)

func catalogPrice(dollars int64) decimal.Decimal {
	return decimal.NewFromInt(dollars)
}

func formatted(d decimal.Decimal) string {
	return money.Format(d)
}

func profileUpdate(name, phone *string) models.ProfileUpdate {
	return models.ProfileUpdate{DisplayName: name, Phone: phone}
}
