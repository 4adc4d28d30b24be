package redemption

import (
	"strings"

	"github.com/mmynk/tastyhub/internal/models"
)

// Validation is the outcome of a completeness check.
type Validation struct {
	Complete bool   `json:"complete"`
	Message  string `json:"message,omitempty"`
}

// Check reports whether selection satisfies deal and, if not, the first
// thing the user still has to do.
func Check(deal models.Deal, selection []models.MenuItem) Validation {
	switch deal.Rule.Kind {
	case models.RuleSingleSlot:
		if len(selection) != 1 {
			return incomplete("Please select an item")
		}
	case models.RuleSlotted:
		assigned := assign(deal.Rule.Slots, selection)
		filled := make([]bool, len(deal.Rule.Slots))
		for _, slot := range assigned {
			if slot != bonus {
				filled[slot] = true
			}
		}
		for i, s := range deal.Rule.Slots {
			if s.Required && !filled[i] {
				return incomplete("Please select " + withArticle(s.Name))
			}
		}
		if len(selection) == 0 {
			return incomplete("Please select at least one item")
		}
	default:
		if len(selection) == 0 {
			return incomplete("Please select at least one item")
		}
	}
	return Validation{Complete: true}
}

// IsComplete reports whether selection can be committed under deal.
func IsComplete(deal models.Deal, selection []models.MenuItem) bool {
	return Check(deal, selection).Complete
}

// ValidationMessage is empty when selection is complete.
func ValidationMessage(deal models.Deal, selection []models.MenuItem) string {
	return Check(deal, selection).Message
}

func incomplete(msg string) Validation {
	return Validation{Message: msg}
}

func withArticle(noun string) string {
	if noun == "" {
		return "an item"
	}
	if strings.ContainsRune("aeiou", rune(strings.ToLower(noun)[0])) {
		return "an " + noun
	}
	return "a " + noun
}
