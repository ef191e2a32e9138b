package usecase

import (
	"strings"

	"retifica_xpto/internal/domain/entities"
)

// User-facing validation messages (pt-BR, matching the rest of the product).
const (
	MsgRequired   = "Obrigatório"
	MsgOutOfRange = "Fora do padrão"
)

// ItemValidation is the outcome of validating one response against one item.
//
// Message is set when the item fails hard validation (required and empty).
// Warning is set independently when a measurement falls outside its expected
// range; warnings never make IsValid false on their own.
type ItemValidation struct {
	IsValid bool
	Message string
	Warning string
}

// IsEmptyValue reports whether the recorded response counts as "not answered"
// for the item's type: boolean false, blank text, numeric zero, a select with
// no chosen value, or a photo item with zero photos.
func IsEmptyValue(item entities.ChecklistItem, response entities.ChecklistResponse) bool {
	switch item.ItemType {
	case entities.ItemTypeCheckbox:
		v, ok := response.Value.(bool)
		return !ok || !v
	case entities.ItemTypeMeasurement:
		v, ok := numericValue(response.Value)
		return !ok || v == 0
	case entities.ItemTypeText, entities.ItemTypeSelect:
		v, ok := response.Value.(string)
		return !ok || strings.TrimSpace(v) == ""
	case entities.ItemTypePhoto:
		return len(response.Photos) == 0
	default:
		return response.Value == nil
	}
}

// ValidateItem validates a single response against a single item definition.
// Pure function, no side effects.
func ValidateItem(item entities.ChecklistItem, response entities.ChecklistResponse) ItemValidation {
	empty := IsEmptyValue(item, response)

	out := ItemValidation{IsValid: true}
	if item.IsRequired && empty {
		out.IsValid = false
		out.Message = MsgRequired
	}

	// Range check applies to any answered measurement, required or not.
	// An unanswered measurement (zero) is a missing reading, not a bad one.
	if item.ItemType == entities.ItemTypeMeasurement && item.ExpectedRange != nil && !empty {
		if v, ok := numericValue(response.Value); ok {
			if v < item.ExpectedRange.Min || v > item.ExpectedRange.Max {
				out.Warning = MsgOutOfRange
			}
		}
	}

	return out
}

// numericValue coerces the union-typed response value into a float64.
// JSON decoding hands us float64; direct callers may pass int.
func numericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
