package usecase

import (
	"testing"

	"retifica_xpto/internal/domain/entities"
)

func TestValidateItem_RequiredEmptyByType(t *testing.T) {
	cases := []struct {
		name     string
		itemType entities.ItemType
		response entities.ChecklistResponse
	}{
		{name: "checkbox false", itemType: entities.ItemTypeCheckbox, response: entities.ChecklistResponse{Value: false}},
		{name: "checkbox nil", itemType: entities.ItemTypeCheckbox, response: entities.ChecklistResponse{}},
		{name: "measurement zero", itemType: entities.ItemTypeMeasurement, response: entities.ChecklistResponse{Value: 0.0}},
		{name: "measurement nil", itemType: entities.ItemTypeMeasurement, response: entities.ChecklistResponse{}},
		{name: "text empty", itemType: entities.ItemTypeText, response: entities.ChecklistResponse{Value: ""}},
		{name: "text whitespace", itemType: entities.ItemTypeText, response: entities.ChecklistResponse{Value: "   "}},
		{name: "select empty", itemType: entities.ItemTypeSelect, response: entities.ChecklistResponse{Value: ""}},
		{name: "photo none", itemType: entities.ItemTypePhoto, response: entities.ChecklistResponse{Photos: []entities.PhotoRef{}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := entities.ChecklistItem{ID: "i1", Name: "Item", ItemType: tc.itemType, IsRequired: true}
			res := ValidateItem(item, tc.response)
			if res.IsValid {
				t.Fatalf("expected invalid, got %+v", res)
			}
			if res.Message != MsgRequired {
				t.Fatalf("expected %q, got %q", MsgRequired, res.Message)
			}
		})
	}
}

func TestValidateItem_RequiredFilled(t *testing.T) {
	cases := []struct {
		name     string
		itemType entities.ItemType
		response entities.ChecklistResponse
	}{
		{name: "checkbox true", itemType: entities.ItemTypeCheckbox, response: entities.ChecklistResponse{Value: true}},
		{name: "measurement non-zero", itemType: entities.ItemTypeMeasurement, response: entities.ChecklistResponse{Value: 12.5}},
		{name: "measurement int", itemType: entities.ItemTypeMeasurement, response: entities.ChecklistResponse{Value: 3}},
		{name: "text filled", itemType: entities.ItemTypeText, response: entities.ChecklistResponse{Value: "trinca no bloco"}},
		{name: "select chosen", itemType: entities.ItemTypeSelect, response: entities.ChecklistResponse{Value: "ruim"}},
		{name: "photo attached", itemType: entities.ItemTypePhoto, response: entities.ChecklistResponse{Photos: []entities.PhotoRef{{Key: "p1"}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := entities.ChecklistItem{ID: "i1", Name: "Item", ItemType: tc.itemType, IsRequired: true}
			res := ValidateItem(item, tc.response)
			if !res.IsValid {
				t.Fatalf("expected valid, got %+v", res)
			}
		})
	}
}

func TestValidateItem_NonRequiredAlwaysValid(t *testing.T) {
	for _, itemType := range []entities.ItemType{
		entities.ItemTypeCheckbox,
		entities.ItemTypeMeasurement,
		entities.ItemTypeText,
		entities.ItemTypeSelect,
		entities.ItemTypePhoto,
	} {
		t.Run(string(itemType), func(t *testing.T) {
			item := entities.ChecklistItem{ID: "i1", Name: "Item", ItemType: itemType, IsRequired: false}
			if res := ValidateItem(item, entities.ChecklistResponse{}); !res.IsValid {
				t.Fatalf("expected valid for empty value, got %+v", res)
			}
		})
	}
}

func TestValidateItem_MeasurementRange(t *testing.T) {
	item := entities.ChecklistItem{
		ID:            "i1",
		Name:          "Diâmetro do cilindro",
		ItemType:      entities.ItemTypeMeasurement,
		ExpectedRange: &entities.ExpectedRange{Min: 80, Max: 82},
	}

	t.Run("below range warns", func(t *testing.T) {
		res := ValidateItem(item, entities.ChecklistResponse{Value: 79.5})
		if !res.IsValid {
			t.Fatalf("range deviation must not invalidate: %+v", res)
		}
		if res.Warning != MsgOutOfRange {
			t.Fatalf("expected %q, got %q", MsgOutOfRange, res.Warning)
		}
	})

	t.Run("above range warns", func(t *testing.T) {
		res := ValidateItem(item, entities.ChecklistResponse{Value: 82.01})
		if res.Warning != MsgOutOfRange {
			t.Fatalf("expected %q, got %q", MsgOutOfRange, res.Warning)
		}
	})

	t.Run("inside range clean", func(t *testing.T) {
		res := ValidateItem(item, entities.ChecklistResponse{Value: 81.0})
		if !res.IsValid || res.Warning != "" {
			t.Fatalf("expected clean result, got %+v", res)
		}
	})

	t.Run("warning independent of required", func(t *testing.T) {
		required := item
		required.IsRequired = true
		res := ValidateItem(required, entities.ChecklistResponse{Value: 90.0})
		if !res.IsValid || res.Warning != MsgOutOfRange {
			t.Fatalf("expected valid with warning, got %+v", res)
		}
	})

	t.Run("required and empty keeps required message", func(t *testing.T) {
		required := item
		required.IsRequired = true
		res := ValidateItem(required, entities.ChecklistResponse{Value: 0.0})
		if res.IsValid || res.Message != MsgRequired {
			t.Fatalf("expected required failure, got %+v", res)
		}
		if res.Warning != "" {
			t.Fatalf("unanswered measurement must not warn, got %+v", res)
		}
	})
}
