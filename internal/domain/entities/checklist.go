package entities

// ItemType is the closed set of checklist item kinds.
//
// Validation and trigger evaluation switch on this type; adding a new kind
// requires updating ValidateItem and IsEmptyValue in the usecase layer.

type ItemType string

const (
	ItemTypeCheckbox    ItemType = "checkbox"
	ItemTypeMeasurement ItemType = "measurement"
	ItemTypeText        ItemType = "text"
	ItemTypeSelect      ItemType = "select"
	ItemTypePhoto       ItemType = "photo"
)

// ExpectedRange is the acceptable measurement window for measurement items.
type ExpectedRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SelectOption is one choice of a select item.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ServiceTemplate describes a service that a checklist item generates when
// its recorded answer is truthy. Pricing is resolved later by the pricing
// collaborator; the template only carries identification.
type ServiceTemplate struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ChecklistItem is one inspection item of a component checklist.
//
// Schema data is immutable: items are loaded from the checklist provider and
// never mutated by the diagnostic pipeline.
type ChecklistItem struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	ItemType        ItemType          `json:"item_type"`
	IsRequired      bool              `json:"is_required"`
	ExpectedRange   *ExpectedRange    `json:"expected_range,omitempty"`
	Options         []SelectOption    `json:"options,omitempty"`
	TriggersService []ServiceTemplate `json:"triggers_service,omitempty"`
	DisplayOrder    int               `json:"display_order"`
	HelpText        string            `json:"help_text,omitempty"`
}

// Checklist is the ordered inspection checklist for one macro-component
// (engine block, crankshaft, cylinder head, ...).
type Checklist struct {
	ID           string          `json:"id"`
	ComponentKey string          `json:"component_key"`
	Items        []ChecklistItem `json:"items"`
}

// IsZero reports whether the checklist was not found by the provider.
func (c Checklist) IsZero() bool {
	return c.ID == ""
}
