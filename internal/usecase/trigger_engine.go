package usecase

import "retifica_xpto/internal/domain/entities"

// GenerateServices derives unpriced service candidates from a component's
// recorded answers: one candidate per (answered item, template) pair, for
// every item whose value is truthy under the same emptiness rule the
// validator uses.
//
// Resolution is strictly per component; candidates never leak across
// components. Pricing happens downstream through the pricing collaborator.
func GenerateServices(checklist entities.Checklist, responses map[string]entities.ChecklistResponse) []entities.ServiceCandidate {
	var out []entities.ServiceCandidate
	for _, item := range checklist.Items {
		if len(item.TriggersService) == 0 {
			continue
		}
		if IsEmptyValue(item, responses[item.ID]) {
			continue
		}
		for _, tpl := range item.TriggersService {
			out = append(out, entities.ServiceCandidate{
				Template:    tpl,
				ItemID:      item.ID,
				TriggeredBy: item.Name,
			})
		}
	}
	return out
}
