package usecase

import (
	"context"
	"errors"
	"testing"

	"retifica_xpto/internal/domain/entities"
	mock_interfaces "retifica_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLoadSession(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		_, err := LoadSession(context.Background(), nil, SessionInput{OrderID: "  "})
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("provider error aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIChecklistProvider(ctrl)
		provider.EXPECT().GetByComponent(gomock.Any(), "org-1", "bloco").Return(entities.Checklist{}, errors.New("db"))

		_, err := LoadSession(context.Background(), provider, SessionInput{
			OrderID:    "os-1",
			OrgID:      "org-1",
			Components: []ComponentInput{{ComponentKey: "bloco"}},
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("materializes session in display order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIChecklistProvider(ctrl)
		provider.EXPECT().GetByComponent(gomock.Any(), "org-1", "bloco").Return(blockChecklist(), nil)
		provider.EXPECT().GetByComponent(gomock.Any(), "org-1", "virabrequim").Return(entities.Checklist{}, nil)

		in := SessionInput{
			OrderID: "os-1",
			OrgID:   "org-1",
			Components: []ComponentInput{
				{
					ComponentKey: "bloco",
					Responses: map[string]entities.ChecklistResponse{
						"i1": {Value: true, Notes: "trinca lateral", Photos: []entities.PhotoRef{{Key: "p1"}}},
					},
				},
				{
					ComponentKey: "virabrequim",
					Parts:        []entities.Part{{Name: "Bronzina", Quantity: 2, UnitPrice: 45}},
					Services:     []entities.Service{{Description: "Polimento", Quantity: 1, UnitPrice: 150}},
				},
			},
			FinalOpinion: "recuperável",
		}

		s, err := LoadSession(context.Background(), provider, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := s.Components(); len(got) != 2 || got[0] != "bloco" || got[1] != "virabrequim" {
			t.Fatalf("unexpected component order: %v", got)
		}

		bloco := s.State("bloco")
		if !bloco.HasChecklistResponses() {
			t.Fatalf("expected checklist responses: %+v", bloco)
		}
		r := bloco.Responses["i1"]
		if r.Value != true || r.Notes != "trinca lateral" || len(r.Photos) != 1 {
			t.Fatalf("unexpected response: %+v", r)
		}

		vira := s.State("virabrequim")
		if vira.HasChecklistResponses() {
			t.Fatalf("component without checklist must not report responses")
		}
		if !vira.HasPartsOrServices() {
			t.Fatalf("expected parts/services")
		}
		if vira.Parts[0].Total != 90 || vira.Services[0].Total != 150 {
			t.Fatalf("totals must be recomputed on load: %+v %+v", vira.Parts[0], vira.Services[0])
		}

		if s.FinalOpinion != "recuperável" {
			t.Fatalf("session fields not set: %+v", s)
		}
	})
}
