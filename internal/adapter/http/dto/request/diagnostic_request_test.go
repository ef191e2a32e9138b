package request

import (
	"encoding/json"
	"testing"
)

func TestDiagnosticSubmitRequest_ToSessionInput(t *testing.T) {
	raw := `{
		"order_id": " os-1 ",
		"org_id": "org-1",
		"components": [
			{
				"component_key": "bloco",
				"responses": {
					"item-1": {"value": true, "notes": "trinca visivel", "photos": [{"key": "p1", "url": "http://x/p1"}]},
					"item-2": {"value": 81.5}
				},
				"parts": [{"code": "PST-01", "name": "Pistão", "quantity": 4, "unit_price": 120}]
			},
			{
				"component_key": "virabrequim",
				"services": [{"description": "Retífica de virabrequim", "quantity": 2, "unit_price": 90}]
			}
		],
		"final_opinion": "Recuperável"
	}`

	var req DiagnosticSubmitRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	in := req.ToSessionInput()
	if in.OrderID != "os-1" {
		t.Fatalf("expected trimmed order id, got %q", in.OrderID)
	}
	if in.OrgID != "org-1" || in.FinalOpinion != "Recuperável" {
		t.Fatalf("unexpected session fields: %+v", in)
	}
	if len(in.Components) != 2 {
		t.Fatalf("expected 2 components, got %d", len(in.Components))
	}

	bloco := in.Components[0]
	if bloco.ComponentKey != "bloco" || len(bloco.Responses) != 2 {
		t.Fatalf("unexpected bloco component: %+v", bloco)
	}
	r1 := bloco.Responses["item-1"]
	if r1.Value != true || r1.Notes != "trinca visivel" || len(r1.Photos) != 1 || r1.Photos[0].Key != "p1" {
		t.Fatalf("unexpected item-1 response: %+v", r1)
	}
	if v, ok := bloco.Responses["item-2"].Value.(float64); !ok || v != 81.5 {
		t.Fatalf("expected numeric value for item-2, got %+v", bloco.Responses["item-2"].Value)
	}
	if len(bloco.Parts) != 1 || bloco.Parts[0].Code != "PST-01" {
		t.Fatalf("unexpected bloco parts: %+v", bloco.Parts)
	}

	vira := in.Components[1]
	if len(vira.Services) != 1 || vira.Services[0].Description != "Retífica de virabrequim" {
		t.Fatalf("unexpected virabrequim services: %+v", vira.Services)
	}
	if len(vira.Responses) != 0 {
		t.Fatalf("expected no responses for virabrequim, got %d", len(vira.Responses))
	}
}

func TestDiagnosticSubmitRequest_ResolveOrderID(t *testing.T) {
	if got := (DiagnosticSubmitRequest{OrderID: "   "}).ResolveOrderID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := (DiagnosticSubmitRequest{OrderID: " os-9 "}).ResolveOrderID(); got != "os-9" {
		t.Fatalf("expected os-9, got %q", got)
	}
}
