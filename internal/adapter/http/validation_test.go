package http

import (
	"errors"
	"testing"
)

func TestToFieldErrors_UsesJSONNames(t *testing.T) {
	type P struct {
		ItemType string  `json:"item_type" validate:"required,oneof=lost found"`
		ItemID   uint64  `json:"item_id" validate:"required"`
		Name     string  `json:"name,omitempty" validate:"max=3"`
		Score    float64 `json:"score" validate:"gte=-1,lte=1"`
		Match    *uint64 `json:"match_id" validate:"omitempty,gt=0"`
	}
	zero := uint64(0)
	err := NewValidator().Validate(P{ItemType: "stolen", Name: "wallet", Score: 2, Match: &zero})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	fe := ToFieldErrors(err)

	checks := []struct{ field, msg string }{
		{"item_type", "must be one of: lost, found"},
		{"item_id", "is required"},
		{"name", "at most 3"},
		{"score", "less than or equal to 1"},
		{"match_id", "greater than 0"},
	}
	for _, c := range checks {
		if !containsFieldMsg(fe, c.field, c.msg) {
			t.Fatalf("missing %s => %q in %+v", c.field, c.msg, fe)
		}
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 || fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe)
	}
}
