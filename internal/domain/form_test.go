package domain_test

import (
	"errors"
	"testing"

	"github.com/doeshing/coach-go/internal/domain"
)

func TestFitnessFormResolve(t *testing.T) {
	tests := []struct {
		name           string
		form           domain.FitnessForm
		wantExperience string
		wantEquipment  string
		wantSplit      string
	}{
		{
			name:           "defaults pass through",
			form:           domain.NewFitnessForm(),
			wantExperience: "Beginner",
			wantEquipment:  "Full Gym",
			wantSplit:      "Upper/Lower",
		},
		{
			name: "other resolves to custom text",
			form: domain.FitnessForm{
				Experience:       domain.OtherOption,
				ExperienceCustom: "Returning after 5 years off",
				Equipment:        domain.OtherOption,
				EquipmentCustom:  "Kettlebells and a pull-up bar",
				Split:            domain.OtherOption,
				SplitCustom:      "Bro split",
			},
			wantExperience: "Returning after 5 years off",
			wantEquipment:  "Kettlebells and a pull-up bar",
			wantSplit:      "Bro split",
		},
		{
			name: "custom text ignored without sentinel",
			form: domain.FitnessForm{
				Experience:       "Advanced",
				ExperienceCustom: "stale text",
				Equipment:        "Bodyweight Only",
				Split:            "Full Body",
			},
			wantExperience: "Advanced",
			wantEquipment:  "Bodyweight Only",
			wantSplit:      "Full Body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.form.Resolve()
			if req.Type != domain.PersonaFitness {
				t.Errorf("Type = %q, want fitness", req.Type)
			}
			if req.Experience != tt.wantExperience {
				t.Errorf("Experience = %q, want %q", req.Experience, tt.wantExperience)
			}
			if req.Equipment != tt.wantEquipment {
				t.Errorf("Equipment = %q, want %q", req.Equipment, tt.wantEquipment)
			}
			if req.Split != tt.wantSplit {
				t.Errorf("Split = %q, want %q", req.Split, tt.wantSplit)
			}
			for _, v := range []string{req.Experience, req.Equipment, req.Split} {
				if v == domain.OtherOption {
					t.Fatalf("sentinel leaked into resolved request: %+v", req)
				}
			}
		})
	}
}

func TestFitnessFormValidate(t *testing.T) {
	form := domain.NewFitnessForm()
	if err := form.Validate(); !errors.Is(err, domain.ErrGoalRequired) {
		t.Fatalf("Validate() = %v, want ErrGoalRequired", err)
	}
	form.Goal = "lose 10lbs"
	if err := form.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestGenerationRequestKind(t *testing.T) {
	tests := []struct {
		req  domain.GenerationRequest
		want domain.RequestKind
	}{
		{domain.GenerationRequest{Type: "fitness"}, domain.KindFitness},
		{domain.GenerationRequest{Type: "cooking"}, domain.KindCooking},
		{domain.GenerationRequest{Type: "fitness", IsFollowUp: true}, domain.KindFollowUp},
		{domain.GenerationRequest{IsFollowUp: true}, domain.KindFollowUp},
		{domain.GenerationRequest{Type: "yoga"}, domain.KindUnknown},
		{domain.GenerationRequest{}, domain.KindUnknown},
	}
	for _, tt := range tests {
		if got := tt.req.Kind(); got != tt.want {
			t.Errorf("Kind(%+v) = %s, want %s", tt.req, got, tt.want)
		}
	}
}
