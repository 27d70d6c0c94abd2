package domain

import "strings"

// OtherOption is the select value that defers to the companion free-text field.
const OtherOption = "other"

// Fitness form defaults, matching the first option of each select.
const (
	DefaultFrequency  = "3-4"
	DefaultExperience = "Beginner"
	DefaultEquipment  = "Full Gym"
	DefaultSplit      = "Upper/Lower"
)

// Select choices offered by the fitness form, defaults first.
var (
	FrequencyOptions  = []string{"1-2", "3-4", "5+"}
	ExperienceOptions = []string{"Beginner", "Intermediate", "Advanced"}
	EquipmentOptions  = []string{"Full Gym", "Limited Home Gym", "Bodyweight Only"}
	SplitOptions      = []string{"Upper/Lower", "Push/Pull/Legs", "Full Body"}
)

// FitnessForm holds raw form values before they leave the client.
// Experience, Equipment and Split may hold OtherOption, in which case the
// matching *Custom field carries the user's text.
type FitnessForm struct {
	Frequency        string `json:"frequency"`
	Goal             string `json:"goal"`
	Experience       string `json:"experience"`
	ExperienceCustom string `json:"experience_custom"`
	Equipment        string `json:"equipment"`
	EquipmentCustom  string `json:"equipment_custom"`
	Injuries         string `json:"injuries"`
	Split            string `json:"split"`
	SplitCustom      string `json:"split_custom"`
	Notes            string `json:"notes"`
}

// NewFitnessForm returns a form preset to the select defaults.
func NewFitnessForm() FitnessForm {
	return FitnessForm{
		Frequency:  DefaultFrequency,
		Experience: DefaultExperience,
		Equipment:  DefaultEquipment,
		Split:      DefaultSplit,
	}
}

// Validate applies the only required-field rule: a goal must be given.
func (f FitnessForm) Validate() error {
	if strings.TrimSpace(f.Goal) == "" {
		return ErrGoalRequired
	}
	return nil
}

// Resolve produces the request that is sent and later stored in history.
// A sentinel selection never survives resolution.
func (f FitnessForm) Resolve() GenerationRequest {
	return GenerationRequest{
		Type:       PersonaFitness,
		Frequency:  f.Frequency,
		Goal:       f.Goal,
		Experience: resolveOther(f.Experience, f.ExperienceCustom),
		Equipment:  resolveOther(f.Equipment, f.EquipmentCustom),
		Injuries:   f.Injuries,
		Split:      resolveOther(f.Split, f.SplitCustom),
		Notes:      f.Notes,
	}
}

func resolveOther(selected, custom string) string {
	if strings.EqualFold(selected, OtherOption) {
		return custom
	}
	return selected
}
