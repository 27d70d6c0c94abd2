package helpers

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/doeshing/coach-go/internal/domain"
)

// PromptForString prompts the user for a string input with an optional default value
func PromptForString(out io.Writer, reader *bufio.Reader, promptText string, defaultValue string) string {
	fmt.Fprintf(out, "%s ", promptText)

	if defaultValue != "" {
		fmt.Fprintf(out, "(default: %s)", defaultValue)
	}

	fmt.Fprint(out, ": ")
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)

	if line == "" {
		return defaultValue
	}
	return line
}

// PromptForChoice prompts for free text shown with its default in brackets
func PromptForChoice(out io.Writer, reader *bufio.Reader, promptText string, defaultValue string) string {
	fmt.Fprintf(out, "%s [%s]: ", promptText, defaultValue)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)

	if line == "" {
		return defaultValue
	}
	return line
}

// PromptForYesNo prompts the user for a yes/no question
func PromptForYesNo(out io.Writer, reader *bufio.Reader, promptText string, defaultValue bool) bool {
	label := "y/N"
	if defaultValue {
		label = "Y/n"
	}
	fmt.Fprintf(out, "%s [%s]: ", promptText, label)

	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(strings.ToLower(line))

	if line == "" {
		return defaultValue
	}
	return line == "y" || line == "yes"
}

// PromptForOption lists options, plus "Other..." when allowOther is set, and
// returns the chosen value. Picking Other returns domain.OtherOption and the
// free text typed next.
func PromptForOption(out io.Writer, reader *bufio.Reader, promptText string, options []string, defaultValue string, allowOther bool) (string, string) {
	fmt.Fprintf(out, "%s\n", promptText)
	for i, option := range options {
		fmt.Fprintf(out, "  %d) %s\n", i+1, option)
	}
	if allowOther {
		fmt.Fprintf(out, "  %d) Other...\n", len(options)+1)
	}
	fmt.Fprintf(out, "Choose [%s]: ", defaultValue)

	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		return defaultValue, ""
	case allowOther && strings.EqualFold(line, domain.OtherOption):
		return domain.OtherOption, PromptForString(out, reader, "Describe", "")
	}

	if n, err := strconv.Atoi(line); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], ""
		}
		if allowOther && n == len(options)+1 {
			return domain.OtherOption, PromptForString(out, reader, "Describe", "")
		}
	}
	return line, ""
}

// PromptFitnessForm fills form interactively, keeping its current values as defaults.
func PromptFitnessForm(out io.Writer, in io.Reader, form domain.FitnessForm) domain.FitnessForm {
	reader := bufio.NewReader(in)

	form.Goal = PromptForString(out, reader, "Main goal (e.g. Build muscle, lose 10lbs...)", form.Goal)
	form.Frequency, _ = PromptForOption(out, reader, "Days per week", domain.FrequencyOptions, form.Frequency, false)
	choose := func(text string, options []string, value, custom string) (string, string) {
		picked, typed := PromptForOption(out, reader, text, options, value, true)
		if picked == value && typed == "" {
			typed = custom
		}
		return picked, typed
	}
	form.Experience, form.ExperienceCustom = choose("Experience level", domain.ExperienceOptions, form.Experience, form.ExperienceCustom)
	form.Equipment, form.EquipmentCustom = choose("Access to equipment", domain.EquipmentOptions, form.Equipment, form.EquipmentCustom)
	form.Split, form.SplitCustom = choose("Preferred split", domain.SplitOptions, form.Split, form.SplitCustom)
	form.Injuries = PromptForString(out, reader, "Injuries / limitations (e.g. Bad left knee...)", form.Injuries)
	form.Notes = PromptForString(out, reader, "Optional notes", form.Notes)
	return form
}
