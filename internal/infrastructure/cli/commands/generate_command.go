package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/coach-go/internal/app"
	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/infrastructure/cli/helpers"
)

// ErrSilent is returned after a failure has already been shown to the user.
var ErrSilent = errors.New("failure already reported")

// generationFlags are shared by every command that sends a request.
type generationFlags struct {
	model     string
	server    string
	noHistory bool
}

func (f *generationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.model, "model", "m", "", "Override model name (default from config)")
	cmd.Flags().StringVar(&f.server, "server", "", "Send the request to a running coach server (e.g. http://localhost:3000)")
	cmd.Flags().BoolVar(&f.noHistory, "no-history", false, "Do not record the result in local history")
}

// NewGenerateCommand creates the generate command with one subcommand per persona
func NewGenerateCommand(container *app.Container) *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a plan or recipe",
	}

	generateCmd.AddCommand(
		newGenerateFitnessCommand(container),
		newGenerateCookingCommand(container),
	)

	return generateCmd
}

// newGenerateFitnessCommand creates the 'generate fitness' subcommand
func newGenerateFitnessCommand(container *app.Container) *cobra.Command {
	var (
		flags       generationFlags
		interactive bool
	)
	form := domain.NewFitnessForm()

	cmd := &cobra.Command{
		Use:   "fitness",
		Short: "Design a personalized workout plan",
		Example: `  coach generate fitness --goal "lose 10lbs"
  coach generate fitness --goal "get strong" --equipment other --equipment-custom "Kettlebells only"
  coach generate fitness -i`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				form = helpers.PromptFitnessForm(cmd.ErrOrStderr(), cmd.InOrStdin(), form)
			}
			if err := form.Validate(); err != nil {
				return err
			}
			return runGeneration(cmd, container, flags, form.Resolve(), helpers.MsgDesigningPlan, helpers.TitlePlan)
		},
	}

	bindFitnessFlags(cmd, &form)
	flags.register(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the form interactively")

	return cmd
}

// newGenerateCookingCommand creates the 'generate cooking' subcommand
func newGenerateCookingCommand(container *app.Container) *cobra.Command {
	var (
		flags   generationFlags
		request string
	)

	cmd := &cobra.Command{
		Use:   "cooking [request]",
		Short: "Suggest a recipe",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := cookingRequest(request, args)
			return runGeneration(cmd, container, flags, req, helpers.MsgThinking, helpers.TitleRecipe)
		},
	}

	cmd.Flags().StringVar(&request, "request", "", "What you would like to cook")
	flags.register(cmd)

	return cmd
}

// bindFitnessFlags maps every form field onto a flag, preset to the form defaults
func bindFitnessFlags(cmd *cobra.Command, form *domain.FitnessForm) {
	otherHint := fmt.Sprintf(` (use %q with the matching -custom flag for free text)`, domain.OtherOption)

	f := cmd.Flags()
	f.StringVar(&form.Goal, "goal", form.Goal, "Main goal (e.g. Build muscle, lose 10lbs)")
	f.StringVar(&form.Frequency, "frequency", form.Frequency, "Days per week: "+strings.Join(domain.FrequencyOptions, ", "))
	f.StringVar(&form.Experience, "experience", form.Experience, "Experience level: "+strings.Join(domain.ExperienceOptions, ", ")+otherHint)
	f.StringVar(&form.ExperienceCustom, "experience-custom", "", "Experience level when --experience is other")
	f.StringVar(&form.Equipment, "equipment", form.Equipment, "Access to equipment: "+strings.Join(domain.EquipmentOptions, ", ")+otherHint)
	f.StringVar(&form.EquipmentCustom, "equipment-custom", "", "Equipment when --equipment is other")
	f.StringVar(&form.Split, "split", form.Split, "Preferred split: "+strings.Join(domain.SplitOptions, ", ")+otherHint)
	f.StringVar(&form.SplitCustom, "split-custom", "", "Split when --split is other")
	f.StringVar(&form.Injuries, "injuries", "", "Injuries or limitations (e.g. Bad left knee)")
	f.StringVar(&form.Notes, "notes", "", "Optional notes")
}

func cookingRequest(request string, args []string) domain.GenerationRequest {
	if request == "" {
		request = strings.Join(args, " ")
	}
	return domain.GenerationRequest{Type: domain.PersonaCooking, Goal: strings.TrimSpace(request)}
}

// runGeneration sends req, renders the outcome and records successes locally.
func runGeneration(cmd *cobra.Command, container *app.Container, flags generationFlags, req domain.GenerationRequest, label, title string) error {
	generator := container.Generator(flags.server, flags.model)

	spinner := helpers.NewSpinner(cmd.ErrOrStderr(), label)
	spinner.Start()
	result := generator.Generate(cmd.Context(), req)
	spinner.Stop()

	helpers.RenderResult(cmd.OutOrStdout(), title, result)
	if !result.OK() {
		return ErrSilent
	}

	if flags.noHistory || container.HistoryService == nil {
		return nil
	}
	if _, err := container.HistoryService.Record(cmd.Context(), req, result); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: history not saved: %v\n", err)
	}
	return nil
}
