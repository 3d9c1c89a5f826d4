package prompts

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
	"github.com/hance08/pesa/internal/ui"
)

// PromptMessage asks for one notification message. Ctrl-C returns terminal.InterruptErr.
func PromptMessage() (string, error) {
	var msg string

	prompt := &survey.Input{
		Message: "Message:",
		Help:    "Paste an M-PESA notification, or type quit to finish.",
	}
	err := survey.AskOne(prompt, &msg, ui.IconOption())

	return msg, err
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}
