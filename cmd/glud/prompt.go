package main

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// prompter asks the user for what the command line did not give.
type prompter interface {
	// Input returns the string to simulate; an empty answer is the empty string.
	Input() (string, error)
	// Confirm returns true if the user answers yes.
	Confirm(label string) (bool, error)
}

type terminalPrompter struct{}

func (terminalPrompter) Input() (string, error) {
	prompt := promptui.Prompt{
		Label: "Digite a cadeia a ser testada (Enter para ε)",
	}
	return prompt.Run()
}

func (terminalPrompter) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func styleVerdict(s string, accepted bool) string {
	if accepted {
		return promptui.Styler(promptui.FGGreen, promptui.FGBold)(s)
	}
	return promptui.Styler(promptui.FGRed, promptui.FGBold)(s)
}

func styleSection(s string) string {
	return promptui.Styler(promptui.FGMagenta)(s)
}

func styleWarning(s string) string {
	return promptui.Styler(promptui.FGYellow)(s)
}
