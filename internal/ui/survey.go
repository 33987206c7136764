package ui

import "github.com/AlecAivazis/survey/v2"

func iconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}

// Confirm asks a yes/no question defaulting to no. Used before commands the
// server cannot undo.
func Confirm(message string) (bool, error) {
	var confirmation bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmation, iconOption()); err != nil {
		return false, err
	}
	return confirmation, nil
}
