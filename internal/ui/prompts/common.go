package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptInput reads one line. An empty answer falls back to defaultValue,
// which is shown as the placeholder.
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var answer string

	input := huh.NewInput().
		Title(message).
		Placeholder(defaultValue).
		Value(&answer)
	if validator != nil {
		input.Validate(validator)
	}

	if err := input.Run(); err != nil {
		return "", err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

func PromptAmount(message string, validator func(string) error) (string, error) {
	return PromptInput(message, "", validator)
}

// PromptDate accepts an empty answer as defaultDate.
func PromptDate(message string, defaultDate string, validator func(string) error) (string, error) {
	return PromptInput(message, defaultDate, func(s string) error {
		if strings.TrimSpace(s) == "" || validator == nil {
			return nil
		}
		return validator(s)
	})
}

// PromptIndex shows labels and returns the position of the chosen one.
func PromptIndex(message string, labels []string) (int, error) {
	opts := make([]huh.Option[int], len(labels))
	for i, label := range labels {
		opts[i] = huh.NewOption(label, i)
	}

	var selected int
	err := huh.NewSelect[int]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Height(15).
		Run()

	return selected, err
}
