package prompts

import (
	"errors"
	"net/url"
	"strings"

	"github.com/charmbracelet/huh"
)

func PromptInitServer(currDefault string) (string, error) {
	var serverURL string

	err := huh.NewInput().
		Title("Welcome to keaview! Which budget server should it follow?").
		Description("The websocket address of the budget server, e.g. ws://localhost:9012").
		Placeholder(currDefault).
		Value(&serverURL).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return nil
			}
			u, err := url.Parse(strings.TrimSpace(s))
			if err != nil || (u.Scheme != "ws" && u.Scheme != "wss") {
				return errors.New("server address must start with ws:// or wss://")
			}
			return nil
		}).
		Run()

	if err != nil {
		return "", err
	}

	serverURL = strings.TrimSpace(serverURL)
	if serverURL == "" {
		return currDefault, nil
	}
	return serverURL, nil
}
