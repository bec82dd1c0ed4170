package credentials

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brogergvhs/dhu/internal/portal"

	"github.com/manifoldco/promptui"
)

func notEmpty(label string) promptui.ValidateFunc {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(label + " cannot be empty")
		}
		return nil
	}
}

// Prompt asks for the portal login on the terminal.
func Prompt() (portal.Credentials, error) {
	idPrompt := promptui.Prompt{
		Label:    "ID",
		Validate: notEmpty("id"),
	}
	id, err := idPrompt.Run()
	if err != nil {
		return portal.Credentials{}, fmt.Errorf("input cancelled")
	}

	pwPrompt := promptui.Prompt{
		Label:    "Password",
		Mask:     '*',
		Validate: notEmpty("password"),
	}
	password, err := pwPrompt.Run()
	if err != nil {
		return portal.Credentials{}, fmt.Errorf("input cancelled")
	}

	return portal.Credentials{ID: strings.TrimSpace(id), Password: password}, nil
}
