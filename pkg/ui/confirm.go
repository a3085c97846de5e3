// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrUserCancelled is returned when the user declines or cancels
var ErrUserCancelled = errors.New("cancelled by user")

// Confirm shows a yes/no confirmation dialog using huh
func Confirm(prompt, description string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Description(description).
				Affirmative("Install").
				Negative("Cancel").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrUserCancelled
		}
		return false, err
	}

	return confirmed, nil
}
