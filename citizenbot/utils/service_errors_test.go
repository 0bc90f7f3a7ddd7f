package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/worldcitizen/citizen-bot/citizenbot/database/repositories"
	"github.com/worldcitizen/citizen-bot/citizenbot/services"
)

func TestClassifyServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{name: "Not registered", err: services.ErrNotRegistered, want: UserError},
		{name: "Wrapped cooldown", err: fmt.Errorf("check in: %w", services.ErrCooldown), want: BusinessLogicError},
		{name: "Token taken", err: services.ErrTokenTaken, want: BusinessLogicError},
		{name: "Already registered", err: services.ErrAlreadyRegistered, want: BusinessLogicError},
		{name: "Missing row", err: &repositories.NotFoundError{Entity: "citizen_stats", ID: "1"}, want: NotFoundError},
		{name: "Unexpected", err: errors.New("connection reset"), want: SystemError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := ClassifyServiceError(tt.err); got != tt.want {
				t.Errorf("ClassifyServiceError() = %v, want %v", got, tt.want)
			}
		})
	}
}
