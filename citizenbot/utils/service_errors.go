package utils

import (
	"errors"
	"log/slog"

	"github.com/disgoorg/disgo/handler"

	"github.com/worldcitizen/citizen-bot/citizenbot/database/repositories"
	"github.com/worldcitizen/citizen-bot/citizenbot/services"
)

// ClassifyServiceError maps a service error to what the user is told.
func ClassifyServiceError(err error) (ErrorType, string) {
	switch {
	case errors.Is(err, services.ErrNotRegistered):
		return UserError, "You are not registered yet. Use `/register` first."
	case errors.Is(err, services.ErrAlreadyRegistered):
		return BusinessLogicError, "You are already registered."
	case errors.Is(err, services.ErrTokenTaken):
		return BusinessLogicError, "That citizenship token is already held by another citizen."
	case errors.Is(err, services.ErrCooldown):
		return BusinessLogicError, "You already did that today. Come back tomorrow!"
	case repositories.IsNotFound(err):
		return NotFoundError, "Nothing found for that citizen."
	}
	return SystemError, "Something went wrong. Please try again later."
}

// CreateServiceError responds with the classified error and logs anything unexpected.
func (h *ResponseHandler) CreateServiceError(event *handler.CommandEvent, err error) error {
	errorType, message := ClassifyServiceError(err)
	if errorType == SystemError {
		slog.Error("Service call failed",
			slog.String("type", "cmd"),
			slog.String("user_id", event.User().ID.String()),
			slog.Any("error", err))
	}
	return h.CreateClassifiedError(event, errorType, message)
}

// UpdateServiceError is CreateServiceError for deferred responses.
func (h *ResponseHandler) UpdateServiceError(event *handler.CommandEvent, err error) error {
	errorType, message := ClassifyServiceError(err)
	if errorType == SystemError {
		slog.Error("Service call failed",
			slog.String("type", "cmd"),
			slog.String("user_id", event.User().ID.String()),
			slog.Any("error", err))
	}
	return h.UpdateError(event, errorType, message)
}
