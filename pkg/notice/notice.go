package notice

import (
	"errors"

	"cropbook/pkg/apperror"
)

type Level string

const (
	Success Level = "success"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Notice is a message a view shows after an interaction.
type Notice struct {
	Level   Level
	Message string
}

func Successf(msg string) Notice { return Notice{Level: Success, Message: msg} }

func Infof(msg string) Notice { return Notice{Level: Info, Message: msg} }

func Warnf(msg string) Notice { return Notice{Level: Warning, Message: msg} }

// FromError turns a service error into the notices to display.
// Expected outcomes are warnings; storage failures are errors.
func FromError(err error) []Notice {
	var (
		ve *apperror.ValidationError
		de *apperror.DuplicateError
		pe *apperror.PrerequisiteError
		se *apperror.StorageError
	)
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ve):
		return []Notice{Warnf(ve.Message)}
	case errors.As(err, &de):
		return []Notice{Warnf(de.Error())}
	case errors.As(err, &pe):
		out := make([]Notice, 0, len(pe.Messages))
		for _, m := range pe.Messages {
			out = append(out, Warnf(m))
		}
		return out
	case errors.As(err, &se):
		return []Notice{{Level: Error, Message: se.Message()}}
	default:
		return []Notice{{Level: Error, Message: err.Error()}}
	}
}
