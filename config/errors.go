package config

import "github.com/carlrannaberg/claudekit/internal/apperr"

var (
	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidStartDate = &apperr.Error{
		Message: "please provide a valid start date",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the end time must not be earlier than the start time",
	}
)
