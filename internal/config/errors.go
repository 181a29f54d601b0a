package config

import "github.com/ayoisaiah/pacer/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errEmptyPath = &apperr.Error{
		Message: "%s path cannot be empty",
	}

	errInvalidDistance = &apperr.Error{
		Message: "long run distance must be greater than zero, got %v",
	}

	errInvalidAerobicHR = &apperr.Error{
		Message: "aerobic heart rate must be between %d and %d bpm, got %d",
	}

	errInvalidChartSize = &apperr.Error{
		Message: "chart size must be at least %dx%d, got %dx%d",
	}

	errInvalidSince = &apperr.Error{
		Message: "invalid since date: %s",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period: %s",
	}

	errSinceAndPeriod = &apperr.Error{
		Message: "--since and --period cannot be used together",
	}
)
