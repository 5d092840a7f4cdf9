package service

import (
	"strconv"
	"time"

	"github.com/dkurenkov/exercise-tracker/backend/internal/common/constants"
	"github.com/dkurenkov/exercise-tracker/backend/internal/tracker/domain"
)

// ParseLogFilter interprets the optional from/to/limit query values.
// Unparseable or negative values are treated as absent so a bad filter
// degrades to a no-op instead of failing the request.
func ParseLogFilter(in LogInput) domain.LogFilter {
	var f domain.LogFilter

	if in.From != "" {
		if t, err := time.ParseInLocation(constants.ExerciseDateLayout, in.From, time.UTC); err == nil {
			f.From = &t
		}
	}

	if in.To != "" {
		if t, err := time.ParseInLocation(constants.ExerciseDateLayout, in.To, time.UTC); err == nil {
			f.To = &t
		}
	}

	if in.Limit != "" {
		if n, err := strconv.Atoi(in.Limit); err == nil && n >= 0 {
			f.Limit = &n
		}
	}

	return f
}

// FilterLog keeps exercises inside the inclusive [from, to] window,
// preserving insertion order, then truncates to the first limit
// entries.
func FilterLog(exercises []domain.Exercise, f domain.LogFilter) []domain.Exercise {
	out := make([]domain.Exercise, 0, len(exercises))

	for _, e := range exercises {
		if f.From != nil && e.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && e.Date.After(*f.To) {
			continue
		}
		out = append(out, e)
	}

	if f.Limit != nil && len(out) > *f.Limit {
		out = out[:*f.Limit]
	}

	return out
}
