package models

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("sport", func(fl validator.FieldLevel) bool {
			return Sport(fl.Field().String()).Valid()
		})
		validate.RegisterValidation("matchstatus", func(fl validator.FieldLevel) bool {
			return MatchStatus(fl.Field().String()).Valid()
		})
		validate.RegisterStructValidation(matchStructLevel, MatchModel{})
	})
	return validate
}

// matchStructLevel checks the rules that span fields of a match.
func matchStructLevel(sl validator.StructLevel) {
	m := sl.Current().Interface().(MatchModel)
	if m.HomeTeamId == m.AwayTeamId {
		sl.ReportError(m.AwayTeamId, "AwayTeamId", "awayTeamId", "distinctteams", "")
	}
	if m.Status == StatusCompleted {
		if m.HomeScore == nil {
			sl.ReportError(m.HomeScore, "HomeScore", "homeScore", "requiredwhencompleted", "")
		}
		if m.AwayScore == nil {
			sl.ReportError(m.AwayScore, "AwayScore", "awayScore", "requiredwhencompleted", "")
		}
	}
}

// Validate checks a model against its struct tags. Match failures wrap
// ErrInvalidMatch so callers can map them with errors.Is.
func Validate(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	if _, ok := v.(MatchModel); ok {
		return fmt.Errorf("%w: %s", ErrInvalidMatch, strings.Join(msgs, "; "))
	}
	if _, ok := v.(*MatchModel); ok {
		return fmt.Errorf("%w: %s", ErrInvalidMatch, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
