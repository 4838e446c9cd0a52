package fixture

import (
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidMatch marks a match that breaks a record invariant.
var ErrInvalidMatch = errors.New("invalid match")

// LeagueSet answers league membership for validation.
type LeagueSet interface {
	Has(name string) bool
}

// Validator checks Match invariants before a record is emitted.
type Validator struct {
	validate *validator.Validate
}

func NewValidator(leagues LeagueSet) *Validator {
	if leagues == nil {
		panic("fixture: league set is required")
	}

	v := validator.New()
	_ = v.RegisterValidation("match_status", func(fl validator.FieldLevel) bool {
		return IsKnownStatus(fl.Field().String())
	})
	_ = v.RegisterValidation("tracked_league", func(fl validator.FieldLevel) bool {
		return leagues.Has(fl.Field().String())
	})
	v.RegisterStructValidation(aggregateRule, Match{})
	return &Validator{validate: v}
}

// Validate returns an error marked ErrInvalidMatch when m cannot be emitted.
func (v *Validator) Validate(m Match) error {
	if err := v.validate.Struct(m); err != nil {
		return errors.Mark(errors.Wrapf(err, "match %s vs %s", m.HomeTeam, m.AwayTeam), ErrInvalidMatch)
	}
	if err := v.validate.Var(m.League, "tracked_league"); err != nil {
		return errors.Mark(errors.Newf("league %q is not tracked", m.League), ErrInvalidMatch)
	}
	return nil
}

// aggregateRule: aggregates exist only on multi-leg matches, and then both or neither.
func aggregateRule(sl validator.StructLevel) {
	m := sl.Current().Interface().(Match)
	hasHome := m.HomeAgg != nil
	hasAway := m.AwayAgg != nil
	if !m.IsMultiLeg && (hasHome || hasAway) {
		sl.ReportError(m.HomeAgg, "HomeAgg", "HomeAgg", "single_leg_aggregate", "")
		return
	}
	if hasHome != hasAway {
		sl.ReportError(m.HomeAgg, "HomeAgg", "HomeAgg", "aggregate_pair", "")
	}
}
