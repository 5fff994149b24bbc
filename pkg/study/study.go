// Package study holds the domain model of the listening study: sessions,
// trials and ratings, plus the counterbalanced assignment of presentation
// conditions.
package study

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Condition is one of the three presentation modes compared by the study.
type Condition string

const (
	// ConditionPlain plays the description through plain device
	// text-to-speech.
	ConditionPlain Condition = "plain"

	// ConditionProsody plays prosody-controlled speech compiled from the
	// annotated description.
	ConditionProsody Condition = "prosody"

	// ConditionProsodyTone adds a background tone bed under the
	// prosody-controlled speech.
	ConditionProsodyTone Condition = "prosody-tone"
)

var conditions = []Condition{ConditionPlain, ConditionProsody, ConditionProsodyTone}

func ParseCondition(value string) (Condition, error) {
	for _, c := range conditions {
		if string(c) == value {
			return c, nil
		}
	}

	return "", fmt.Errorf("unknown condition %q", value)
}

// ConditionOrder returns the presentation order for the n-th session,
// rotating through the latin square of the three conditions so each order
// appears equally often.
func ConditionOrder(n int) []Condition {
	if n < 0 {
		n = -n
	}

	shift := n % len(conditions)

	order := make([]Condition, len(conditions))

	for i := range conditions {
		order[i] = conditions[(i+shift)%len(conditions)]
	}

	return order
}

type Session struct {
	ID          string
	Participant string

	Conditions []Condition

	Created time.Time
}

type Trial struct {
	ID        string
	SessionID string

	Image     string
	Condition Condition

	Description string
	Markup      string

	Created time.Time
}

type Rating struct {
	ID      string
	TrialID string

	Naturalness   int
	Pleasantness  int
	Comprehension int

	Comment string

	Created time.Time
}

// scales run 1 (worst) to 7 (best)
const (
	ScaleMin = 1
	ScaleMax = 7
)

var ErrScale = errors.New("study: rating outside scale")

func (r *Rating) Validate() error {
	for _, score := range []int{r.Naturalness, r.Pleasantness, r.Comprehension} {
		if score < ScaleMin || score > ScaleMax {
			return fmt.Errorf("%w: %d not in [%d,%d]", ErrScale, score, ScaleMin, ScaleMax)
		}
	}

	return nil
}

var ErrNotFound = errors.New("study: not found")

type Store interface {
	CreateSession(ctx context.Context, session *Session) error
	Session(ctx context.Context, id string) (*Session, error)
	SessionCount(ctx context.Context) (int, error)

	CreateTrial(ctx context.Context, trial *Trial) error
	Trial(ctx context.Context, id string) (*Trial, error)
	Trials(ctx context.Context, sessionID string) ([]*Trial, error)

	CreateRating(ctx context.Context, rating *Rating) error
	Ratings(ctx context.Context, trialID string) ([]*Rating, error)
}
