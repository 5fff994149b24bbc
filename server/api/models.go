package api

import (
	"fmt"
	"time"

	"github.com/annikahug/cadenza/pkg/markup"
	"github.com/annikahug/cadenza/pkg/study"
)

// Mark is the wire form of a markup.Mark. The kind is selected by Type;
// fields not belonging to the kind are ignored.
type Mark struct {
	Type string `json:"type"`

	Start int `json:"start,omitempty"`
	End   int `json:"end,omitempty"`

	Level string `json:"level,omitempty"`

	Pitch  string `json:"pitch,omitempty"`
	Rate   string `json:"rate,omitempty"`
	Volume string `json:"volume,omitempty"`

	At         int `json:"at,omitempty"`
	DurationMS int `json:"duration_ms,omitempty"`
}

func (m Mark) mark() (markup.Mark, error) {
	switch m.Type {
	case "emphasis":
		return markup.EmphasisMark{
			Start: m.Start,
			End:   m.End,

			Level: markup.EmphasisLevel(m.Level),
		}, nil

	case "prosody":
		return markup.ProsodyMark{
			Start: m.Start,
			End:   m.End,

			Pitch:  m.Pitch,
			Rate:   m.Rate,
			Volume: m.Volume,
		}, nil

	case "break":
		return markup.BreakMark{
			At:       m.At,
			Duration: m.DurationMS,
		}, nil
	}

	return nil, fmt.Errorf("unknown mark type %q", m.Type)
}

func convertMarks(models []Mark) ([]markup.Mark, error) {
	var marks []markup.Mark

	for _, m := range models {
		mark, err := m.mark()

		if err != nil {
			return nil, err
		}

		marks = append(marks, mark)
	}

	return marks, nil
}

type Session struct {
	ID          string `json:"id"`
	Participant string `json:"participant,omitempty"`

	Conditions []study.Condition `json:"conditions"`

	Trials []Trial `json:"trials,omitempty"`

	Created time.Time `json:"created"`
}

func newSession(session *study.Session) Session {
	return Session{
		ID:          session.ID,
		Participant: session.Participant,

		Conditions: session.Conditions,

		Created: session.Created,
	}
}

type Trial struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`

	Image     string          `json:"image,omitempty"`
	Condition study.Condition `json:"condition"`

	Description string `json:"description"`
	Markup      string `json:"markup,omitempty"`

	Created time.Time `json:"created"`
}

func newTrial(trial *study.Trial) Trial {
	return Trial{
		ID:        trial.ID,
		SessionID: trial.SessionID,

		Image:     trial.Image,
		Condition: trial.Condition,

		Description: trial.Description,
		Markup:      trial.Markup,

		Created: trial.Created,
	}
}

type Rating struct {
	ID      string `json:"id"`
	TrialID string `json:"trial_id"`

	Naturalness   int `json:"naturalness"`
	Pleasantness  int `json:"pleasantness"`
	Comprehension int `json:"comprehension"`

	Comment string `json:"comment,omitempty"`

	Created time.Time `json:"created"`
}

func newRating(rating *study.Rating) Rating {
	return Rating{
		ID:      rating.ID,
		TrialID: rating.TrialID,

		Naturalness:   rating.Naturalness,
		Pleasantness:  rating.Pleasantness,
		Comprehension: rating.Comprehension,

		Comment: rating.Comment,

		Created: rating.Created,
	}
}
