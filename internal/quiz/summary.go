package quiz

import (
	"time"

	"github.com/abhisek/rhr/internal/games"
)

// Summary holds the data displayed on the summary screen.
type Summary struct {
	SessionID     string        `json:"sessionId"`
	Duration      time.Duration `json:"durationNs"`
	Problems      int           `json:"problems"`
	TotalAnswered int           `json:"totalAnswered"`
	TotalCorrect  int           `json:"totalCorrect"`
	TotalSkipped  int           `json:"totalSkipped"`
	Accuracy      float64       `json:"accuracy"`
	TypeResults   []TypeResult  `json:"typeResults"`
}

// Summary builds the end-of-session report. Problem types appear in
// registry order; types with no answers or skips are left out.
func (s *Session) Summary() *Summary {
	var results []TypeResult
	for _, g := range games.All() {
		tr, ok := s.PerType[g.ID()]
		if !ok || (tr.Attempted == 0 && tr.Skipped == 0) {
			continue
		}
		results = append(results, *tr)
	}

	problems := 0
	if s.Current != nil {
		problems = s.Current.Number
	}

	return &Summary{
		SessionID:     s.ID,
		Duration:      s.now().Sub(s.StartTime),
		Problems:      problems,
		TotalAnswered: s.TotalAnswered,
		TotalCorrect:  s.TotalCorrect,
		TotalSkipped:  s.TotalSkipped,
		Accuracy:      s.Accuracy(),
		TypeResults:   results,
	}
}
