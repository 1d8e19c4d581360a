package matching

import (
	"time"

	"lostfound-backend/internal/domain/match"
)

// DefaultThreshold is the cosine cut-off used by the scheduled job.
const DefaultThreshold = 0.75

type PipelineResult struct {
	Candidates int           `json:"candidates"`
	Inserted   int           `json:"inserted"`
	Duration   time.Duration `json:"-"`
	DurationMS int64         `json:"duration_ms"`
}

type RunInput struct {
	// nil means the configured threshold
	Threshold *float64 `json:"threshold" validate:"omitempty,gte=-1,lte=1"`
}

// UserMatchesDTO is the per-user matches page.
type UserMatchesDTO struct {
	LostMatches  []match.View `json:"lost_matches"`
	FoundMatches []match.View `json:"found_matches"`
	BadgeCount   int          `json:"badge_count"`
}
