package entity

import (
	"time"

	"github.com/google/uuid"
)

// Score bounds for a single review submission.
const (
	MinScore = 0.0
	MaxScore = 5.0
)

// Rating is the aggregate review state of a Listing. AverageScore is always
// the weighted mean of every score ever folded in, and TotalRatingCount the
// number of submissions. ReviewTexts may lag behind the count because a
// submission can carry no text.
type Rating struct {
	AverageScore     float64  `json:"averageScore"`
	TotalRatingCount int      `json:"totalRatingCount"`
	ReviewTexts      []string `json:"reviewTexts"`
}

// ValidScore reports whether a submitted score is within the accepted range.
func ValidScore(score float64) bool {
	return score >= MinScore && score <= MaxScore
}

// Fold incorporates one review submission into the aggregate and returns the
// new aggregate. The receiver is not modified. Folding is deliberately not
// idempotent: re-applying the same submission shifts the aggregate again, so
// callers must not retry without deduplication.
func (r Rating) Fold(score float64, text string) Rating {
	newCount := r.TotalRatingCount + 1
	newAverage := (r.AverageScore*float64(r.TotalRatingCount) + score) / float64(newCount)

	texts := r.ReviewTexts
	if text != "" {
		// Append-only, insertion order preserved.
		texts = append(append([]string(nil), r.ReviewTexts...), text)
	}

	return Rating{
		AverageScore:     newAverage,
		TotalRatingCount: newCount,
		ReviewTexts:      texts,
	}
}

// Listing is a merchant's published descriptive page for a Business.
// Archived listings are excluded from every default read path; only an
// explicit admin hard delete removes the record entirely.
type Listing struct {
	ID           uuid.UUID `json:"id"`
	City         string    `json:"city"`
	ActivityType string    `json:"activityType"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	BodyTexts    []string  `json:"bodyTexts"` // Ordered page paragraphs.
	Images       []string  `json:"images"`    // Ordered image URLs.
	Rating       Rating    `json:"rating"`
	BusinessID   uuid.UUID `json:"businessRef"` // Exactly one Business; unique across listings.
	OwnerID      uuid.UUID `json:"ownerRef"`    // Owning Account; must hold the merchant role.
	IsArchived   bool      `json:"isArchived"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
