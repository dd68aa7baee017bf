package models

// CategoryScore is the per-category slice of an entity's ratings.
type CategoryScore struct {
	CategoryID   uint    `json:"categoryId"`
	Name         string  `json:"name"`
	AverageScore float64 `json:"averageScore"`
	Count        int     `json:"count"`
}

// TimelinePoint aggregates the ratings submitted on one UTC calendar day.
type TimelinePoint struct {
	Date         string  `json:"date"`
	Count        int     `json:"count"`
	AverageScore float64 `json:"averageScore"`
}

// RatingStatistics backs the statistics panel of a nominee or institution.
type RatingStatistics struct {
	TotalRatings int             `json:"totalRatings"`
	AverageScore float64         `json:"averageScore"`
	Categories   []CategoryScore `json:"categoryBreakdown"`
	Timeline     []TimelinePoint `json:"timeline"`
}

// LeaderboardEntry is one ranked row of a leaderboard.
type LeaderboardEntry struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Image         *string `json:"image"`
	Status        bool    `json:"status"`
	Position      string  `json:"position,omitempty"`
	Institution   string  `json:"institution,omitempty"`
	District      string  `json:"district,omitempty"`
	TotalRatings  int     `json:"totalRatings"`
	AverageRating float64 `json:"averageRating"`
	RawAverage    float64 `json:"-"`
}

func (e LeaderboardEntry) Average() float64 {
	return e.RawAverage
}

type UserRatingCount struct {
	UserID       uint   `json:"userId"`
	UserName     string `json:"userName"`
	TotalRatings int64  `json:"totalRatings"`
}

// Statistics are the site-wide totals.
type Statistics struct {
	TotalInstitutions       int64             `json:"totalInstitutions"`
	TotalNominees           int64             `json:"totalNominees"`
	TotalInstitutionRatings int64             `json:"totalInstitutionRatings"`
	TotalNomineeRatings     int64             `json:"totalNomineeRatings"`
	TotalUsers              int64             `json:"totalUsers"`
	TotalRatings            int64             `json:"totalRatings"`
	RatingsPerUser          []UserRatingCount `json:"ratingsPerUser"`
}
