package directory

import (
	"math"

	"gorm.io/gorm"
)

// AverageOf returns the arithmetic mean of ratings rounded to 2 decimal
// places, or 0 for an empty set.
func AverageOf(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return math.Round(float64(sum)/float64(len(ratings))*100) / 100
}

// RecomputeAverage refreshes a person's stored average from their reviews.
// With no reviews it writes nothing and leaves the average at its unrated
// zero. Called synchronously right after a review is persisted, so the next
// read of the person already sees the new average.
func RecomputeAverage(d *gorm.DB, personID uint) (float64, error) {
	var ratings []int
	if err := d.Model(&Review{}).Where("person_id = ?", personID).Pluck("rating", &ratings).Error; err != nil {
		return 0, err
	}
	if len(ratings) == 0 {
		return 0, nil
	}

	avg := AverageOf(ratings)
	if err := d.Model(&Person{}).Where("id = ?", personID).UpdateColumn("average_rating", avg).Error; err != nil {
		return 0, err
	}
	return avg, nil
}
