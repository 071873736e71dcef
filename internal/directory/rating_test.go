package directory_test

import (
	"testing"
	"time"

	"github.com/honestng/honest-backend/internal/directory"
)

// TestAverageOf_Rounds verifies the mean is rounded to 2 decimal places.
func TestAverageOf_Rounds(t *testing.T) {
	// (4 + 5 + 2) / 3 = 3.666... -> 3.67
	if got := directory.AverageOf([]int{4, 5, 2}); got != 3.67 {
		t.Errorf("AverageOf([4 5 2]) = %v, want 3.67", got)
	}
	if got := directory.AverageOf([]int{5}); got != 5 {
		t.Errorf("AverageOf([5]) = %v, want 5", got)
	}
	if got := directory.AverageOf([]int{1, 2}); got != 1.5 {
		t.Errorf("AverageOf([1 2]) = %v, want 1.5", got)
	}
}

// TestAverageOf_Empty verifies an empty review set averages to 0.
func TestAverageOf_Empty(t *testing.T) {
	if got := directory.AverageOf(nil); got != 0 {
		t.Errorf("AverageOf(nil) = %v, want 0", got)
	}
}

// TestDisplayRating_Unrated verifies the placeholder shows while the average
// is still zero.
func TestDisplayRating_Unrated(t *testing.T) {
	p := directory.Person{AverageRating: 0}
	if got := p.DisplayRating(); got != "Not Yet Rated" {
		t.Errorf("DisplayRating() = %v, want \"Not Yet Rated\"", got)
	}
}

// TestDisplayRating_Rated verifies a real average is returned as a number,
// not the placeholder.
func TestDisplayRating_Rated(t *testing.T) {
	p := directory.Person{AverageRating: 4.5}
	if got := p.DisplayRating(); got != 4.5 {
		t.Errorf("DisplayRating() = %v, want 4.5", got)
	}
}

// TestVotePositive covers both directions of the vote balance.
func TestVotePositive(t *testing.T) {
	if !(directory.Person{UpvoteCount: 10, DownvoteCount: 3}).VotePositive() {
		t.Error("expected VotePositive() = true with more upvotes")
	}
	if (directory.Person{UpvoteCount: 4, DownvoteCount: 6}).VotePositive() {
		t.Error("expected VotePositive() = false with more downvotes")
	}
	if (directory.Person{UpvoteCount: 2, DownvoteCount: 2}).VotePositive() {
		t.Error("expected VotePositive() = false on a tie")
	}
}

// TestRecentlyAdded verifies the 10-day recency rule.
func TestRecentlyAdded(t *testing.T) {
	fresh := directory.Person{DateAdded: time.Now().Add(-24 * time.Hour)}
	if !fresh.RecentlyAdded() {
		t.Error("person added yesterday should be recently added")
	}

	old := directory.Person{DateAdded: time.Now().Add(-11 * 24 * time.Hour)}
	if old.RecentlyAdded() {
		t.Error("person added 11 days ago should not be recently added")
	}
}
