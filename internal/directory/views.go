package directory

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VisitorState is the view-counter state carried by a browser session. The
// zero value means the session has never had a view counted.
type VisitorState struct {
	Visits    int
	LastVisit *time.Time
}

// VisitOutcome is what a single page view does to the state: whether the
// entity's view count gets bumped, and whether the session row needs
// rewriting.
type VisitOutcome struct {
	State     VisitorState
	CountView bool
	Rewrite   bool
}

// EvaluateVisit applies the cool-down rule to one page view. First view in a
// session always counts. After that a view only counts when the last visit
// was more than window ago; anything inside the window is treated as a
// re-render or double submit and ignored entirely, timestamp included.
func EvaluateVisit(state VisitorState, now time.Time, window time.Duration) VisitOutcome {
	out := VisitOutcome{State: state}

	switch {
	case state.Visits == 0:
		out.State.Visits = 1
		out.CountView = true
		out.Rewrite = true
	case state.LastVisit == nil:
		// Session exists but never recorded a timestamp; write one now
		// without counting.
		out.Rewrite = true
	case now.Sub(*state.LastVisit) > window:
		out.State.Visits++
		out.CountView = true
		out.Rewrite = true
	}

	if out.Rewrite {
		t := now
		out.State.LastVisit = &t
	}
	return out
}

// ApplyView counts one page view of entity for the given visitor: it loads
// the visitor's session state, runs the cool-down rule, bumps the entity's
// view_count atomically when the view counts, and upserts the session row
// when the state changed.
func ApplyView(d *gorm.DB, visitorID string, entity Viewable, now time.Time, window time.Duration) (VisitorState, error) {
	var row VisitorSession
	err := d.First(&row, "visitor_id = ?", visitorID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return VisitorState{}, err
	}

	out := EvaluateVisit(VisitorState{Visits: row.Visits, LastVisit: row.LastVisit}, now, window)

	if out.CountView {
		if err := Increment(d, entity.TableName(), entity.RowID(), "view_count", 1); err != nil {
			return out.State, err
		}
	}

	if out.Rewrite {
		updated := VisitorSession{
			VisitorID: visitorID,
			Visits:    out.State.Visits,
			LastVisit: out.State.LastVisit,
		}
		if err := d.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "visitor_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"visits", "last_visit"}),
		}).Create(&updated).Error; err != nil {
			return out.State, err
		}
	}

	return out.State, nil
}
