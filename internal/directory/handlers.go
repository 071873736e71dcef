package directory

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/honestng/honest-backend/internal/auth"
	"github.com/honestng/honest-backend/internal/db"
	"github.com/honestng/honest-backend/internal/utils"
)

// countView bumps the entity's view count through the session cool-down. A
// failed count never fails the page; it just gets logged.
func countView(r *http.Request, entity Viewable) {
	visitorID, ok := utils.GetVisitorIDFromContext(r.Context())
	if !ok {
		return
	}
	if _, err := ApplyView(db.DB, visitorID, entity, time.Now(), viewWindow); err != nil {
		slog.Error("failed to count view", "table", entity.TableName(), "id", entity.RowID(), "err", err)
	}
}

func IndexHandler(w http.ResponseWriter, r *http.Request) {
	var categories []Category
	var areas []Area

	if err := db.DB.Order("view_count desc").Limit(10).Find(&categories).Error; err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := db.DB.Order("view_count desc").Limit(10).Find(&areas).Error; err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"honest_message": "We looooove honesty!!",
		"categories":     categories,
		"areas":          areas,
	})
}

func CategoryHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "categorySlug")

	var category Category
	err := db.DB.First(&category, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Unknown category renders as an empty page, not an error
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	countView(r, category)

	var people []Person
	if err := db.DB.Preload("Location").Where("service_id = ?", category.ID).Find(&people).Error; err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// The distinct areas the people in this category operate from
	var areaIDs []uint
	db.DB.Model(&Person{}).Where("service_id = ?", category.ID).Distinct("location_id").Pluck("location_id", &areaIDs)
	var areas []Area
	if len(areaIDs) > 0 {
		if err := db.DB.Find(&areas, areaIDs).Error; err != nil {
			http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"people":   people,
		"areas":    areas,
	})
}

func AllCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	var categories []Category
	if err := db.DB.Order("name").Find(&categories).Error; err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func AddCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var input CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if errs := input.Validate(); errs.Any() {
		writeFieldErrors(w, errs)
		return
	}

	category := Category{Name: input.Name}
	if err := db.DB.Create(&category).Error; err != nil {
		if isUniqueViolation(err) {
			writeJSON(w, http.StatusConflict, map[string]any{
				"errors": FieldErrors{"name": "Category already exists"},
			})
			return
		}
		http.Error(w, "Failed to create category", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

func DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "categorySlug")

	res := db.DB.Where("slug = ?", slug).Delete(&Category{})
	if res.Error != nil {
		if isProtectedReference(res.Error) {
			http.Error(w, "Category is still referenced by people and cannot be deleted", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to delete category", http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func AreaHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "areaSlug")

	var area Area
	err := db.DB.First(&area, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Area not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	countView(r, area)

	var people []Person
	if err := db.DB.Preload("Service").Where("location_id = ?", area.ID).Find(&people).Error; err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// The distinct services on offer in this area
	var categoryIDs []uint
	db.DB.Model(&Person{}).Where("location_id = ?", area.ID).Distinct("service_id").Pluck("service_id", &categoryIDs)
	var categories []Category
	if len(categoryIDs) > 0 {
		if err := db.DB.Find(&categories, categoryIDs).Error; err != nil {
			http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"area":       area,
		"people":     people,
		"categories": categories,
	})
}

func AllAreasHandler(w http.ResponseWriter, r *http.Request) {
	var areas []Area
	if err := db.DB.Order("name").Find(&areas).Error; err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"areas": areas})
}

func AddAreaHandler(w http.ResponseWriter, r *http.Request) {
	var input AreaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if errs := input.Validate(); errs.Any() {
		writeFieldErrors(w, errs)
		return
	}

	area := Area{Name: input.Name}
	if err := db.DB.Create(&area).Error; err != nil {
		if isUniqueViolation(err) {
			writeJSON(w, http.StatusConflict, map[string]any{
				"errors": FieldErrors{"name": "Area already exists"},
			})
			return
		}
		http.Error(w, "Failed to create area", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, area)
}

func DeleteAreaHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "areaSlug")

	res := db.DB.Where("slug = ?", slug).Delete(&Area{})
	if res.Error != nil {
		if isProtectedReference(res.Error) {
			http.Error(w, "Area is still referenced by people and cannot be deleted", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to delete area", http.StatusInternalServerError)
		return
	}
	if res.RowsAffected == 0 {
		http.Error(w, "Area not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func CategoryInAreaHandler(w http.ResponseWriter, r *http.Request) {
	areaSlug := chi.URLParam(r, "areaSlug")
	categorySlug := chi.URLParam(r, "categorySlug")

	var area Area
	if err := db.DB.First(&area, "slug = ?", areaSlug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Area not found", http.StatusNotFound)
			return
		}
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var category Category
	if err := db.DB.First(&category, "slug = ?", categorySlug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Category not found", http.StatusNotFound)
			return
		}
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var people []Person
	if err := db.DB.Where("service_id = ? AND location_id = ?", category.ID, area.ID).Find(&people).Error; err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"area":     area,
		"people":   people,
	})
}

func PersonHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid person id", http.StatusBadRequest)
		return
	}

	var person Person
	err = db.DB.Preload("Service").Preload("Location").First(&person, uint(id)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Person not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	countView(r, person)

	var reviews []Review
	if err := db.DB.Where("person_id = ?", person.ID).Order("created_at desc").Find(&reviews).Error; err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"person":         person,
		"display_rating": person.DisplayRating(),
		"recently_added": person.RecentlyAdded(),
		"vote_positive":  person.VotePositive(),
		"reviews":        reviews,
	})
}

func ReviewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid person id", http.StatusBadRequest)
		return
	}

	var person Person
	err = db.DB.First(&person, uint(id)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Person not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var input ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if errs := input.Validate(); errs.Any() {
		writeFieldErrors(w, errs)
		return
	}

	// Reviews don't require login, but a logged-in reviewer gets attributed
	var reviewerID *string
	if cookie, err := r.Cookie("session_id"); err == nil {
		if session, err := (auth.SessionInfo{}).FindSessionByID(cookie.Value); err == nil && session.ExpiresAt.After(time.Now()) {
			userID := session.UserID
			reviewerID = &userID
		}
	}

	review := Review{
		PersonID:   person.ID,
		ReviewerID: reviewerID,
		Rating:     input.Rating,
		Summary:    input.Summary,
		Text:       input.Text,
	}
	if err := db.DB.Create(&review).Error; err != nil {
		http.Error(w, "Failed to create review", http.StatusInternalServerError)
		return
	}

	// Recompute before responding so the very next read sees the new average
	avg, err := RecomputeAverage(db.DB, person.ID)
	if err != nil {
		http.Error(w, "Failed to update average rating", http.StatusInternalServerError)
		return
	}
	person.AverageRating = avg

	writeJSON(w, http.StatusCreated, map[string]any{
		"review":         review,
		"average_rating": avg,
		"display_rating": person.DisplayRating(),
	})
}

func VoteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid person id", http.StatusBadRequest)
		return
	}

	var input struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var column string
	switch input.Direction {
	case "up":
		column = "upvote_count"
	case "down":
		column = "downvote_count"
	default:
		http.Error(w, `Direction must be "up" or "down"`, http.StatusBadRequest)
		return
	}

	var person Person
	err = db.DB.First(&person, uint(id)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "Person not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := Increment(db.DB, person.TableName(), person.ID, column, 1); err != nil {
		http.Error(w, "Failed to record vote", http.StatusInternalServerError)
		return
	}

	if err := db.DB.First(&person, person.ID).Error; err != nil {
		http.Error(w, "DB error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"upvote_count":   person.UpvoteCount,
		"downvote_count": person.DownvoteCount,
		"vote_positive":  person.VotePositive(),
	})
}

func AddPersonHandler(w http.ResponseWriter, r *http.Request) {
	var input PersonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if errs := input.Validate(); errs.Any() {
		writeFieldErrors(w, errs)
		return
	}

	var person Person
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		service, err := ResolveService(tx, input.Service, input.NewService)
		if err != nil {
			return err
		}
		location, err := ResolveLocation(tx, input.Location, input.NewLocation)
		if err != nil {
			return err
		}

		person = Person{
			ServiceID:   service.ID,
			LocationID:  location.ID,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			PhoneNumber: input.PhoneNumber,
			Email:       input.Email,
		}
		if err := tx.Create(&person).Error; err != nil {
			return err
		}
		person.Service = service
		person.Location = location
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeFieldErrors(w, FieldErrors{"service": "Chosen service or location does not exist"})
			return
		}
		http.Error(w, "Failed to create person", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, person)
}
