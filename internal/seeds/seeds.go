package seeds

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/honestng/honest-backend/internal/directory"
)

type personSeed struct {
	Service   string
	Location  string
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

var categories = []string{"Tailor", "Mechanic", "Web Developer", "Plumber", "Electrician"}

var areas = []string{"Lagos", "Kaduna", "Abuja", "Port Harcourt"}

var people = []personSeed{
	{"Tailor", "Lagos", "Amina", "Bello", "08012345678", "amina.bello@example.com"},
	{"Mechanic", "Kaduna", "Chinedu", "Okafor", "08087654321", ""},
	{"Web Developer", "Abuja", "Funke", "Adeyemi", "07011223344", "funke@example.com"},
	{"Plumber", "Lagos", "Ibrahim", "Musa", "09099887766", ""},
}

// Run inserts development fixtures. Safe to re-run: names go through
// ON CONFLICT DO NOTHING and people are only added when absent.
func Run(d *gorm.DB) error {
	for _, name := range categories {
		cat := directory.Category{Name: name}
		if err := d.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&cat).Error; err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
	}

	for _, name := range areas {
		area := directory.Area{Name: name}
		if err := d.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&area).Error; err != nil {
			return fmt.Errorf("seed area %q: %w", name, err)
		}
	}

	for _, p := range people {
		var service directory.Category
		if err := d.First(&service, "name = ?", p.Service).Error; err != nil {
			return fmt.Errorf("seed person %s: %w", p.FirstName, err)
		}
		var location directory.Area
		if err := d.First(&location, "name = ?", p.Location).Error; err != nil {
			return fmt.Errorf("seed person %s: %w", p.FirstName, err)
		}

		var count int64
		d.Model(&directory.Person{}).
			Where("first_name = ? AND last_name = ?", p.FirstName, p.LastName).
			Count(&count)
		if count > 0 {
			continue
		}

		person := directory.Person{
			ServiceID:   service.ID,
			LocationID:  location.ID,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			PhoneNumber: p.Phone,
			Email:       p.Email,
		}
		if err := d.Create(&person).Error; err != nil {
			return fmt.Errorf("seed person %s: %w", p.FirstName, err)
		}
	}

	return nil
}
