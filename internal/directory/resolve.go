package directory

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResolveService resolves the service field of a person intake: an existing
// category id wins outright; otherwise the typed-in name is matched against
// existing categories or created on the spot. The insert goes through
// ON CONFLICT (name) DO NOTHING keyed on the unique name column, so two
// concurrent intakes racing on the same new name both end up with the one
// row.
func ResolveService(d *gorm.DB, existingID uint, newName string) (Category, error) {
	if existingID != 0 {
		var cat Category
		err := d.First(&cat, existingID).Error
		return cat, err
	}

	cat := Category{Name: strings.TrimSpace(newName)}
	res := d.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&cat)
	if res.Error != nil {
		return Category{}, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the race or the name already existed; fetch the winner.
		err := d.First(&cat, "name = ?", cat.Name).Error
		return cat, err
	}
	return cat, nil
}

// ResolveLocation is ResolveService for the location field.
func ResolveLocation(d *gorm.DB, existingID uint, newName string) (Area, error) {
	if existingID != 0 {
		var area Area
		err := d.First(&area, existingID).Error
		return area, err
	}

	area := Area{Name: strings.TrimSpace(newName)}
	res := d.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&area)
	if res.Error != nil {
		return Area{}, res.Error
	}
	if res.RowsAffected == 0 {
		err := d.First(&area, "name = ?", area.Name).Error
		return area, err
	}
	return area, nil
}
