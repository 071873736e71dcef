package directory

import (
	"log"
	"time"

	"github.com/honestng/honest-backend/internal/db"
)

// viewWindow is the cool-down during which repeat views are not re-counted.
var viewWindow = 5 * time.Second

func Init(window time.Duration) {
	if window > 0 {
		viewWindow = window
	}

	if err := db.EnsureSchema(db.DB, "directory"); err != nil {
		log.Fatal("Failed to ensure schema directory: ", err)
	}

	if err := db.DB.AutoMigrate(&Category{}, &Area{}, &Person{}, &Review{}, &VisitorSession{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
