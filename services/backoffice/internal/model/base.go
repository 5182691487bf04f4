package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// All lists every persistence model in migration order.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&PostModel{},
		&CasinoModel{},
		&GameModel{},
		&GlobalSlotModel{},
		&PokerSiteModel{},
		&CasinoCardModel{},
		&BestCasinoModel{},
	}
}

// AutoMigrate creates or updates every table. PostgreSQL deployments run
// the goose migrations instead unless DB_AUTO_MIGRATE is set.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}

func newID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}
