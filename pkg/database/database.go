package database

import (
	"fmt"
	"log"

	"wanderlist_backend/internal/config"
	"wanderlist_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Country{},
		&model.Landmark{},
		&model.Visit{},
		&model.BadgeDefinition{},
		&model.UserBadge{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 徽章定义是固定规则表，为空时写入默认定义
	var count int64
	db.Model(&model.BadgeDefinition{}).Count(&count)
	if count == 0 {
		for _, def := range defaultBadgeDefinitions() {
			db.Create(&def)
		}
		log.Println("Seeded default badge definitions")
	}

	return db, nil
}

// defaultBadgeDefinitions 阈值表来自产品文案，调整需同步前端展示
func defaultBadgeDefinitions() []model.BadgeDefinition {
	return []model.BadgeDefinition{
		{Code: "visits_10", Category: model.BadgeCategoryVisits, Target: 10, Name: "Wayfarer", Icon: "badge-visits-10"},
		{Code: "visits_25", Category: model.BadgeCategoryVisits, Target: 25, Name: "Pathfinder", Icon: "badge-visits-25"},
		{Code: "visits_50", Category: model.BadgeCategoryVisits, Target: 50, Name: "Globetrotter", Icon: "badge-visits-50"},
		{Code: "visits_100", Category: model.BadgeCategoryVisits, Target: 100, Name: "Voyager", Icon: "badge-visits-100"},
		{Code: "visits_250", Category: model.BadgeCategoryVisits, Target: 250, Name: "World Wanderer", Icon: "badge-visits-250"},
		{Code: "visits_500", Category: model.BadgeCategoryVisits, Target: 500, Name: "Legend of the Road", Icon: "badge-visits-500"},

		{Code: "countries_1", Category: model.BadgeCategoryCountries, Target: 1, Name: "First Conquest", Icon: "badge-countries-1"},
		{Code: "countries_5", Category: model.BadgeCategoryCountries, Target: 5, Name: "Country Collector", Icon: "badge-countries-5"},
		{Code: "countries_10", Category: model.BadgeCategoryCountries, Target: 10, Name: "Border Crosser", Icon: "badge-countries-10"},
		{Code: "countries_25", Category: model.BadgeCategoryCountries, Target: 25, Name: "Flag Hunter", Icon: "badge-countries-25"},

		{Code: "points_100", Category: model.BadgeCategoryPoints, Target: 100, Name: "Point Scout", Icon: "badge-points-100"},
		{Code: "points_500", Category: model.BadgeCategoryPoints, Target: 500, Name: "Point Hunter", Icon: "badge-points-500"},
		{Code: "points_1000", Category: model.BadgeCategoryPoints, Target: 1000, Name: "Point Master", Icon: "badge-points-1000"},
		{Code: "points_5000", Category: model.BadgeCategoryPoints, Target: 5000, Name: "Point Legend", Icon: "badge-points-5000"},

		{Code: "friends_5", Category: model.BadgeCategoryFriends, Target: 5, Name: "Travel Buddy", Icon: "badge-friends-5"},
		{Code: "friends_10", Category: model.BadgeCategoryFriends, Target: 10, Name: "Travel Circle", Icon: "badge-friends-10"},
		{Code: "friends_25", Category: model.BadgeCategoryFriends, Target: 25, Name: "Community Guide", Icon: "badge-friends-25"},

		{Code: "streak_7", Category: model.BadgeCategoryStreak, Target: 7, Name: "One Week Streak", Icon: "badge-streak-7"},
		{Code: "streak_30", Category: model.BadgeCategoryStreak, Target: 30, Name: "One Month Streak", Icon: "badge-streak-30"},
		{Code: "streak_100", Category: model.BadgeCategoryStreak, Target: 100, Name: "Hundred Day Streak", Icon: "badge-streak-100"},
	}
}
