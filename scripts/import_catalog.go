// 手动导入目录数据脚本
//
// 目录（国家与地标）由外部数据源维护，此脚本把导出的 yaml 文件合并进数据库：
// 国家按 code、地标按 (国家, 名称) 对齐已有行，主键不重排，
// 所以重导入（包括文件顺序变化）不会让历史打卡指向别的地标。
// 导入完成后需调用 /api/admin/catalog/reload 或等待定时刷新重建内存索引。
//
// 用法: go run scripts/import_catalog.go data/catalog.yaml

package main

import (
	"log"
	"os"

	"wanderlist_backend/internal/config"
	"wanderlist_backend/internal/model"
	"wanderlist_backend/internal/repository"
	"wanderlist_backend/pkg/database"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Countries []struct {
		Code      string `yaml:"code"`
		Name      string `yaml:"name"`
		Continent string `yaml:"continent"`
		Landmarks []struct {
			Name      string   `yaml:"name"`
			Category  string   `yaml:"category"`
			Latitude  *float64 `yaml:"latitude"`
			Longitude *float64 `yaml:"longitude"`
		} `yaml:"landmarks"`
	} `yaml:"countries"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: go run scripts/import_catalog.go <catalog.yaml>")
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read catalog file: %v", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		log.Fatalf("Failed to parse catalog file: %v", err)
	}

	var countries []model.Country
	var landmarks []repository.LandmarkImport

	for _, c := range file.Countries {
		continent, ok := model.ParseContinent(c.Continent)
		if !ok {
			log.Fatalf("Unknown continent %q for country %s", c.Continent, c.Code)
		}

		countries = append(countries, model.Country{
			Code:      c.Code,
			Name:      c.Name,
			Continent: continent,
		})

		for _, lm := range c.Landmarks {
			category := model.LandmarkCategory(lm.Category)
			if category != model.CategoryOfficial && category != model.CategoryPremium {
				log.Fatalf("Unknown category %q for landmark %s", lm.Category, lm.Name)
			}

			landmarks = append(landmarks, repository.LandmarkImport{
				CountryCode: c.Code,
				Landmark: model.Landmark{
					Name:       lm.Name,
					Category:   category,
					PointValue: category.PointValue(),
					Latitude:   lm.Latitude,
					Longitude:  lm.Longitude,
				},
			})
		}
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	repo := repository.NewCatalogRepository(db)
	if err := repo.Sync(countries, landmarks); err != nil {
		log.Fatalf("Failed to import catalog: %v", err)
	}

	log.Printf("Imported %d countries, %d landmarks", len(countries), len(landmarks))
}
