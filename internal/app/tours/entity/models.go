package entity

import (
	"strings"
	"time"
)

// TourPackage представляет туристический пакет (группу туров)
type TourPackage struct {
	Code      string    `json:"code" gorm:"type:varchar(2);primaryKey"` // Двухбуквенный код пакета (BC, CC и т.п.)
	Name      string    `json:"name" gorm:"type:varchar(50);not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName указывает имя таблицы для GORM
func (TourPackage) TableName() string {
	return "tour_packages"
}

// Tour представляет тур внутри пакета
type Tour struct {
	ID              int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title           string    `json:"title" gorm:"type:varchar(100);not null"`
	Description     string    `json:"description" gorm:"type:text"`
	Price           float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Duration        string    `json:"duration" gorm:"type:varchar(32)"` // Длительность в свободном формате ("2 days", "1/2 day")
	Region          Region    `json:"region" gorm:"type:varchar(30)"`
	TourPackageCode string    `json:"tour_package_code" gorm:"type:varchar(2);not null;index"` // Код пакета из tour_packages
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName указывает имя таблицы для GORM
func (Tour) TableName() string {
	return "tours"
}

// TourRating представляет оценку тура клиентом.
// Естественный составной ключ (tour_id, customer_id): не больше одной
// оценки на пару тур-клиент, суррогатный id не нужен.
type TourRating struct {
	TourID     int       `json:"tour_id" gorm:"primaryKey;autoIncrement:false"`
	CustomerID int       `json:"customer_id" gorm:"primaryKey;autoIncrement:false"`
	Score      int       `json:"score" gorm:"not null;check:score >= 1 AND score <= 5"`
	Comment    *string   `json:"comment" gorm:"type:varchar(255)"` // NULL если клиент не оставил комментарий
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName указывает имя таблицы для GORM
func (TourRating) TableName() string {
	return "tour_ratings"
}

// Region представляет регион проведения тура
type Region string

const (
	RegionCentralCoast       Region = "Central Coast"
	RegionSouthernCalifornia Region = "Southern California"
	RegionNorthernCalifornia Region = "Northern California"
	RegionVaries             Region = "Varies"
)

// Regions - полный список регионов в порядке объявления
var Regions = []Region{
	RegionCentralCoast,
	RegionSouthernCalifornia,
	RegionNorthernCalifornia,
	RegionVaries,
}

// FindRegionByLabel ищет регион по человекочитаемой метке без учета регистра.
// Возвращает nil если метка не совпала ни с одним регионом - это не ошибка.
func FindRegionByLabel(label string) *Region {
	for _, r := range Regions {
		if strings.EqualFold(string(r), label) {
			return &r
		}
	}
	return nil
}

// RatingEvent представляет событие оценки тура для Kafka
type RatingEvent struct {
	EventType  string    `json:"event_type"` // RATING_CREATED
	TourID     int       `json:"tour_id"`
	CustomerID int       `json:"customer_id"`
	Score      int       `json:"score"`
	Timestamp  time.Time `json:"timestamp"`
}
