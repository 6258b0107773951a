package ds

import "time"

// ShipType — закрытый набор типов кораблей
type ShipType string

const (
	ShipTypeTransport ShipType = "TRANSPORT"
	ShipTypeMilitary  ShipType = "MILITARY"
	ShipTypeMerchant  ShipType = "MERCHANT"
)

func (t ShipType) IsValid() bool {
	switch t {
	case ShipTypeTransport, ShipTypeMilitary, ShipTypeMerchant:
		return true
	}
	return false
}

// @Schema(description="Ship model representing a starship in the catalog")
type Ship struct {
	ID       int64     `gorm:"primaryKey;column:id"`
	Name     string    `gorm:"column:name;size:50"`
	Planet   string    `gorm:"column:planet;size:50"`
	ShipType ShipType  `gorm:"column:ship_type"`
	ProdDate time.Time `gorm:"column:prod_date"`
	IsUsed   bool      `gorm:"column:is_used;default:false"`
	Speed    float64   `gorm:"column:speed"`
	CrewSize int       `gorm:"column:crew_size"`
	Rating   float64   `gorm:"column:rating"`
	ImageURL string    `gorm:"column:image_url"`
}

func (Ship) TableName() string {
	return "ships"
}
