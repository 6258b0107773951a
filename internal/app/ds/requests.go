package ds

import "time"

// ShipInfo — клиентское представление корабля, prodDate передаётся в миллисекундах
type ShipInfo struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Planet   string   `json:"planet"`
	ShipType ShipType `json:"shipType"`
	ProdDate int64    `json:"prodDate"`
	IsUsed   bool     `json:"isUsed"`
	Speed    float64  `json:"speed"`
	CrewSize int      `json:"crewSize"`
	Rating   float64  `json:"rating"`
	ImageURL string   `json:"imageUrl,omitempty"`
}

func ToShipInfo(ship Ship) ShipInfo {
	return ShipInfo{
		ID:       ship.ID,
		Name:     ship.Name,
		Planet:   ship.Planet,
		ShipType: ship.ShipType,
		ProdDate: ship.ProdDate.UnixMilli(),
		IsUsed:   ship.IsUsed,
		Speed:    ship.Speed,
		CrewSize: ship.CrewSize,
		Rating:   ship.Rating,
		ImageURL: ship.ImageURL,
	}
}

// CreateShipRequest — запрос на создание корабля.
// Поля-указатели, чтобы отличать отсутствующее поле от нулевого значения.
type CreateShipRequest struct {
	Name     *string   `json:"name" validate:"required,min=1,max=50"`
	Planet   *string   `json:"planet" validate:"required,min=1,max=50"`
	ShipType *ShipType `json:"shipType" validate:"required,oneof=TRANSPORT MILITARY MERCHANT"`
	ProdDate *int64    `json:"prodDate" validate:"required,gte=0"`
	IsUsed   *bool     `json:"isUsed"`
	Speed    *float64  `json:"speed" validate:"required,gte=0.01,lte=0.99"`
	CrewSize *int      `json:"crewSize" validate:"required,gte=1,lte=9999"`
}

// UpdateShipRequest — частичное обновление: nil означает "не менять"
type UpdateShipRequest struct {
	Name     *string   `json:"name"`
	Planet   *string   `json:"planet"`
	ShipType *ShipType `json:"shipType"`
	ProdDate *int64    `json:"prodDate"`
	IsUsed   *bool     `json:"isUsed"`
	Speed    *float64  `json:"speed"`
	CrewSize *int      `json:"crewSize"`
}

// ProdDateTime — дата производства из миллисекунд в локальной таймзоне
func ProdDateTime(millis int64) time.Time {
	return time.UnixMilli(millis)
}
