package ds

import "fmt"

// ShipOrder — поле сортировки списка кораблей
type ShipOrder string

const (
	OrderID     ShipOrder = "ID"
	OrderSpeed  ShipOrder = "SPEED"
	OrderDate   ShipOrder = "DATE"
	OrderRating ShipOrder = "RATING"
)

// ParseShipOrder — разбор параметра order, пустая строка даёт сортировку по id
func ParseShipOrder(raw string) (ShipOrder, error) {
	if raw == "" {
		return OrderID, nil
	}
	order := ShipOrder(raw)
	switch order {
	case OrderID, OrderSpeed, OrderDate, OrderRating:
		return order, nil
	}
	return "", fmt.Errorf("unknown order %q", raw)
}

// Column — имя колонки в БД для сортировки
func (o ShipOrder) Column() string {
	switch o {
	case OrderSpeed:
		return "speed"
	case OrderDate:
		return "prod_date"
	case OrderRating:
		return "rating"
	default:
		return "id"
	}
}
