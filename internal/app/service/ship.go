package service

import (
	"space_catalog/internal/app/ds"
)

// Значения по умолчанию для списка кораблей
const (
	DefaultPageNumber = 0
	DefaultPageSize   = 3
)

// ShipStore — контракт внешнего хранилища кораблей
type ShipStore interface {
	SearchShips(filter ds.ShipFilter, order ds.ShipOrder, offset, limit int) ([]ds.Ship, error)
	CountShips(filter ds.ShipFilter) (int64, error)
	GetShip(id int64) (ds.Ship, error)
	CreateShip(ship *ds.Ship) error
	SaveShip(ship *ds.Ship) error
	DeleteShip(ship *ds.Ship) error
}

type ShipService struct {
	store ShipStore
}

func NewShipService(store ShipStore) *ShipService {
	return &ShipService{store: store}
}

// List — страница кораблей по фильтру, нумерация страниц с нуля
func (s *ShipService) List(filter ds.ShipFilter, order ds.ShipOrder, pageNumber, pageSize int) ([]ds.Ship, error) {
	return s.store.SearchShips(filter, order, pageNumber*pageSize, pageSize)
}

// Count — общее число кораблей по фильтру, без пагинации
func (s *ShipService) Count(filter ds.ShipFilter) (int64, error) {
	return s.store.CountShips(filter)
}

// Create — создание корабля; валидация запроса выполняется на границе HTTP.
// Рейтинг вычисляется здесь и никогда не принимается от клиента.
func (s *ShipService) Create(req ds.CreateShipRequest) (ds.Ship, error) {
	isUsed := false
	if req.IsUsed != nil {
		isUsed = *req.IsUsed
	}
	prodDate := ds.ProdDateTime(*req.ProdDate)

	ship := ds.Ship{
		Name:     *req.Name,
		Planet:   *req.Planet,
		ShipType: *req.ShipType,
		ProdDate: prodDate,
		IsUsed:   isUsed,
		Speed:    *req.Speed,
		CrewSize: *req.CrewSize,
		Rating:   ComputeRating(prodDate, isUsed, *req.Speed),
	}
	if err := s.store.CreateShip(&ship); err != nil {
		return ds.Ship{}, err
	}
	return ship, nil
}

func (s *ShipService) Get(id int64) (ds.Ship, error) {
	return s.store.GetShip(id)
}

// Update — частичное обновление: применяется каждое присутствующее поле,
// прошедшее свою проверку границ, остальные молча пропускаются. Если хотя бы
// одно поле изменилось — рейтинг пересчитывается и корабль сохраняется,
// иначе запись возвращается без записи в хранилище.
func (s *ShipService) Update(id int64, req ds.UpdateShipRequest) (ds.Ship, error) {
	ship, err := s.store.GetShip(id)
	if err != nil {
		return ds.Ship{}, err
	}

	changed := false
	if req.Name != nil && nameValid(*req.Name) {
		ship.Name = *req.Name
		changed = true
	}
	if req.Planet != nil && nameValid(*req.Planet) {
		ship.Planet = *req.Planet
		changed = true
	}
	if req.ShipType != nil && req.ShipType.IsValid() {
		ship.ShipType = *req.ShipType
		changed = true
	}
	if req.ProdDate != nil && *req.ProdDate >= 0 {
		prodDate := ds.ProdDateTime(*req.ProdDate)
		if prodYearInRange(prodDate) {
			ship.ProdDate = prodDate
			changed = true
		}
	}
	if req.IsUsed != nil {
		ship.IsUsed = *req.IsUsed
		changed = true
	}
	if req.Speed != nil && speedValid(*req.Speed) {
		ship.Speed = *req.Speed
		changed = true
	}
	if req.CrewSize != nil && crewSizeValid(*req.CrewSize) {
		ship.CrewSize = *req.CrewSize
		changed = true
	}

	if changed {
		ship.Rating = ComputeRating(ship.ProdDate, ship.IsUsed, ship.Speed)
		if err := s.store.SaveShip(&ship); err != nil {
			return ds.Ship{}, err
		}
	}
	return ship, nil
}

// Delete — удаление с возвратом снимка записи до удаления
func (s *ShipService) Delete(id int64) (ds.Ship, error) {
	ship, err := s.store.GetShip(id)
	if err != nil {
		return ds.Ship{}, err
	}
	if err := s.store.DeleteShip(&ship); err != nil {
		return ds.Ship{}, err
	}
	return ship, nil
}

// AttachImage — сохранить имя файла изображения; на рейтинг не влияет
func (s *ShipService) AttachImage(id int64, imageURL string) (ds.Ship, error) {
	ship, err := s.store.GetShip(id)
	if err != nil {
		return ds.Ship{}, err
	}
	ship.ImageURL = imageURL
	if err := s.store.SaveShip(&ship); err != nil {
		return ds.Ship{}, err
	}
	return ship, nil
}
