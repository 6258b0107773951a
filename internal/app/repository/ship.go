package repository

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"space_catalog/internal/app/ds"
)

const shipCacheTTL = time.Minute

func shipCacheKey(id int64) string {
	return "ship:" + strconv.FormatInt(id, 10)
}

// SearchShips — страница кораблей по фильтру: условия навешиваются через Where
// по одному на заданный параметр фильтра
func (r *Repository) SearchShips(filter ds.ShipFilter, order ds.ShipOrder, offset, limit int) ([]ds.Ship, error) {
	query := r.db.Model(&ds.Ship{})
	for _, cond := range filter.Conditions() {
		query = query.Where(cond.Query, cond.Args...)
	}

	var ships []ds.Ship
	err := query.Order(order.Column()).Offset(offset).Limit(limit).Find(&ships).Error
	if err != nil {
		return nil, err
	}
	return ships, nil
}

// CountShips — общее число кораблей по тому же фильтру
func (r *Repository) CountShips(filter ds.ShipFilter) (int64, error) {
	query := r.db.Model(&ds.Ship{})
	for _, cond := range filter.Conditions() {
		query = query.Where(cond.Query, cond.Args...)
	}

	var total int64
	err := query.Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *Repository) GetShip(id int64) (ds.Ship, error) {
	// сначала пробуем кеш
	if r.redis != nil {
		raw, err := r.redis.Get(ctx, shipCacheKey(id)).Result()
		if err == nil {
			var cached ds.Ship
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	ship := ds.Ship{}
	err := r.db.Where("id = ?", id).First(&ship).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Ship{}, ds.ErrShipNotFound
	}
	if err != nil {
		return ds.Ship{}, err
	}

	r.cacheShip(ship)
	return ship, nil
}

// CreateShip - создание корабля, id присваивается базой
func (r *Repository) CreateShip(ship *ds.Ship) error {
	return r.db.Create(ship).Error
}

// SaveShip - сохранение изменённого корабля со сбросом кеша
func (r *Repository) SaveShip(ship *ds.Ship) error {
	if err := r.db.Save(ship).Error; err != nil {
		return err
	}
	r.dropShipCache(ship.ID)
	return nil
}

// DeleteShip - физическое удаление корабля со сбросом кеша
func (r *Repository) DeleteShip(ship *ds.Ship) error {
	if err := r.db.Delete(ship).Error; err != nil {
		return err
	}
	r.dropShipCache(ship.ID)
	return nil
}

func (r *Repository) cacheShip(ship ds.Ship) {
	if r.redis == nil {
		return
	}
	raw, err := json.Marshal(ship)
	if err != nil {
		return
	}
	if err := r.redis.Set(ctx, shipCacheKey(ship.ID), raw, shipCacheTTL).Err(); err != nil {
		logrus.Warnf("ship cache set failed: %v", err)
	}
}

func (r *Repository) dropShipCache(id int64) {
	if r.redis == nil {
		return
	}
	if err := r.redis.Del(ctx, shipCacheKey(id)).Err(); err != nil {
		logrus.Warnf("ship cache del failed: %v", err)
	}
}
