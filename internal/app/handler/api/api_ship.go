package api

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"space_catalog/internal/app/ds"
	"space_catalog/internal/app/service"
)

type ShipHandler struct {
	Service     *service.ShipService
	MinioClient *minio.Client
	MinioBucket string
}

// parseShipFilter — сборка фильтра из query-параметров; отсутствующий
// параметр не попадает в фильтр, кривое значение — ошибка 400
func parseShipFilter(c *gin.Context) (ds.ShipFilter, error) {
	var filter ds.ShipFilter

	if v := c.Query("name"); v != "" {
		filter.Name = &v
	}
	if v := c.Query("planet"); v != "" {
		filter.Planet = &v
	}
	if v := c.Query("shipType"); v != "" {
		shipType := ds.ShipType(v)
		if !shipType.IsValid() {
			return filter, errors.New("unknown shipType: " + v)
		}
		filter.ShipType = &shipType
	}
	if v := c.Query("after"); v != "" {
		millis, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.After = &millis
	}
	if v := c.Query("before"); v != "" {
		millis, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.Before = &millis
	}
	if v := c.Query("isUsed"); v != "" {
		isUsed, err := strconv.ParseBool(v)
		if err != nil {
			return filter, err
		}
		filter.IsUsed = &isUsed
	}
	if v := c.Query("minSpeed"); v != "" {
		speed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, err
		}
		filter.MinSpeed = &speed
	}
	if v := c.Query("maxSpeed"); v != "" {
		speed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, err
		}
		filter.MaxSpeed = &speed
	}
	if v := c.Query("minCrewSize"); v != "" {
		crewSize, err := strconv.Atoi(v)
		if err != nil {
			return filter, err
		}
		filter.MinCrewSize = &crewSize
	}
	if v := c.Query("maxCrewSize"); v != "" {
		crewSize, err := strconv.Atoi(v)
		if err != nil {
			return filter, err
		}
		filter.MaxCrewSize = &crewSize
	}
	if v := c.Query("minRating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, err
		}
		filter.MinRating = &rating
	}
	if v := c.Query("maxRating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, err
		}
		filter.MaxRating = &rating
	}

	return filter, nil
}

func parseShipID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.New("invalid ship ID")
	}
	if id <= 0 {
		return 0, errors.New("ship ID must be positive")
	}
	return id, nil
}

// @Summary List ships
// @Description List ships with optional filters, ordering and pagination
// @Tags ships
// @Produce json
// @Param name query string false "Name substring"
// @Param planet query string false "Planet substring"
// @Param shipType query string false "TRANSPORT | MILITARY | MERCHANT"
// @Param after query int false "Produced at or after, epoch millis"
// @Param before query int false "Produced at or before, epoch millis"
// @Param isUsed query bool false "Used flag"
// @Param minSpeed query number false "Minimum speed"
// @Param maxSpeed query number false "Maximum speed"
// @Param minCrewSize query int false "Minimum crew size"
// @Param maxCrewSize query int false "Maximum crew size"
// @Param minRating query number false "Minimum rating"
// @Param maxRating query number false "Maximum rating"
// @Param order query string false "ID | SPEED | DATE | RATING" default(ID)
// @Param pageNumber query int false "Zero-based page number" default(0)
// @Param pageSize query int false "Page size" default(3)
// @Success 200 {object} object "data: ships page"
// @Failure 400 {object} object "error: message"
// @Router /api/ships [get]
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	filter, err := parseShipFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	order, err := ds.ParseShipOrder(c.Query("order"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	pageNumber := service.DefaultPageNumber
	if v := c.Query("pageNumber"); v != "" {
		pageNumber, err = strconv.Atoi(v)
		if err != nil || pageNumber < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "invalid pageNumber",
			})
			return
		}
	}
	pageSize := service.DefaultPageSize
	if v := c.Query("pageSize"); v != "" {
		pageSize, err = strconv.Atoi(v)
		if err != nil || pageSize < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "invalid pageSize",
			})
			return
		}
	}

	ships, err := h.Service.List(filter, order, pageNumber, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	infos := make([]ds.ShipInfo, 0, len(ships))
	for _, ship := range ships {
		infos = append(infos, ds.ToShipInfo(ship))
	}
	c.JSON(http.StatusOK, gin.H{
		"data": infos,
	})
}

// @Summary Count ships
// @Description Total number of ships matching the same filters as the list
// @Tags ships
// @Produce json
// @Success 200 {object} object "count: integer"
// @Failure 400 {object} object "error: message"
// @Router /api/ships/count [get]
func (h *ShipHandler) GetShipsCountAPI(c *gin.Context) {
	filter, err := parseShipFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	total, err := h.Service.Count(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": total,
	})
}

// @Summary Get ship
// @Description One ship by id
// @Tags ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} object "data: ship"
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /api/ships/{id} [get]
func (h *ShipHandler) GetShipAPI(c *gin.Context) {
	id, err := parseShipID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	ship, err := h.Service.Get(id)
	if err != nil {
		if errors.Is(err, ds.ErrShipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ship not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": ds.ToShipInfo(ship),
	})
}

// @Summary Create ship
// @Description Create a ship; rating is computed server-side
// @Tags ships
// @Accept json
// @Produce json
// @Param ship body ds.CreateShipRequest true "Ship fields"
// @Success 200 {object} object "data: created ship"
// @Failure 400 {object} object "error: message"
// @Router /api/ships [post]
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var req ds.CreateShipRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if err := service.ValidateCreate(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	ship, err := h.Service.Create(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": ds.ToShipInfo(ship),
	})
}

// @Summary Update ship
// @Description Partial update: absent fields are left unchanged
// @Tags ships
// @Accept json
// @Produce json
// @Param id path int true "Ship ID"
// @Param ship body ds.UpdateShipRequest true "Fields to change"
// @Success 200 {object} object "data: updated ship"
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /api/ships/{id} [put]
func (h *ShipHandler) UpdateShipAPI(c *gin.Context) {
	id, err := parseShipID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req ds.UpdateShipRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if err := service.ValidateUpdate(id, req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	ship, err := h.Service.Update(id, req)
	if err != nil {
		if errors.Is(err, ds.ErrShipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ship not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": ds.ToShipInfo(ship),
	})
}

// @Summary Delete ship
// @Description Delete a ship and return its pre-deletion snapshot
// @Tags ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} object "data: deleted ship"
// @Failure 400 {object} object "error: message"
// @Failure 404 {object} object "error: message"
// @Router /api/ships/{id} [delete]
func (h *ShipHandler) DeleteShipAPI(c *gin.Context) {
	id, err := parseShipID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	ship, err := h.Service.Delete(id)
	if err != nil {
		if errors.Is(err, ds.ErrShipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ship not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": ds.ToShipInfo(ship),
	})
}

// @Summary Upload ship image
// @Description Upload a ship image to MinIO and store its file name
// @Tags ships
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Ship ID"
// @Param file formData file true "Image file"
// @Success 200 {object} object "data: ship_id, image_url"
// @Failure 400 {object} object "message: error"
// @Failure 404 {object} object "message: error"
// @Router /api/ships/{id}/image [post]
func (h *ShipHandler) AddShipImageAPI(c *gin.Context) {
	id, err := parseShipID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": err.Error(),
		})
		return
	}
	if h.MinioClient == nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "MinIO client not available",
		})
		return
	}

	// Парсинг multipart формы
	err = c.Request.ParseMultipartForm(10 << 20) // 10 MB
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Failed to parse form data",
		})
		return
	}

	// Проверяем существование корабля
	ship, err := h.Service.Get(id)
	if err != nil {
		if errors.Is(err, ds.ErrShipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Ship not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": err.Error(),
		})
		return
	}

	// Получаем файл из формы
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		file, header, err = c.Request.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "No image file provided",
			})
			return
		}
	}
	defer file.Close()

	// Генерируем уникальное имя файла
	fileExt := filepath.Ext(header.Filename)
	newFileName := uuid.New().String() + fileExt
	objectName := "img/" + newFileName

	_, err = h.MinioClient.PutObject(
		context.Background(),
		h.MinioBucket,
		objectName,
		file,
		header.Size,
		minio.PutObjectOptions{
			ContentType: header.Header.Get("Content-Type"),
		},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to upload image",
		})
		return
	}

	// Удаляем старое изображение
	if ship.ImageURL != "" {
		oldFileName := ship.ImageURL
		if strings.Contains(oldFileName, "/") {
			parts := strings.Split(oldFileName, "/")
			oldFileName = parts[len(parts)-1]
		}
		oldObjectName := "img/" + oldFileName
		h.MinioClient.RemoveObject(context.Background(), h.MinioBucket, oldObjectName, minio.RemoveObjectOptions{})
	}

	// Сохраняем в БД только имя файла
	if _, err := h.Service.AttachImage(id, newFileName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update ship",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"ship_id":   id,
			"image_url": newFileName,
			"message":   "Image uploaded successfully",
		},
	})
}
