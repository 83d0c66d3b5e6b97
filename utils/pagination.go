package utils

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Paginate menjalankan query dengan limit/offset dan mengembalikan envelope
// ala paginator Laravel karena frontend membaca bentuk itu.
func Paginate(query *gorm.DB, page, perPage int, out interface{}) (fiber.Map, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 15
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	if err := query.Limit(perPage).Offset((page - 1) * perPage).Find(out).Error; err != nil {
		return nil, err
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	return fiber.Map{
		"data":         out,
		"total":        total,
		"per_page":     perPage,
		"current_page": page,
		"last_page":    lastPage,
	}, nil
}
