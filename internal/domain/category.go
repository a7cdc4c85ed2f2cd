package domain

import "time"

// Category описывает категорию товаров
type Category struct {
	ID        int64
	Name      string
	Slug      string // уникальный URL-безопасный идентификатор
	Icon      string
	CreatedAt time.Time
}

func NewCategory(name, slug, icon string) *Category {
	return &Category{
		Name: name,
		Slug: slug,
		Icon: icon,
	}
}
