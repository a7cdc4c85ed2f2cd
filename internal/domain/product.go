package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID          int64
	Name        string
	Description string
	ImageKey    string // ключ объекта в S3, пустая строка — без изображения
	CategoryID  int64
	IsTrending  bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewProduct(name, description, imageKey string, categoryID int64, isTrending bool) *Product {
	return &Product{
		Name:        name,
		Description: description,
		ImageKey:    imageKey,
		CategoryID:  categoryID,
		IsTrending:  isTrending,
	}
}
