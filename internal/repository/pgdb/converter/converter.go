package converter

import (
	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/Liso15/UbuntuExpress/internal/usecase"
)

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
}

// RetailerConverter преобразует сущности Retailer между domain и моделью PostgreSQL.
type RetailerConverter interface {
	ToEntity(model *RetailerModel) *domain.Retailer
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// PriceConverter преобразует предложения ритейлеров между domain и моделью PostgreSQL.
type PriceConverter interface {
	ToEntity(model *PriceModel) *domain.PriceOffer
}

// AlertConverter преобразует сущности PriceAlert между domain и моделью PostgreSQL.
type AlertConverter interface {
	ToEntity(model *AlertModel) *domain.PriceAlert
}

// SubscriberConverter преобразует сущности Subscriber между domain и моделью PostgreSQL.
type SubscriberConverter interface {
	ToEntity(model *SubscriberModel) *domain.Subscriber
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

type CategoryConverterImpl struct{}

func (c *CategoryConverterImpl) ToModel(entity *domain.Category) *CategoryModel {
	if entity == nil {
		return nil
	}
	return &CategoryModel{
		ID:        entity.ID,
		Name:      entity.Name,
		Slug:      entity.Slug,
		Icon:      entity.Icon,
		CreatedAt: entity.CreatedAt,
	}
}

func (c *CategoryConverterImpl) ToEntity(model *CategoryModel) *domain.Category {
	if model == nil {
		return nil
	}
	return &domain.Category{
		ID:        model.ID,
		Name:      model.Name,
		Slug:      model.Slug,
		Icon:      model.Icon,
		CreatedAt: model.CreatedAt,
	}
}

type RetailerConverterImpl struct{}

func (c *RetailerConverterImpl) ToEntity(model *RetailerModel) *domain.Retailer {
	if model == nil {
		return nil
	}
	return &domain.Retailer{
		ID:           model.ID,
		Name:         model.Name,
		Slug:         model.Slug,
		Rating:       model.Rating,
		DeliveryInfo: model.DeliveryInfo,
		Website:      model.Website,
		CreatedAt:    model.CreatedAt,
	}
}

type ProductConverterImpl struct{}

func (c *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	if entity == nil {
		return nil
	}
	return &ProductModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: entity.Description,
		ImageKey:    entity.ImageKey,
		CategoryID:  entity.CategoryID,
		IsTrending:  entity.IsTrending,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	if model == nil {
		return nil
	}
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		ImageKey:    model.ImageKey,
		CategoryID:  model.CategoryID,
		IsTrending:  model.IsTrending,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

type PriceConverterImpl struct {
	RetailerConv RetailerConverter
}

func (c *PriceConverterImpl) ToEntity(model *PriceModel) *domain.PriceOffer {
	if model == nil {
		return nil
	}
	offer := &domain.PriceOffer{
		ID:            model.ID,
		ProductID:     model.ProductID,
		Price:         model.Price,
		OriginalPrice: model.OriginalPrice,
		InStock:       model.InStock,
		LastUpdated:   model.LastUpdated,
	}
	if r := c.RetailerConv.ToEntity(&model.Retailer); r != nil {
		offer.Retailer = *r
	}
	return offer
}

type AlertConverterImpl struct{}

func (c *AlertConverterImpl) ToEntity(model *AlertModel) *domain.PriceAlert {
	if model == nil {
		return nil
	}
	return &domain.PriceAlert{
		ID:        model.ID,
		ProductID: model.ProductID,
		Message:   model.Message,
		Discount:  model.Discount,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
	}
}

type SubscriberConverterImpl struct{}

func (c *SubscriberConverterImpl) ToEntity(model *SubscriberModel) *domain.Subscriber {
	if model == nil {
		return nil
	}
	return &domain.Subscriber{
		ID:        model.ID,
		UserID:    model.UserID,
		Email:     model.Email,
		Plan:      model.Plan,
		Price:     model.Price,
		Start:     model.StartDate,
		End:       model.EndDate,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

type OutboxEventConverterImpl struct{}

func (c *OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	if entity == nil {
		return nil
	}
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   entity.EventType,
		ProductID:   entity.ProductID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	if model == nil {
		return nil
	}
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   model.EventType,
		ProductID:   model.ProductID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	if models == nil {
		return nil
	}
	entities := make([]*usecase.OutboxEvent, 0, len(models))
	for _, m := range models {
		entities = append(entities, c.ToEntity(m))
	}
	return entities
}
