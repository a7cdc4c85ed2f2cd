package converter

import (
	"github.com/Liso15/UbuntuExpress/internal/usecase"
)

// ComparisonConverter преобразует строки сравнительной таблицы между usecase
// и JSON-моделью Redis.
type ComparisonConverter interface {
	ToRedisModel(entity *usecase.ProductComparison) *ComparisonRedisModel
	ToUseCase(model *ComparisonRedisModel) *usecase.ProductComparison
	ToArrRedisModel(entities []usecase.ProductComparison) []ComparisonRedisModel
}

type ComparisonConverterImpl struct{}

func (c *ComparisonConverterImpl) ToRedisModel(entity *usecase.ProductComparison) *ComparisonRedisModel {
	if entity == nil {
		return nil
	}
	return &ComparisonRedisModel{
		ID:             entity.ID,
		Name:           entity.Name,
		Description:    entity.Description,
		ImageKey:       entity.ImageKey,
		CategoryName:   entity.CategoryName,
		CategorySlug:   entity.CategorySlug,
		IsTrending:     entity.IsTrending,
		LowestPrice:    entity.LowestPrice,
		LowestRetailer: entity.LowestRetailer,
		OffersCount:    entity.OffersCount,
		ChangeLabel:    entity.ChangeLabel,
	}
}

func (c *ComparisonConverterImpl) ToUseCase(model *ComparisonRedisModel) *usecase.ProductComparison {
	if model == nil {
		return nil
	}
	return &usecase.ProductComparison{
		ID:             model.ID,
		Name:           model.Name,
		Description:    model.Description,
		ImageKey:       model.ImageKey,
		CategoryName:   model.CategoryName,
		CategorySlug:   model.CategorySlug,
		IsTrending:     model.IsTrending,
		LowestPrice:    model.LowestPrice,
		LowestRetailer: model.LowestRetailer,
		OffersCount:    model.OffersCount,
		ChangeLabel:    model.ChangeLabel,
	}
}

func (c *ComparisonConverterImpl) ToArrRedisModel(entities []usecase.ProductComparison) []ComparisonRedisModel {
	models := make([]ComparisonRedisModel, 0, len(entities))
	for i := range entities {
		models = append(models, *c.ToRedisModel(&entities[i]))
	}
	return models
}
