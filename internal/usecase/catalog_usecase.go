package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Liso15/UbuntuExpress/internal/domain"
	"github.com/Liso15/UbuntuExpress/pkg/e"
	"github.com/Liso15/UbuntuExpress/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

const (
	// searchLimit — жёсткий предел выдачи текстового поиска.
	searchLimit = 10
	// minQueryLen — запросы короче не уходят в хранилище.
	minQueryLen = 2
	// maxConcurrentPriceFetch ограничивает веер запросов цен по товарам.
	maxConcurrentPriceFetch = 8
)

// CatalogUseCase реализует бизнес-логику каталога: категории, ритейлеры,
// сравнительная таблица цен и регистрация новых товаров.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	retailerRepo RetailerRepository
	priceRepo    PriceRepository
	cacheRepo    CacheRepository
	imagesInfra  ImagesInfra
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	retailerRepo RetailerRepository,
	priceRepo PriceRepository,
	cacheRepo CacheRepository,
	imagesInfra ImagesInfra,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		retailerRepo: retailerRepo,
		priceRepo:    priceRepo,
		cacheRepo:    cacheRepo,
		imagesInfra:  imagesInfra,
		dbPool:       dbPool,
		logger:       logger,
	}
}

func (c *CatalogUseCase) GetCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogUseCase.GetCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

func (c *CatalogUseCase) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	const op = "CatalogUseCase.GetCategoryBySlug"

	category, err := c.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

func (c *CatalogUseCase) GetRetailers(ctx context.Context) ([]domain.Retailer, error) {
	const op = "CatalogUseCase.GetRetailers"

	retailers, err := c.retailerRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return retailers, nil
}

func (c *CatalogUseCase) GetRetailerByID(ctx context.Context, id int64) (*domain.Retailer, error) {
	const op = "CatalogUseCase.GetRetailerByID"

	retailer, err := c.retailerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return retailer, nil
}

// GetProducts строит сравнительную таблицу: товары по категории либо по
// текстовому запросу, агрегированные цены из кэша или БД, сортировка и
// пагинация поверх.
func (c *CatalogUseCase) GetProducts(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	const op = "CatalogUseCase.GetProducts"

	if err := validateSortParams(req.SortBy, req.Order); err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		products []ProductWithCategory
		err      error
	)
	if q := strings.TrimSpace(req.Query); q != "" {
		// Короткий запрос отсекается до похода в хранилище.
		if len([]rune(q)) < minQueryLen {
			return &GetProductsRes{Products: []ProductComparison{}}, nil
		}
		products, err = c.productRepo.Search(ctx, q, searchLimit)
	} else {
		products, err = c.productRepo.List(ctx, req.CategorySlug)
	}
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	rows := c.collectComparisons(ctx, products)

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = SortByPrice
	}
	order := req.Order
	if order == "" {
		order = OrderAsc
	}

	sorted := BuildView(rows, sortBy, order)
	total := len(sorted)
	paged := Paginate(sorted, req.Page, req.PerPage)

	res := &GetProductsRes{
		Products: paged,
		Total:    total,
	}

	// Развёрнутая строка дополняется полным ранжированием по ритейлерам.
	if req.ExpandedID != 0 {
		expanded, err := c.GetProductOffers(ctx, req.ExpandedID)
		if err != nil {
			c.logger.Warnf("failed to load expanded offers for product %d: %v", req.ExpandedID, e.Wrap(op, err))
		} else {
			res.Expanded = expanded
		}
	}

	return res, nil
}

// collectComparisons собирает агрегированные строки: сперва кэш, промахи —
// веером из БД с ограничением параллелизма. Ошибка по одному товару не
// прерывает остальных: такой товар просто выпадает из выдачи.
func (c *CatalogUseCase) collectComparisons(ctx context.Context, products []ProductWithCategory) []ProductComparison {
	const op = "CatalogUseCase.collectComparisons"

	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.Product.ID
	}

	cached, err := c.cacheRepo.GetComparisons(ctx, ids)
	if err != nil {
		// Кэш недоступен — все товары идут в БД.
		cached = map[int64]ProductComparison{}
	}

	results := make([]*ProductComparison, len(products))
	var (
		wg  sync.WaitGroup
		sem = make(chan struct{}, maxConcurrentPriceFetch)
	)
	for i, p := range products {
		if row, ok := cached[p.Product.ID]; ok {
			row := row
			results[i] = &row
			continue
		}

		wg.Add(1)
		go func(i int, pwc ProductWithCategory) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			offers, err := c.priceRepo.ListByProduct(ctx, pwc.Product.ID)
			if err != nil {
				c.logger.Warnf("dropping product %d from comparison: %v", pwc.Product.ID, e.Wrap(op, err))
				return
			}
			row := buildComparison(pwc, offers)
			results[i] = &row
		}(i, p)
	}
	wg.Wait()

	rows := make([]ProductComparison, 0, len(products))
	var fresh []ProductComparison
	for i := range results {
		if results[i] == nil {
			continue
		}
		rows = append(rows, *results[i])
		if _, ok := cached[results[i].ID]; !ok {
			fresh = append(fresh, *results[i])
		}
	}

	// Фоновое наполнение кэша свежими строками.
	if len(fresh) > 0 {
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := c.cacheRepo.SetComparisons(bgCtx, fresh); err != nil {
				c.logger.Warnf("failed to cache comparisons in background: %v", e.Wrap(op, err))
			}
		}()
	}

	return rows
}

func (c *CatalogUseCase) GetProductByID(ctx context.Context, id int64) (*ProductWithCategory, error) {
	const op = "CatalogUseCase.GetProductByID"

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// GetProductOffers возвращает все предложения товара, ранжированные по цене.
// Первый элемент Ranked — лучшая цена.
func (c *CatalogUseCase) GetProductOffers(ctx context.Context, productID int64) (*AggregateRes, error) {
	const op = "CatalogUseCase.GetProductOffers"

	if _, err := c.productRepo.GetByID(ctx, productID); err != nil {
		return nil, e.Wrap(op, err)
	}

	offers, err := c.priceRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return Aggregate(offers), nil
}

// RegisterNewProduct обрабатывает добавление нового товара с изображениями и
// идемпотентным созданием категории в одной транзакции.
func (c *CatalogUseCase) RegisterNewProduct(ctx context.Context, req *AddNewProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.RegisterNewProduct"

	var err error
	if err = c.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		imagesRes *UploadImagesRes
		uploaded  bool
	)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции и очистка загруженных изображений
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}

			if uploaded && imagesRes != nil {
				c.logger.Warnf(
					"Cleaning up orphaned images after transaction failure. product_name: %s, error: %v",
					req.Name,
					e.Wrap(op, err),
				)

				c.imagesInfra.CleanupImages(imagesRes.ImagesKeys)
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// идемпотентное создание категории
	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(req.CategoryName, Slugify(req.CategoryName), ""))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Загрузка изображений в MinIO, ключ первого становится основным
	var imageKey string
	if len(req.Images) > 0 {
		imagesRes, err = c.imagesInfra.UploadImages(ctx, NewUploadImagesReq(req.Name, req.Images))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		uploaded = true
		imageKey = imagesRes.ImagesKeys[0]
	}

	product, err := c.productRepo.Upsert(ctx, domain.NewProduct(req.Name, req.Description, imageKey, category.ID, req.IsTrending))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Удаление из кэша устаревшей строки сравнения
	if err := c.cacheRepo.DeleteComparisons(ctx, []int64{product.ID}); err != nil {
		c.logger.Warnf("Failed to invalidate comparison cache: %v", e.Wrap(op, err))
	}

	return product, nil
}

// validateProduct проверяет корректность входных данных запроса на добавление товара.
func (c *CatalogUseCase) validateProduct(req *AddNewProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if strings.TrimSpace(req.CategoryName) == "" {
		return e.ErrMissingFields
	}

	return nil
}

func validateSortParams(sortBy SortField, order SortOrder) error {
	switch sortBy {
	case "", SortByPrice, SortBySuppliers:
	default:
		return e.ErrInvalidSortParams
	}

	switch order {
	case "", OrderAsc, OrderDesc:
	default:
		return e.ErrInvalidSortParams
	}

	return nil
}

// buildComparison сводит товар и его предложения в строку сравнительной таблицы.
func buildComparison(pwc ProductWithCategory, offers []domain.PriceOffer) ProductComparison {
	agg := Aggregate(offers)

	row := ProductComparison{
		ID:           pwc.Product.ID,
		Name:         pwc.Product.Name,
		Description:  pwc.Product.Description,
		ImageKey:     pwc.Product.ImageKey,
		CategoryName: pwc.Category.Name,
		CategorySlug: pwc.Category.Slug,
		IsTrending:   pwc.Product.IsTrending,
		OffersCount:  len(offers),
		ChangeLabel:  agg.ChangeLabel,
	}
	if agg.Lowest != nil {
		price := agg.Lowest.Price
		row.LowestPrice = &price
		row.LowestRetailer = agg.Lowest.Retailer.Name
	}

	return row
}

// Slugify приводит имя к URL-безопасному виду: нижний регистр,
// пробелы заменяются дефисами, прочие небуквенные символы отбрасываются.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
