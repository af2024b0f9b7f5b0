package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"os"
	"strings"
	"sync"
	"time"

	"pdv_xpto/internal/domain/entities"
	"pdv_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidProductID  = errors.New("invalid product id")
	ErrInvalidProduct    = errors.New("invalid product")
	ErrInvalidStockValue = errors.New("invalid stock value")
)

const defaultCatalogCacheTTL = 30 * time.Second

// ICatalogUseCase exposes the catalog provider operations.
//
// ListProducts serves the storefront through a short-lived in-memory cache;
// InvalidateCache is consumed by the sale committer after a successful
// checkout so subsequent reads reflect decremented stock. GetProduct always
// bypasses the cache: the stock validator needs live stock, not a snapshot
// cached at add-time.

type ICatalogUseCase interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateStock(ctx context.Context, id string, newStock float64) (entities.Product, error)
	LowStockCount(ctx context.Context) (int, error)
	InvalidateCache()
}

type CatalogUseCase struct {
	repo interfaces.IProductRepository

	ttl       time.Duration
	mu        sync.RWMutex
	cached    []entities.Product
	expiresAt time.Time
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, ttl: catalogCacheTTLFromEnv()}
}

func catalogCacheTTLFromEnv() time.Duration {
	raw := strings.TrimSpace(os.Getenv("CATALOG_CACHE_TTL"))
	if raw == "" {
		return defaultCatalogCacheTTL
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		log.Printf("[catalog][usecase] invalid CATALOG_CACHE_TTL=%q, using default", raw)
		return defaultCatalogCacheTTL
	}
	return ttl
}

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	u.mu.RLock()
	if u.cached != nil && time.Now().UTC().Before(u.expiresAt) {
		products := append([]entities.Product(nil), u.cached...)
		u.mu.RUnlock()
		return products, nil
	}
	u.mu.RUnlock()

	products, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[catalog][usecase] list failed err=%v", err)
		return nil, err
	}

	u.mu.Lock()
	u.cached = append([]entities.Product(nil), products...)
	u.expiresAt = time.Now().UTC().Add(u.ttl)
	u.mu.Unlock()

	return products, nil
}

// InvalidateCache drops the cached product list so the next ListProducts
// re-reads the store.
func (u *CatalogUseCase) InvalidateCache() {
	u.mu.Lock()
	u.cached = nil
	u.expiresAt = time.Time{}
	u.mu.Unlock()
	log.Printf("[catalog][usecase] product cache invalidated")
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	p.UnitMeasure = strings.TrimSpace(p.UnitMeasure)

	if err := validateProduct(p); err != nil {
		log.Printf("[catalog][usecase] create rejected name=%q err=%v", p.Name, err)
		return entities.Product{}, err
	}

	p.ID = uuid.NewString()
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[catalog][usecase] create failed name=%q err=%v", p.Name, err)
		return entities.Product{}, err
	}

	u.InvalidateCache()
	log.Printf("[catalog][usecase] product created id=%s name=%q", created.ID, created.Name)
	return created, nil
}

func validateProduct(p entities.Product) error {
	if p.Name == "" || p.UnitMeasure == "" {
		return ErrInvalidProduct
	}
	if !p.UnitType.Valid() {
		return ErrInvalidProduct
	}
	if p.CostPrice < 0 || p.SalePrice < 0 || math.IsNaN(p.CostPrice) || math.IsNaN(p.SalePrice) {
		return ErrInvalidProduct
	}
	if p.Stock < 0 || p.MinStock < 0 || math.IsNaN(p.Stock) || math.IsNaN(p.MinStock) {
		return ErrInvalidProduct
	}
	// Unit-counted products hold whole pieces; only bulk stock may be fractional.
	if p.UnitType == entities.UnitTypeUnit && p.Stock != math.Trunc(p.Stock) {
		return ErrInvalidProduct
	}
	return nil
}

// UpdateStock writes an absolute stock value (restocking or a manual
// adjustment), never a delta.
func (u *CatalogUseCase) UpdateStock(ctx context.Context, id string, newStock float64) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if newStock < 0 || math.IsNaN(newStock) {
		return entities.Product{}, ErrInvalidStockValue
	}

	updated, err := u.repo.UpdateStock(ctx, id, newStock)
	if err != nil {
		log.Printf("[catalog][usecase] stock update failed product_id=%s err=%v", id, err)
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	u.InvalidateCache()
	log.Printf("[catalog][usecase] stock updated product_id=%s stock=%v", id, newStock)
	return updated, nil
}

func (u *CatalogUseCase) LowStockCount(ctx context.Context) (int, error) {
	products, err := u.ListProducts(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, p := range products {
		if p.LowStock() {
			count++
		}
	}
	return count, nil
}
