package usecase

import (
	"context"
	"errors"
	"testing"

	"pdv_xpto/internal/domain/entities"
	mock_interfaces "pdv_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func catalogProduct(id string, stock, minStock float64) entities.Product {
	return entities.Product{
		ID:          id,
		Name:        "product-" + id,
		Category:    "grocery",
		SalePrice:   10,
		CostPrice:   5,
		Stock:       stock,
		MinStock:    minStock,
		UnitType:    entities.UnitTypeUnit,
		UnitMeasure: "un",
	}
}

func TestCatalogUseCase_ListProducts(t *testing.T) {
	t.Run("caches the list between calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Product{catalogProduct("p1", 5, 1)}, nil).Times(1)

		for i := 0; i < 3; i++ {
			products, err := uc.ListProducts(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(products) != 1 {
				t.Fatalf("expected 1 product, got %d", len(products))
			}
		}
	})

	t.Run("invalidate forces a re-read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Product{catalogProduct("p1", 5, 1)}, nil).Times(2)

		if _, err := uc.ListProducts(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		uc.InvalidateCache()
		if _, err := uc.ListProducts(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.ListProducts(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCatalogUseCase_GetProduct(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		if _, err := uc.GetProduct(context.Background(), "   "); !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{}, nil)

		if _, err := uc.GetProduct(context.Background(), "p1"); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(catalogProduct("p1", 5, 1), nil)

		p, err := uc.GetProduct(context.Background(), " p1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "p1" {
			t.Fatalf("unexpected product: %+v", p)
		}
	})
}

func TestCatalogUseCase_CreateProduct(t *testing.T) {
	valid := entities.Product{
		Name:        "Arroz 5kg",
		Category:    "grocery",
		SalePrice:   25,
		CostPrice:   18,
		Stock:       10,
		MinStock:    2,
		UnitType:    entities.UnitTypeUnit,
		UnitMeasure: "un",
	}

	t.Run("rejects invalid products", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		cases := map[string]func(p *entities.Product){
			"empty name":          func(p *entities.Product) { p.Name = "  " },
			"empty unit measure":  func(p *entities.Product) { p.UnitMeasure = "" },
			"bad unit type":       func(p *entities.Product) { p.UnitType = "case" },
			"negative sale price": func(p *entities.Product) { p.SalePrice = -1 },
			"negative cost price": func(p *entities.Product) { p.CostPrice = -0.01 },
			"negative stock":      func(p *entities.Product) { p.Stock = -1 },
			"negative min stock":  func(p *entities.Product) { p.MinStock = -1 },
			"fractional unit stock": func(p *entities.Product) {
				p.UnitType = entities.UnitTypeUnit
				p.Stock = 1.5
			},
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				p := valid
				mutate(&p)
				if _, err := uc.CreateProduct(context.Background(), p); !errors.Is(err, ErrInvalidProduct) {
					t.Fatalf("expected ErrInvalidProduct, got %v", err)
				}
			})
		}
	})

	t.Run("bulk products allow fractional stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		p := valid
		p.UnitType = entities.UnitTypeBulk
		p.UnitMeasure = "kg"
		p.Stock = 2.75

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, stored entities.Product) (entities.Product, error) {
				if stored.ID == "" {
					t.Fatalf("expected generated id")
				}
				if stored.Stock != 2.75 {
					t.Fatalf("unexpected stock: %v", stored.Stock)
				}
				return stored, nil
			},
		)

		created, err := uc.CreateProduct(context.Background(), p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected id on created product")
		}
	})
}

func TestCatalogUseCase_UpdateStock(t *testing.T) {
	t.Run("rejects negative stock", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		if _, err := uc.UpdateStock(context.Background(), "p1", -2); !errors.Is(err, ErrInvalidStockValue) {
			t.Fatalf("expected ErrInvalidStockValue, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().UpdateStock(gomock.Any(), "p1", 4.0).Return(entities.Product{}, nil)

		if _, err := uc.UpdateStock(context.Background(), "p1", 4); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("success invalidates the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Product{catalogProduct("p1", 5, 1)}, nil).Times(2)
		repo.EXPECT().UpdateStock(gomock.Any(), "p1", 9.0).Return(catalogProduct("p1", 9, 1), nil)

		if _, err := uc.ListProducts(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.UpdateStock(context.Background(), "p1", 9); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.ListProducts(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase_LowStockCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewCatalogUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Product{
		catalogProduct("p1", 0, 1),
		catalogProduct("p2", 1, 1),
		catalogProduct("p3", 8, 2),
	}, nil)

	count, err := uc.LowStockCount(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 low-stock products, got %d", count)
	}
}
