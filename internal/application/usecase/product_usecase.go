package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cultivapp/cultivo-api/internal/application/dto"
	"github.com/cultivapp/cultivo-api/internal/domain"
	"github.com/cultivapp/cultivo-api/internal/domain/entity"
	"github.com/cultivapp/cultivo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock solo se modifica
// aquí por edición directa; los movimientos lo hacen vía el libro de inventario.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Con HasStock=false se ignoran los campos de stock
// y CurrentValue se guarda como lectura actual.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !entity.IsValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	hasStock := true
	if in.HasStock != nil {
		hasStock = *in.HasStock
	}
	product := &entity.Product{
		Name:        in.Name,
		Unit:        in.Unit,
		Price:       in.Price,
		HasStock:    hasStock,
		Responsible: in.Responsible,
		CreatedAt:   time.Now(),
	}
	if hasStock {
		product.InitialStock = in.InitialStock
		product.CurrentStock = in.CurrentStock
		product.MinStock = in.MinStock
	} else {
		product.CurrentStock = in.CurrentValue
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto campo a campo. Si el producto queda sin
// control de stock, initial_stock y min_stock se ponen a cero y
// current_value pasa a ser la lectura actual.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Unit != nil {
		if !entity.IsValidUnit(*in.Unit) {
			return nil, domain.ErrInvalidInput
		}
		product.Unit = *in.Unit
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Responsible != nil {
		product.Responsible = *in.Responsible
	}
	if in.HasStock != nil {
		product.HasStock = *in.HasStock
	}
	if product.HasStock {
		if in.InitialStock != nil {
			product.InitialStock = *in.InitialStock
		}
		if in.CurrentStock != nil {
			product.CurrentStock = *in.CurrentStock
		}
		if in.MinStock != nil {
			product.MinStock = *in.MinStock
		}
	} else {
		if in.CurrentValue != nil {
			product.CurrentStock = *in.CurrentValue
		}
		product.InitialStock = decimal.Zero
		product.MinStock = decimal.Zero
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Unit:         p.Unit,
		InitialStock: p.InitialStock,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		Price:        p.Price,
		HasStock:     p.HasStock,
		Responsible:  p.Responsible,
		CreatedAt:    p.CreatedAt,
	}
}
