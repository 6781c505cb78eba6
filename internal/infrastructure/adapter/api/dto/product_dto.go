package dto

import "github.com/kondo-pos/pos-backend/internal/domain/entity"

// ProductResponse is a catalog entry as the register sees it
type ProductResponse struct {
	ProductID uint64 `json:"prd_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
}

// CreateProductRequest registers a product. Fields may come from a JSON body or the query string.
type CreateProductRequest struct {
	Code  string `json:"code" form:"code" binding:"required"`
	Name  string `json:"name" form:"name" binding:"required"`
	Price *int64 `json:"price" form:"price" binding:"required"`
}

// UpdateProductRequest changes name and/or price; absent fields are kept
type UpdateProductRequest struct {
	Name  *string `json:"name" form:"name"`
	Price *int64  `json:"price" form:"price"`
}

// ListProductsQuery pages through the catalog
type ListProductsQuery struct {
	Skip   int    `form:"skip"`
	Limit  int    `form:"limit"`
	Search string `form:"search"`
}

// NewProductResponse converts a product entity
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ID,
		Code:      p.Code,
		Name:      p.Name,
		Price:     p.Price,
	}
}

// NewProductListResponse converts a page of products, never returning nil
func NewProductListResponse(products []*entity.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, NewProductResponse(p))
	}
	return result
}
