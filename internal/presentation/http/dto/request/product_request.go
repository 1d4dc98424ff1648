package request

import "github.com/shopspring/decimal"

// CreateProductRequest represents the create product request payload.
// ImageData carries the product photo as base64 in the JSON body.
type CreateProductRequest struct {
	Name      string          `json:"name" binding:"required"`
	Barcode   string          `json:"barcode"`
	Price     decimal.Decimal `json:"price"`
	ImageData []byte          `json:"image_data"`
}

// UpdateProductRequest represents the update product request payload
type UpdateProductRequest struct {
	Name      *string          `json:"name"`
	Barcode   *string          `json:"barcode"`
	Price     *decimal.Decimal `json:"price"`
	ImageData []byte           `json:"image_data"`
}

// ProductFilterRequest represents product list query parameters
type ProductFilterRequest struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Search  string `form:"search"`
}
