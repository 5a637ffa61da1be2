package model

// ProductPayload is a product without identifier.
type ProductPayload struct {
	Name        string `json:"name" gorm:"column:name;size:32"`
	Description string `json:"description" gorm:"column:description;size:2000"`
	Price       int    `json:"price" gorm:"column:price"`
}

// Columns lists every column a full replace writes.
func (p ProductPayload) Columns() map[string]interface{} {
	return map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
	}
}

// Product is a row of the products table.
type Product struct {
	ID int64 `json:"id" gorm:"column:id;primaryKey"`
	ProductPayload
}

func (Product) TableName() string {
	return "products"
}

// ProductRequest is the body of create and replace. A zero price is valid,
// a missing one is not.
type ProductRequest struct {
	Name        *string `json:"name" validate:"required,max=32"`
	Description *string `json:"description" validate:"required,max=2000"`
	Price       *int    `json:"price" validate:"required"`
}

func (r *ProductRequest) Validate() error {
	return validate.Struct(r)
}

func (r *ProductRequest) Payload() ProductPayload {
	return ProductPayload{
		Name:        *r.Name,
		Description: *r.Description,
		Price:       *r.Price,
	}
}

// UpdateProductRequest replaces every field of the product with the path id.
type UpdateProductRequest struct {
	ID int64 `param:"id" json:"-"`
	ProductRequest
}

func (r *UpdateProductRequest) Validate() error {
	return validate.Struct(r)
}
