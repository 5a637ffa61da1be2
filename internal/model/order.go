package model

// OrderPayload is an order without identifier.
//
// UsersTableID and ProductsTableID are not checked against their tables.
type OrderPayload struct {
	UsersTableID    int64  `json:"users_table_id" gorm:"column:users_table_id;index"`
	ProductsTableID int64  `json:"products_table_id" gorm:"column:products_table_id;index"`
	OrderDate       string `json:"order_date" gorm:"column:order_date;size:32"`
	OrderStatus     string `json:"order_status" gorm:"column:order_status;size:32"`
}

// Columns lists every column a full replace writes.
func (p OrderPayload) Columns() map[string]interface{} {
	return map[string]interface{}{
		"users_table_id":    p.UsersTableID,
		"products_table_id": p.ProductsTableID,
		"order_date":        p.OrderDate,
		"order_status":      p.OrderStatus,
	}
}

// Order is a row of the orders table.
//
// User and Product only declare the foreign keys for schema registration;
// they are never loaded or written.
type Order struct {
	ID int64 `json:"id" gorm:"column:id;primaryKey"`
	OrderPayload

	User    *User    `json:"-" gorm:"foreignKey:UsersTableID;references:ID"`
	Product *Product `json:"-" gorm:"foreignKey:ProductsTableID;references:ID"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderRequest is the body of create and replace.
type OrderRequest struct {
	UsersTableID    *int64  `json:"users_table_id" validate:"required"`
	ProductsTableID *int64  `json:"products_table_id" validate:"required"`
	OrderDate       *string `json:"order_date" validate:"required,max=32"`
	OrderStatus     *string `json:"order_status" validate:"required,max=32"`
}

func (r *OrderRequest) Validate() error {
	return validate.Struct(r)
}

func (r *OrderRequest) Payload() OrderPayload {
	return OrderPayload{
		UsersTableID:    *r.UsersTableID,
		ProductsTableID: *r.ProductsTableID,
		OrderDate:       *r.OrderDate,
		OrderStatus:     *r.OrderStatus,
	}
}

// UpdateOrderRequest replaces every field of the order with the path id.
type UpdateOrderRequest struct {
	ID int64 `param:"id" json:"-"`
	OrderRequest
}

func (r *UpdateOrderRequest) Validate() error {
	return validate.Struct(r)
}
