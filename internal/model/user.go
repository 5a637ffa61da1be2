package model

// UserPayload is a user without identifier.
type UserPayload struct {
	FirstName  string `json:"first_name" gorm:"column:first_name;size:32"`
	SecondName string `json:"second_name" gorm:"column:second_name;size:32"`
	Email      string `json:"email" gorm:"column:email;size:32"`
	Password   string `json:"password" gorm:"column:password;size:32"`
}

// Columns lists every column a full replace writes.
func (p UserPayload) Columns() map[string]interface{} {
	return map[string]interface{}{
		"first_name":  p.FirstName,
		"second_name": p.SecondName,
		"email":       p.Email,
		"password":    p.Password,
	}
}

// User is a row of the users table.
type User struct {
	ID int64 `json:"id" gorm:"column:id;primaryKey"`
	UserPayload
}

func (User) TableName() string {
	return "users"
}

// UserRequest is the body of create and replace. Every field must be
// present; empty strings are allowed.
type UserRequest struct {
	FirstName  *string `json:"first_name" validate:"required,max=32"`
	SecondName *string `json:"second_name" validate:"required,max=32"`
	Email      *string `json:"email" validate:"required,max=32"`
	Password   *string `json:"password" validate:"required,max=32"`
}

func (r *UserRequest) Validate() error {
	return validate.Struct(r)
}

// Payload dereferences a validated request.
func (r *UserRequest) Payload() UserPayload {
	return UserPayload{
		FirstName:  *r.FirstName,
		SecondName: *r.SecondName,
		Email:      *r.Email,
		Password:   *r.Password,
	}
}

// UpdateUserRequest replaces every field of the user with the path id.
type UpdateUserRequest struct {
	ID int64 `param:"id" json:"-"`
	UserRequest
}

func (r *UpdateUserRequest) Validate() error {
	return validate.Struct(r)
}
