package model

import "strings"

type ContactID int64

type Contact struct {
	ID        ContactID `db:"id"`
	Username  string    `db:"username"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
}

type CreateContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// UpdateContactRequest is a partial update; only first_name is required,
// omitted optional fields keep their stored values.
type UpdateContactRequest struct {
	ID        ContactID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
}

type SearchContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
}

type ContactResponse struct {
	ID        ContactID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
}

func (c *Contact) Response() *ContactResponse {
	return &ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

func validateContactFields(firstName, lastName, email, phone string) error {
	if err := requireString("first_name", firstName, 100); err != nil {
		return err
	}
	if err := optionalString("last_name", lastName, 100); err != nil {
		return err
	}
	if err := optionalString("email", email, 100); err != nil {
		return err
	}
	if email != "" && !strings.Contains(email, "@") {
		return invalidField("email", "must be a valid email address")
	}
	return optionalString("phone", phone, 20)
}

func (r *CreateContactRequest) Validate() error {
	return validateContactFields(r.FirstName, r.LastName, r.Email, r.Phone)
}

func (r *UpdateContactRequest) Validate() error {
	if err := requireID("id", int64(r.ID)); err != nil {
		return err
	}
	return validateContactFields(r.FirstName, r.LastName, r.Email, r.Phone)
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

func (r *SearchContactRequest) Validate() error {
	if r.Page == 0 {
		r.Page = 1
	}
	if r.Size == 0 {
		r.Size = DefaultPageSize
	}
	if r.Page < 1 {
		return invalidField("page", "must be at least 1")
	}
	if r.Size < 1 || r.Size > MaxPageSize {
		return invalidField("size", "must be between 1 and %d", MaxPageSize)
	}
	if err := optionalString("name", r.Name, 100); err != nil {
		return err
	}
	if err := optionalString("email", r.Email, 100); err != nil {
		return err
	}
	return optionalString("phone", r.Phone, 100)
}
