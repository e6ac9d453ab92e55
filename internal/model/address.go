package model

type AddressID int64

type Address struct {
	ID         AddressID `db:"id"`
	ContactID  ContactID `db:"contact_id"`
	Street     string    `db:"street"`
	City       string    `db:"city"`
	Province   string    `db:"province"`
	Country    string    `db:"country"`
	PostalCode string    `db:"postal_code"`
}

type CreateAddressRequest struct {
	ContactID  ContactID `json:"contact_id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	Province   string    `json:"province"`
	Country    string    `json:"country"`
	PostalCode string    `json:"postal_code"`
}

type GetAddressRequest struct {
	ContactID ContactID `json:"contact_id"`
	AddressID AddressID `json:"address_id"`
}

type UpdateAddressRequest struct {
	ID         AddressID `json:"id"`
	ContactID  ContactID `json:"contact_id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	Province   string    `json:"province"`
	Country    string    `json:"country"`
	PostalCode string    `json:"postal_code"`
}

type RemoveAddressRequest struct {
	ContactID ContactID `json:"contact_id"`
	AddressID AddressID `json:"address_id"`
}

type AddressResponse struct {
	ID         AddressID `json:"id"`
	Street     string    `json:"street,omitempty"`
	City       string    `json:"city,omitempty"`
	Province   string    `json:"province,omitempty"`
	Country    string    `json:"country"`
	PostalCode string    `json:"postal_code"`
}

func (a *Address) Response() *AddressResponse {
	return &AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

func validateAddressFields(street, city, province, country, postalCode string) error {
	if err := optionalString("street", street, 255); err != nil {
		return err
	}
	if err := optionalString("city", city, 255); err != nil {
		return err
	}
	if err := optionalString("province", province, 255); err != nil {
		return err
	}
	if err := requireString("country", country, 100); err != nil {
		return err
	}
	return requireString("postal_code", postalCode, 10)
}

func (r *CreateAddressRequest) Validate() error {
	if err := requireID("contact_id", int64(r.ContactID)); err != nil {
		return err
	}
	return validateAddressFields(r.Street, r.City, r.Province, r.Country, r.PostalCode)
}

func (r *GetAddressRequest) Validate() error {
	if err := requireID("contact_id", int64(r.ContactID)); err != nil {
		return err
	}
	return requireID("address_id", int64(r.AddressID))
}

func (r *UpdateAddressRequest) Validate() error {
	if err := requireID("id", int64(r.ID)); err != nil {
		return err
	}
	if err := requireID("contact_id", int64(r.ContactID)); err != nil {
		return err
	}
	return validateAddressFields(r.Street, r.City, r.Province, r.Country, r.PostalCode)
}

func (r *RemoveAddressRequest) Validate() error {
	if err := requireID("contact_id", int64(r.ContactID)); err != nil {
		return err
	}
	return requireID("address_id", int64(r.AddressID))
}
