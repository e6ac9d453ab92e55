package model

type User struct {
	Username string  `db:"username"`
	Name     string  `db:"name"`
	Password string  `db:"password"`
	Token    *string `db:"token"`
}

type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest is a partial update; empty fields are left untouched.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

func (r *RegisterUserRequest) Validate() error {
	if err := requireString("username", r.Username, 100); err != nil {
		return err
	}
	if err := requireString("password", r.Password, 100); err != nil {
		return err
	}
	return requireString("name", r.Name, 100)
}

func (r *LoginUserRequest) Validate() error {
	if err := requireString("username", r.Username, 100); err != nil {
		return err
	}
	return requireString("password", r.Password, 100)
}

func (r *UpdateUserRequest) Validate() error {
	if err := optionalString("name", r.Name, 100); err != nil {
		return err
	}
	return optionalString("password", r.Password, 100)
}
