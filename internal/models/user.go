package models

// User represents a row in the users table.
type User struct {
	ID           int64  `json:"id" db:"id"`                 // Primary key
	FirstName    string `json:"first_name" db:"first_name"` // Given name
	LastName     string `json:"last_name" db:"last_name"`   // Family name
	Email        string `json:"email" db:"email"`           // Unique email
	Username     string `json:"username" db:"username"`     // Unique username
	PasswordHash string `json:"-" db:"password_hash"`       // One-way hash, never rendered
	Admin        bool   `json:"admin" db:"admin"`           // Administrator flag
	Active       bool   `json:"active" db:"active"`         // Account enabled flag
}

// UserRegistration is the body accepted when a user registers.
// swagger:model UserRegistration
type UserRegistration struct {
	// required: true
	// example: Ada
	FirstName string `json:"first_name" validate:"required,max=100"`

	// required: true
	// example: Lovelace
	LastName string `json:"last_name" validate:"required,max=100"`

	// required: true
	// example: ada@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// required: true
	// example: ada
	Username string `json:"username" validate:"required,max=100"`

	// Plain password, hashed before it reaches storage
	// required: true
	Password string `json:"password" validate:"required"`

	// default: false
	Admin *bool `json:"admin"`

	// default: true
	Active *bool `json:"active"`
}

// ToUser builds the full entity from the registration and a password hash.
func (r UserRegistration) ToUser(passwordHash string) User {
	u := User{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Username:     r.Username,
		PasswordHash: passwordHash,
		Admin:        false,
		Active:       true,
	}
	if r.Admin != nil {
		u.Admin = *r.Admin
	}
	if r.Active != nil {
		u.Active = *r.Active
	}
	return u
}

// UserUpdate carries the fields a partial user update may change.
// Password holds the plain password on input; the hash replaces it before
// the record reaches the repository.
// swagger:model UserUpdate
type UserUpdate struct {
	FirstName Optional[string] `json:"first_name" swaggertype:"string"`
	LastName  Optional[string] `json:"last_name" swaggertype:"string"`
	Email     Optional[string] `json:"email" swaggertype:"string"`
	Username  Optional[string] `json:"username" swaggertype:"string"`
	Password  Optional[string] `json:"password" swaggertype:"string"`
}

func (u UserUpdate) Validate() error {
	errs := &ValidationError{}
	notNull(errs, "first_name", u.FirstName)
	notNull(errs, "last_name", u.LastName)
	notNull(errs, "email", u.Email)
	notNull(errs, "username", u.Username)
	notNull(errs, "password", u.Password)
	checkVar(errs, "first_name", u.FirstName, "required,max=100")
	checkVar(errs, "last_name", u.LastName, "required,max=100")
	checkVar(errs, "email", u.Email, "required,email,max=255")
	checkVar(errs, "username", u.Username, "required,max=100")
	checkVar(errs, "password", u.Password, "required")
	return errs.orNil()
}

// Fields returns the update record keyed by field name.
func (u UserUpdate) Fields() map[string]Field {
	return map[string]Field{
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
		"username":   u.Username,
		"password":   u.Password,
	}
}
