package dto

import "github.com/jhoicas/golden-burgers/internal/domain/entity"

// LoginRequest credenciales del formulario de ingreso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest datos completos del registro en cinco pasos.
type RegisterRequest struct {
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=6"`
	FullName        string  `json:"full_name" validate:"notblank,min=5"`
	PhoneNumber     string  `json:"phone_number" validate:"notblank,len=9,digits"`
	Gender          string  `json:"gender" validate:"notblank"`
	BirthDate       string  `json:"birth_date" validate:"required,birthdate"`
	Street          string  `json:"street" validate:"notblank"`
	Number          string  `json:"number" validate:"notblank,digits"`
	City            string  `json:"city" validate:"notblank"`
	Region          string  `json:"region" validate:"notblank"`
	Commune         string  `json:"commune" validate:"notblank"`
	ProfileImageURI *string `json:"profile_image_uri,omitempty"`
}

// ToUser construye el usuario a persistir; el ID lo asigna el almacenamiento.
func (r RegisterRequest) ToUser(storedPassword string) *entity.User {
	return &entity.User{
		Email:           r.Email,
		Password:        storedPassword,
		FullName:        r.FullName,
		PhoneNumber:     r.PhoneNumber,
		Gender:          r.Gender,
		BirthDate:       r.BirthDate,
		Street:          r.Street,
		Number:          r.Number,
		City:            r.City,
		Region:          r.Region,
		Commune:         r.Commune,
		ProfileImageURI: r.ProfileImageURI,
	}
}

// UpdateProfileRequest campos editables del perfil.
type UpdateProfileRequest struct {
	FullName        string  `json:"full_name" validate:"notblank,min=5"`
	PhoneNumber     string  `json:"phone_number" validate:"notblank,len=9,digits"`
	Street          string  `json:"street" validate:"notblank"`
	Number          string  `json:"number" validate:"notblank,digits"`
	City            string  `json:"city" validate:"notblank"`
	Region          string  `json:"region" validate:"notblank"`
	Commune         string  `json:"commune" validate:"notblank"`
	ProfileImageURI *string `json:"profile_image_uri,omitempty"`
}

// ToProfile convierte la petición a la vista editable del usuario.
func (r UpdateProfileRequest) ToProfile() entity.Profile {
	return entity.Profile{
		FullName:        r.FullName,
		PhoneNumber:     r.PhoneNumber,
		Street:          r.Street,
		Number:          r.Number,
		City:            r.City,
		Region:          r.Region,
		Commune:         r.Commune,
		ProfileImageURI: r.ProfileImageURI,
	}
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID              int64   `json:"id" yaml:"id"`
	Email           string  `json:"email" yaml:"email"`
	FullName        string  `json:"full_name" yaml:"full_name"`
	PhoneNumber     string  `json:"phone_number" yaml:"phone_number"`
	City            string  `json:"city" yaml:"city"`
	Commune         string  `json:"commune" yaml:"commune"`
	ProfileImageURI *string `json:"profile_image_uri,omitempty" yaml:"profile_image_uri,omitempty"`
}

// ToUserResponse proyecta el usuario sin exponer la contraseña.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		FullName:        u.FullName,
		PhoneNumber:     u.PhoneNumber,
		City:            u.City,
		Commune:         u.Commune,
		ProfileImageURI: u.ProfileImageURI,
	}
}
