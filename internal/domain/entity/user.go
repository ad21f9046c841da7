package entity

// BirthDateLayout es la forma canónica de BirthDate (YYYY-MM-DD).
const BirthDateLayout = "2006-01-02"

// User representa un usuario registrado (tabla users).
// Email es único y no cambia después del registro; ID lo asigna el almacenamiento.
type User struct {
	ID              int64
	Email           string
	Password        string // texto plano o hash, según el verificador configurado
	FullName        string
	PhoneNumber     string
	Gender          string
	BirthDate       string
	Street          string
	Number          string
	City            string
	Region          string
	Commune         string
	ProfileImageURI *string
}

// WithProfile devuelve una copia de u con los campos editables reemplazados por los de p.
// ID, Email y Password se conservan.
func (u User) WithProfile(p Profile) User {
	u.FullName = p.FullName
	u.PhoneNumber = p.PhoneNumber
	u.Street = p.Street
	u.Number = p.Number
	u.City = p.City
	u.Region = p.Region
	u.Commune = p.Commune
	u.ProfileImageURI = p.ProfileImageURI
	return u
}

// Profile son los campos de User que el usuario puede editar desde su perfil.
type Profile struct {
	FullName        string
	PhoneNumber     string
	Street          string
	Number          string
	City            string
	Region          string
	Commune         string
	ProfileImageURI *string
}

// Profile extrae los campos editables.
func (u User) Profile() Profile {
	return Profile{
		FullName:        u.FullName,
		PhoneNumber:     u.PhoneNumber,
		Street:          u.Street,
		Number:          u.Number,
		City:            u.City,
		Region:          u.Region,
		Commune:         u.Commune,
		ProfileImageURI: u.ProfileImageURI,
	}
}
