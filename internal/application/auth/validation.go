package auth

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/golden-burgers/internal/application/dto"
)

// rule es la validación de un campo y el mensaje por regla que falla.
type rule struct {
	tag      string
	messages map[string]string
}

// check devuelve "" si value cumple la regla, o el mensaje de la primera regla que falla.
func (r rule) check(value string) string {
	err := dto.Validator().Var(value, r.tag)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := r.messages[verrs[0].Tag()]; ok {
			return msg
		}
	}
	return "Valor inválido"
}

var (
	loginEmailRule    = rule{"omitempty,email", map[string]string{"email": "Formato de correo inválido"}}
	loginPasswordRule = rule{"min=6", map[string]string{"min": "La contraseña debe tener al menos 6 caracteres"}}

	emailRule     = rule{"omitempty,email", map[string]string{"email": "Correo inválido"}}
	passwordRule  = rule{"min=6", map[string]string{"min": "Mínimo 6 caracteres"}}
	genderRule    = rule{"notblank", map[string]string{"notblank": "El género es obligatorio"}}
	birthDateRule = rule{"birthdate", map[string]string{"birthdate": "El formato debe ser AAAA-MM-DD"}}
	streetRule    = rule{"notblank", map[string]string{"notblank": "La calle es obligatoria"}}
	communeRule   = rule{"notblank", map[string]string{"notblank": "La comuna es obligatoria"}}
	cityRule      = rule{"notblank", map[string]string{"notblank": "La ciudad es obligatoria"}}
	regionRule    = rule{"notblank", map[string]string{"notblank": "La región es obligatoria"}}

	fullNameRule = rule{"notblank,min=5", map[string]string{
		"notblank": "El nombre no puede estar vacío",
		"min":      "El nombre es demasiado corto",
	}}

	phoneRule = rule{"notblank,len=9,digits", map[string]string{
		"notblank": "El teléfono es obligatorio",
		"len":      "Debe ser un número de 9 dígitos",
		"digits":   "Debe ser un número de 9 dígitos",
	}}

	numberRule = rule{"notblank,digits", map[string]string{
		"notblank": "El número es obligatorio",
		"digits":   "Solo números",
	}}
)

// normalize deja el texto en NFC para que el mismo nombre escrito desde teclados distintos se guarde igual.
func normalize(s string) string {
	return norm.NFC.String(s)
}

func allEmpty(errs ...string) bool {
	for _, e := range errs {
		if e != "" {
			return false
		}
	}
	return true
}
