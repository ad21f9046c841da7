package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/golden-burgers/internal/domain/entity"
)

func validRegister() RegisterRequest {
	return RegisterRequest{
		Email: "a@b.com", Password: "secret1", FullName: "Ana Pérez", PhoneNumber: "912345678",
		Gender: "Femenino", BirthDate: "1990-05-17", Street: "Calle", Number: "742",
		City: "Santiago", Region: "Metropolitana", Commune: "Ñuñoa",
	}
}

func failedTags(t *testing.T, err error) map[string]string {
	t.Helper()
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	out := map[string]string{}
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

func TestRegisterRequest_Valido(t *testing.T) {
	assert.NoError(t, Validator().Struct(validRegister()))
}

func TestRegisterRequest_Reglas(t *testing.T) {
	r := validRegister()
	r.Email = "no-es-correo"
	r.Password = "123"
	r.FullName = "Ana"
	r.PhoneNumber = "12345678a"
	r.Gender = "   "
	r.BirthDate = "17/05/1990"
	r.Number = "74B"

	tags := failedTags(t, Validator().Struct(r))
	assert.Equal(t, map[string]string{
		"Email":       "email",
		"Password":    "min",
		"FullName":    "min",
		"PhoneNumber": "digits",
		"Gender":      "notblank",
		"BirthDate":   "birthdate",
		"Number":      "digits",
	}, tags)
}

func TestRegisterRequest_ToUser(t *testing.T) {
	u := validRegister().ToUser("hash")
	assert.Zero(t, u.ID)
	assert.Equal(t, "hash", u.Password)
	assert.Equal(t, "Ñuñoa", u.Commune)
}

func TestCatalogFile_Validacion(t *testing.T) {
	ok := CatalogFile{Products: []CatalogItem{{ID: 1, Nombre: "Sprite", Precio: "1500", ImagenReferencia: "sprite", Categoria: entity.CategoryBebida}}}
	require.NoError(t, Validator().Struct(ok))

	p, err := ok.Products[0].ToProduct()
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1500).Equal(p.Precio))

	bad := CatalogFile{Products: []CatalogItem{{ID: 0, Nombre: "", Precio: "-1", ImagenReferencia: "x", Categoria: "Postre"}}}
	tags := failedTags(t, Validator().Struct(bad))
	assert.Equal(t, "required", tags["ID"])
	assert.Equal(t, "notblank", tags["Nombre"])
	assert.Equal(t, "price", tags["Precio"])
	assert.Equal(t, "oneof", tags["Categoria"])

	assert.Error(t, Validator().Struct(CatalogFile{}))
}

func TestToProductResponse(t *testing.T) {
	r := ToProductResponse(entity.Product{ID: 2, Nombre: "Champiñón", Precio: decimal.NewFromInt(8790), EsFavorito: true})
	assert.Equal(t, "$8.790", r.Precio)
	assert.True(t, r.Favorito)
}

func TestNewValidator_RegistraReglasPropias(t *testing.T) {
	v, err := newValidator()
	require.NoError(t, err)
	for tag := range customRules {
		assert.NotPanics(t, func() { _ = v.Var("x", tag) }, "regla %s sin registrar", tag)
	}
}

func TestRegisterRules_PropagaError(t *testing.T) {
	v := validator.New()
	err := registerRules(v, map[string]validator.Func{"": customRules["notblank"]})
	assert.Error(t, err)

	err = registerRules(v, map[string]validator.Func{"sinfuncion": nil})
	assert.Error(t, err)
}
