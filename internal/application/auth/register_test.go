package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/golden-burgers/internal/domain"
	"github.com/jhoicas/golden-burgers/internal/domain/entity"
	"github.com/jhoicas/golden-burgers/pkg/dispatch"
	"github.com/jhoicas/golden-burgers/pkg/logger"
)

func filledRegister(users UserStore, email string) *RegisterUseCase {
	uc := NewRegisterUseCase(users, prefixVerifier{}, dispatch.Inline{}, logger.Nop())
	uc.SetEmail(email)
	uc.SetPassword("secret1")
	uc.SetFullName("Ana Pérez")
	uc.SetPhoneNumber("912345678")
	uc.SetGender("Femenino")
	uc.SetBirthDate("1990-04-12")
	uc.ApplyAddress(Address{Street: "Av. Pajaritos", Number: "123", City: "Santiago", Region: "RM", Commune: "Maipú"})
	return uc
}

func TestRegister_MensajesPorCampo(t *testing.T) {
	uc := NewRegisterUseCase(newFakeUsers(), prefixVerifier{}, dispatch.Inline{}, logger.Nop())

	cases := []struct {
		name string
		set  func(string)
		in   string
		get  func(RegisterState) string
		want string
	}{
		{"correo", uc.SetEmail, "sin-arroba", func(s RegisterState) string { return s.EmailError }, "Correo inválido"},
		{"contraseña", uc.SetPassword, "12345", func(s RegisterState) string { return s.PasswordError }, "Mínimo 6 caracteres"},
		{"nombre vacío", uc.SetFullName, "   ", func(s RegisterState) string { return s.FullNameError }, "El nombre no puede estar vacío"},
		{"nombre corto", uc.SetFullName, "Ana", func(s RegisterState) string { return s.FullNameError }, "El nombre es demasiado corto"},
		{"teléfono vacío", uc.SetPhoneNumber, "", func(s RegisterState) string { return s.PhoneNumberError }, "El teléfono es obligatorio"},
		{"teléfono largo", uc.SetPhoneNumber, "9123456789", func(s RegisterState) string { return s.PhoneNumberError }, "Debe ser un número de 9 dígitos"},
		{"teléfono con letras", uc.SetPhoneNumber, "91234567a", func(s RegisterState) string { return s.PhoneNumberError }, "Debe ser un número de 9 dígitos"},
		{"género", uc.SetGender, "", func(s RegisterState) string { return s.GenderError }, "El género es obligatorio"},
		{"fecha", uc.SetBirthDate, "12/04/1990", func(s RegisterState) string { return s.BirthDateError }, "El formato debe ser AAAA-MM-DD"},
		{"calle", uc.SetStreet, "", func(s RegisterState) string { return s.StreetError }, "La calle es obligatoria"},
		{"número con letras", uc.SetNumber, "12B", func(s RegisterState) string { return s.NumberError }, "Solo números"},
		{"comuna", uc.SetCommune, " ", func(s RegisterState) string { return s.CommuneError }, "La comuna es obligatoria"},
		{"ciudad", uc.SetCity, "", func(s RegisterState) string { return s.CityError }, "La ciudad es obligatoria"},
		{"región", uc.SetRegion, "", func(s RegisterState) string { return s.RegionError }, "La región es obligatoria"},
		{"correo válido", uc.SetEmail, "ana@mail.cl", func(s RegisterState) string { return s.EmailError }, ""},
		{"teléfono válido", uc.SetPhoneNumber, "912345678", func(s RegisterState) string { return s.PhoneNumberError }, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.set(tc.in)
			assert.Equal(t, tc.want, tc.get(uc.State()))
		})
	}
}

func TestRegister_CreaUsuarioConContraseñaProcesada(t *testing.T) {
	users := newFakeUsers()
	uc := filledRegister(users, "ana@mail.cl")

	var r result
	uc.Register(r.callbacks())
	require.True(t, r.ok, "err: %v", r.err)
	assert.Equal(t, PhaseSucceeded, uc.State().Form.Phase)

	saved, ok := users.get("ana@mail.cl")
	require.True(t, ok)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "hash:secret1", saved.Password)
	assert.Equal(t, "Maipú", saved.Commune)
	assert.Equal(t, "1990-04-12", saved.BirthDate)
}

func TestRegister_CorreoDuplicadoSeDistingue(t *testing.T) {
	users := newFakeUsers(entity.User{Email: "ana@mail.cl", Password: "hash:otra123", FullName: "Original"})
	uc := filledRegister(users, "ana@mail.cl")

	var r result
	uc.Register(r.callbacks())
	require.Error(t, r.err)
	assert.ErrorIs(t, r.err, domain.ErrEmailAlreadyExists)
	assert.Equal(t, "El correo ya está registrado.", domain.Message(r.err))
	assert.Equal(t, PhaseFailed, uc.State().Form.Phase)

	saved, _ := users.get("ana@mail.cl")
	assert.Equal(t, "Original", saved.FullName, "el registro existente no cambia")
}

func TestRegister_FormularioIncompleto(t *testing.T) {
	users := newFakeUsers()
	uc := NewRegisterUseCase(users, prefixVerifier{}, dispatch.Inline{}, logger.Nop())
	uc.SetEmail("ana@mail.cl")
	uc.SetPassword("secret1")

	var r result
	uc.Register(r.callbacks())
	assert.ErrorIs(t, r.err, domain.ErrInvalidForm)
	assert.Equal(t, 0, users.callCount())
	assert.Equal(t, PhaseFailed, uc.State().Form.Phase)
}

func TestRegister_CampoConErrorBloqueaEnvio(t *testing.T) {
	users := newFakeUsers()
	uc := filledRegister(users, "ana@mail.cl")
	uc.SetNumber("12B")

	var r result
	uc.Register(r.callbacks())
	assert.ErrorIs(t, r.err, domain.ErrInvalidForm)
	assert.Equal(t, 0, users.callCount())
}

func TestRegister_NormalizaTexto(t *testing.T) {
	uc := NewRegisterUseCase(newFakeUsers(), prefixVerifier{}, dispatch.Inline{}, logger.Nop())
	uc.SetCommune("Maipu\u0301")
	assert.Equal(t, "Maip\u00fa", uc.State().Commune, "la forma descompuesta se guarda compuesta")
}

func TestRegister_DireccionYUbicacion(t *testing.T) {
	uc := NewRegisterUseCase(newFakeUsers(), prefixVerifier{}, dispatch.Inline{}, logger.Nop())

	uc.SetFetchingLocation(true)
	assert.True(t, uc.State().IsFetchingLocation)

	uc.ApplyAddress(Address{Street: "Los Leones", Number: "45", City: "Santiago", Region: "RM", Commune: "Providencia"})
	uc.SetFetchingLocation(false)

	s := uc.State()
	assert.False(t, s.IsFetchingLocation)
	assert.Equal(t, "Los Leones", s.Street)
	assert.Equal(t, "Providencia", s.Commune)
	assert.Empty(t, s.StreetError)
	assert.Empty(t, s.NumberError)
}

func TestRegister_ImagenDePerfilOpcional(t *testing.T) {
	users := newFakeUsers()
	uc := filledRegister(users, "img@mail.cl")
	uri := "content://media/1"
	uc.SetProfileImage(&uri)

	var r result
	uc.Register(r.callbacks())
	require.True(t, r.ok)

	saved, _ := users.get("img@mail.cl")
	require.NotNil(t, saved.ProfileImageURI)
	assert.Equal(t, uri, *saved.ProfileImageURI)
}
