package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/golden-burgers/internal/application/dto"
	"github.com/jhoicas/golden-burgers/internal/domain"
	"github.com/jhoicas/golden-burgers/pkg/dispatch"
	"github.com/jhoicas/golden-burgers/pkg/logger"
	"github.com/jhoicas/golden-burgers/pkg/observable"
)

// RegisterState estado del registro en cinco pasos.
type RegisterState struct {
	Email           string
	Password        string
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

	EmailError       string
	PasswordError    string
	FullNameError    string
	PhoneNumberError string
	GenderError      string
	BirthDateError   string
	StreetError      string
	NumberError      string
	CityError        string
	RegionError      string
	CommuneError     string

	// IsFetchingLocation lo controla el proveedor de geolocalización externo.
	IsFetchingLocation bool
	Form               FormStatus
}

// Address dirección que entrega el proveedor de geolocalización.
type Address struct {
	Street  string
	Number  string
	City    string
	Region  string
	Commune string
}

// RegisterUseCase valida el formulario campo a campo y crea el usuario.
type RegisterUseCase struct {
	users    UserStore
	verifier PasswordVerifier
	exec     dispatch.Executor
	log      *logger.Logger
	state    *observable.Subject[RegisterState]
	form     form[RegisterState]
}

func NewRegisterUseCase(users UserStore, verifier PasswordVerifier, exec dispatch.Executor, log *logger.Logger) *RegisterUseCase {
	state := observable.NewWithValue(RegisterState{})
	return &RegisterUseCase{
		users:    users,
		verifier: verifier,
		exec:     exec,
		log:      log.Component("register"),
		state:    state,
		form:     form[RegisterState]{state: state, status: func(s *RegisterState) *FormStatus { return &s.Form }},
	}
}

func (uc *RegisterUseCase) State() RegisterState {
	s, _ := uc.state.Value()
	return s
}

func (uc *RegisterUseCase) Watch(ctx context.Context) *observable.Subscription[RegisterState] {
	return uc.state.Subscribe(ctx)
}

func (uc *RegisterUseCase) SetEmail(v string) {
	v = normalize(v)
	uc.form.edit(func(s *RegisterState) { s.Email, s.EmailError = v, emailRule.check(v) })
}

func (uc *RegisterUseCase) SetPassword(v string) {
	uc.form.edit(func(s *RegisterState) { s.Password, s.PasswordError = v, passwordRule.check(v) })
}

func (uc *RegisterUseCase) SetFullName(v string) {
	v = normalize(v)
	uc.form.edit(func(s *RegisterState) { s.FullName, s.FullNameError = v, fullNameRule.check(v) })
}

func (uc *RegisterUseCase) SetPhoneNumber(v string) {
	uc.form.edit(func(s *RegisterState) { s.PhoneNumber, s.PhoneNumberError = v, phoneRule.check(v) })
}

func (uc *RegisterUseCase) SetGender(v string) {
	v = normalize(v)
	uc.form.edit(func(s *RegisterState) { s.Gender, s.GenderError = v, genderRule.check(v) })
}

// SetBirthDate solo revisa el formato AAAA-MM-DD; el selector de fecha garantiza que sea real.
func (uc *RegisterUseCase) SetBirthDate(v string) {
	uc.form.edit(func(s *RegisterState) { s.BirthDate, s.BirthDateError = v, birthDateRule.check(v) })
}

func (uc *RegisterUseCase) SetStreet(v string) {
	v = normalize(v)
	uc.form.edit(func(s *RegisterState) { s.Street, s.StreetError = v, streetRule.check(v) })
}

func (uc *RegisterUseCase) SetNumber(v string) {
	uc.form.edit(func(s *RegisterState) { s.Number, s.NumberError = v, numberRule.check(v) })
}

func (uc *RegisterUseCase) SetCity(v string) {
	v = normalize(v)
	uc.form.edit(func(s *RegisterState) { s.City, s.CityError = v, cityRule.check(v) })
}

func (uc *RegisterUseCase) SetRegion(v string) {
	v = normalize(v)
	uc.form.edit(func(s *RegisterState) { s.Region, s.RegionError = v, regionRule.check(v) })
}

func (uc *RegisterUseCase) SetCommune(v string) {
	v = normalize(v)
	uc.form.edit(func(s *RegisterState) { s.Commune, s.CommuneError = v, communeRule.check(v) })
}

// SetProfileImage guarda la referencia opaca que entrega la cámara o la galería; nil la quita.
func (uc *RegisterUseCase) SetProfileImage(uri *string) {
	uc.form.edit(func(s *RegisterState) { s.ProfileImageURI = uri })
}

// SetFetchingLocation lo llama el proveedor de geolocalización al empezar y terminar.
func (uc *RegisterUseCase) SetFetchingLocation(fetching bool) {
	uc.state.Update(func(s RegisterState) RegisterState {
		s.IsFetchingLocation = fetching
		return s
	})
}

// ApplyAddress rellena los campos de dirección como si el usuario los hubiera escrito.
func (uc *RegisterUseCase) ApplyAddress(a Address) {
	uc.SetStreet(a.Street)
	uc.SetNumber(a.Number)
	uc.SetCity(a.City)
	uc.SetRegion(a.Region)
	uc.SetCommune(a.Commune)
}

func (s RegisterState) request() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:           s.Email,
		Password:        s.Password,
		FullName:        s.FullName,
		PhoneNumber:     s.PhoneNumber,
		Gender:          s.Gender,
		BirthDate:       s.BirthDate,
		Street:          s.Street,
		Number:          s.Number,
		City:            s.City,
		Region:          s.Region,
		Commune:         s.Commune,
		ProfileImageURI: s.ProfileImageURI,
	}
}

func (s RegisterState) valid() bool {
	return allEmpty(
		s.EmailError, s.PasswordError, s.FullNameError, s.PhoneNumberError, s.GenderError,
		s.BirthDateError, s.StreetError, s.NumberError, s.CityError, s.RegionError, s.CommuneError,
	) && dto.Validator().Struct(s.request()) == nil
}

// Register crea el usuario en segundo plano. Un correo ya registrado llega a onError como
// domain.ErrEmailAlreadyExists; un formulario incompleto como domain.ErrInvalidForm.
func (uc *RegisterUseCase) Register(onSuccess func(), onError func(error)) {
	if !uc.State().valid() {
		uc.form.reject(domain.ErrInvalidForm)
		notify(domain.ErrInvalidForm, onSuccess, onError)
		return
	}
	snapshot, ok := uc.form.begin()
	if !ok {
		notify(domain.ErrSubmitInProgress, onSuccess, onError)
		return
	}

	op := newOpID()
	uc.exec.Submit(func(ctx context.Context) {
		err := uc.register(ctx, snapshot.request())
		log := uc.log.With().Str("op", op).Str("email", snapshot.Email).Logger()
		if err != nil {
			log.Warn().Err(err).Msg("registro rechazado")
		} else {
			log.Info().Msg("usuario registrado")
		}
		uc.form.finish(err, nil)
		notify(err, onSuccess, onError)
	})
}

func (uc *RegisterUseCase) register(ctx context.Context, req dto.RegisterRequest) error {
	stored, err := uc.verifier.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if err := uc.users.RegisterUser(ctx, req.ToUser(stored)); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}
