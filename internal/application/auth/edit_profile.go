package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/golden-burgers/internal/application/dto"
	"github.com/jhoicas/golden-burgers/internal/domain"
	"github.com/jhoicas/golden-burgers/internal/domain/entity"
	"github.com/jhoicas/golden-burgers/pkg/dispatch"
	"github.com/jhoicas/golden-burgers/pkg/logger"
	"github.com/jhoicas/golden-burgers/pkg/observable"
)

// EditProfileState usuario cargado y copia editable de sus campos.
type EditProfileState struct {
	User *entity.User

	FullName        string
	PhoneNumber     string
	Street          string
	Number          string
	City            string
	Region          string
	Commune         string
	ProfileImageURI *string

	FullNameError    string
	PhoneNumberError string
	StreetError      string
	NumberError      string
	CityError        string
	RegionError      string
	CommuneError     string

	IsLoading bool
	LoadErr   error
	Form      FormStatus
}

// EditProfileUseCase carga el usuario de la sesión y guarda sus cambios. Email e ID no se editan.
type EditProfileUseCase struct {
	users   UserStore
	session SessionReader
	exec    dispatch.Executor
	log     *logger.Logger
	state   *observable.Subject[EditProfileState]
	form    form[EditProfileState]
}

func NewEditProfileUseCase(users UserStore, session SessionReader, exec dispatch.Executor, log *logger.Logger) *EditProfileUseCase {
	state := observable.NewWithValue(EditProfileState{IsLoading: true})
	return &EditProfileUseCase{
		users:   users,
		session: session,
		exec:    exec,
		log:     log.Component("edit_profile"),
		state:   state,
		form:    form[EditProfileState]{state: state, status: func(s *EditProfileState) *FormStatus { return &s.Form }},
	}
}

func (uc *EditProfileUseCase) State() EditProfileState {
	s, _ := uc.state.Value()
	return s
}

func (uc *EditProfileUseCase) Watch(ctx context.Context) *observable.Subscription[EditProfileState] {
	return uc.state.Subscribe(ctx)
}

// LoadCurrentUser (re)carga el usuario de la sesión. IsLoading vuelve a false en todos los casos,
// incluso sin sesión o sin usuario.
func (uc *EditProfileUseCase) LoadCurrentUser() {
	uc.state.Update(func(s EditProfileState) EditProfileState {
		s.IsLoading = true
		s.LoadErr = nil
		return s
	})
	uc.exec.Submit(func(ctx context.Context) {
		user, err := uc.currentUser(ctx)
		if err != nil {
			uc.log.Error().Err(err).Msg("no se pudo cargar el perfil")
		}
		uc.state.Update(func(s EditProfileState) EditProfileState {
			s.IsLoading = false
			s.LoadErr = err
			if user != nil {
				s = fillFrom(s, user)
			}
			return s
		})
	})
}

func (uc *EditProfileUseCase) currentUser(ctx context.Context) (*entity.User, error) {
	st, err := uc.session.Current(ctx)
	if err != nil {
		return nil, err
	}
	email, ok := st.Email()
	if !ok {
		return nil, nil
	}
	return uc.users.FindUserByEmail(ctx, email)
}

func fillFrom(s EditProfileState, u *entity.User) EditProfileState {
	p := u.Profile()
	s.User = u
	s.FullName = p.FullName
	s.PhoneNumber = p.PhoneNumber
	s.Street = p.Street
	s.Number = p.Number
	s.City = p.City
	s.Region = p.Region
	s.Commune = p.Commune
	s.ProfileImageURI = p.ProfileImageURI
	s.FullNameError, s.PhoneNumberError, s.StreetError, s.NumberError = "", "", "", ""
	s.CityError, s.RegionError, s.CommuneError = "", "", ""
	return s
}

func (uc *EditProfileUseCase) SetFullName(v string) {
	v = normalize(v)
	uc.form.edit(func(s *EditProfileState) { s.FullName, s.FullNameError = v, fullNameRule.check(v) })
}

func (uc *EditProfileUseCase) SetPhoneNumber(v string) {
	uc.form.edit(func(s *EditProfileState) { s.PhoneNumber, s.PhoneNumberError = v, phoneRule.check(v) })
}

func (uc *EditProfileUseCase) SetStreet(v string) {
	v = normalize(v)
	uc.form.edit(func(s *EditProfileState) { s.Street, s.StreetError = v, streetRule.check(v) })
}

func (uc *EditProfileUseCase) SetNumber(v string) {
	uc.form.edit(func(s *EditProfileState) { s.Number, s.NumberError = v, numberRule.check(v) })
}

func (uc *EditProfileUseCase) SetCity(v string) {
	v = normalize(v)
	uc.form.edit(func(s *EditProfileState) { s.City, s.CityError = v, cityRule.check(v) })
}

func (uc *EditProfileUseCase) SetRegion(v string) {
	v = normalize(v)
	uc.form.edit(func(s *EditProfileState) { s.Region, s.RegionError = v, regionRule.check(v) })
}

func (uc *EditProfileUseCase) SetCommune(v string) {
	v = normalize(v)
	uc.form.edit(func(s *EditProfileState) { s.Commune, s.CommuneError = v, communeRule.check(v) })
}

func (uc *EditProfileUseCase) SetProfileImage(uri *string) {
	uc.form.edit(func(s *EditProfileState) { s.ProfileImageURI = uri })
}

func (s EditProfileState) request() dto.UpdateProfileRequest {
	return dto.UpdateProfileRequest{
		FullName:        s.FullName,
		PhoneNumber:     s.PhoneNumber,
		Street:          s.Street,
		Number:          s.Number,
		City:            s.City,
		Region:          s.Region,
		Commune:         s.Commune,
		ProfileImageURI: s.ProfileImageURI,
	}
}

// SaveChanges sobrescribe los campos editables del usuario cargado. Sin usuario cargado falla con
// domain.ErrNoLoadedUser; con campos inválidos con domain.ErrInvalidForm.
func (uc *EditProfileUseCase) SaveChanges(onSuccess func(), onError func(error)) {
	current := uc.State()
	if current.User == nil {
		uc.form.reject(domain.ErrNoLoadedUser)
		notify(domain.ErrNoLoadedUser, onSuccess, onError)
		return
	}
	valid := allEmpty(current.FullNameError, current.PhoneNumberError, current.StreetError, current.NumberError,
		current.CityError, current.RegionError, current.CommuneError) && dto.Validator().Struct(current.request()) == nil
	if !valid {
		uc.form.reject(domain.ErrInvalidForm)
		notify(domain.ErrInvalidForm, onSuccess, onError)
		return
	}
	snapshot, ok := uc.form.begin()
	if !ok {
		notify(domain.ErrSubmitInProgress, onSuccess, onError)
		return
	}

	updated := snapshot.User.WithProfile(snapshot.request().ToProfile())
	op := newOpID()
	uc.exec.Submit(func(ctx context.Context) {
		err := uc.users.UpdateUser(ctx, &updated)
		if err != nil {
			err = fmt.Errorf("save profile: %w", err)
			uc.log.Error().Err(err).Str("op", op).Int64("user_id", updated.ID).Msg("no se pudo guardar el perfil")
		} else {
			uc.log.Info().Str("op", op).Int64("user_id", updated.ID).Msg("perfil actualizado")
		}
		uc.form.finish(err, func(s *EditProfileState) {
			if err == nil {
				s.User = &updated
			}
		})
		notify(err, onSuccess, onError)
	})
}
