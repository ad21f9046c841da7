package auth

import (
	"github.com/google/uuid"

	"github.com/jhoicas/golden-burgers/pkg/observable"
)

// Phase es la etapa del formulario.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEditing
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// FormStatus etapa del formulario y motivo del último fallo.
type FormStatus struct {
	Phase Phase
	Err   error
}

// editing marca una edición de campo. Durante un envío la etapa no cambia.
func (f FormStatus) editing() FormStatus {
	if f.Phase == PhaseSubmitting {
		return f
	}
	return FormStatus{Phase: PhaseEditing}
}

// form acompaña al Subject de estado de cada caso de uso con las transiciones comunes.
type form[S any] struct {
	state  *observable.Subject[S]
	status func(*S) *FormStatus
}

// edit aplica fn y pasa a Editing.
func (f form[S]) edit(fn func(*S)) {
	f.state.Update(func(s S) S {
		fn(&s)
		st := f.status(&s)
		*st = st.editing()
		return s
	})
}

// begin pasa a Submitting y devuelve la instantánea enviada. ok=false si ya había un envío en curso.
func (f form[S]) begin() (snapshot S, ok bool) {
	f.state.Update(func(s S) S {
		st := f.status(&s)
		if st.Phase == PhaseSubmitting {
			snapshot = s
			return s
		}
		*st = FormStatus{Phase: PhaseSubmitting}
		snapshot, ok = s, true
		return s
	})
	return snapshot, ok
}

// finish cierra el envío como Succeeded (err nil) o Failed; apply permite actualizar el estado a la vez.
func (f form[S]) finish(err error, apply func(*S)) {
	f.state.Update(func(s S) S {
		if apply != nil {
			apply(&s)
		}
		st := f.status(&s)
		if err != nil {
			*st = FormStatus{Phase: PhaseFailed, Err: err}
		} else {
			*st = FormStatus{Phase: PhaseSucceeded}
		}
		return s
	})
}

// reject registra un rechazo sin haber iniciado envío.
func (f form[S]) reject(err error) {
	f.state.Update(func(s S) S {
		st := f.status(&s)
		if st.Phase != PhaseSubmitting {
			*st = FormStatus{Phase: PhaseFailed, Err: err}
		}
		return s
	})
}

func newOpID() string {
	return uuid.NewString()
}

// notify invoca el callback que corresponda; cualquiera de los dos puede ser nil.
func notify(err error, onSuccess func(), onError func(error)) {
	if err != nil {
		if onError != nil {
			onError(err)
		}
		return
	}
	if onSuccess != nil {
		onSuccess()
	}
}
