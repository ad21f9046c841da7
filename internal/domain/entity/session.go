package entity

// SessionKind distingue los tres estados de la sesión persistida.
type SessionKind int

const (
	// SessionUnknown: el almacén de sesión aún no se ha leído.
	SessionUnknown SessionKind = iota
	// SessionLoggedOut: leído y sin usuario.
	SessionLoggedOut
	// SessionLoggedIn: leído y con el email del usuario.
	SessionLoggedIn
)

func (k SessionKind) String() string {
	switch k {
	case SessionUnknown:
		return "unknown"
	case SessionLoggedOut:
		return "logged_out"
	case SessionLoggedIn:
		return "logged_in"
	}
	return "invalid"
}

// SessionState es el valor observable del almacén de sesión.
type SessionState struct {
	kind  SessionKind
	email string
}

// UnknownSession estado antes de la primera lectura.
func UnknownSession() SessionState {
	return SessionState{kind: SessionUnknown}
}

// LoggedOutSession estado sin usuario.
func LoggedOutSession() SessionState {
	return SessionState{kind: SessionLoggedOut}
}

// LoggedInSession estado con el email del usuario. Un email vacío equivale a sin sesión.
func LoggedInSession(email string) SessionState {
	if email == "" {
		return LoggedOutSession()
	}
	return SessionState{kind: SessionLoggedIn, email: email}
}

// Kind devuelve la variante.
func (s SessionState) Kind() SessionKind {
	return s.kind
}

// Email devuelve el email y true solo en SessionLoggedIn.
func (s SessionState) Email() (string, bool) {
	return s.email, s.kind == SessionLoggedIn
}

// Loaded indica si el almacén ya fue leído.
func (s SessionState) Loaded() bool {
	return s.kind != SessionUnknown
}
