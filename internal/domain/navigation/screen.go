// Package navigation enumera las pantallas de la app y sus rutas.
// La UI resuelve cada ruta; el núcleo solo decide a cuál ir.
package navigation

// Screen identifica una pantalla o flujo.
type Screen int

const (
	ScreenWelcome Screen = iota + 1
	ScreenLogin
	ScreenRegisterStep1
	ScreenRegisterStep2
	ScreenRegisterStep3
	ScreenRegisterStep4
	ScreenRegisterStep5
	ScreenEditProfile
	ScreenHome
	ScreenFavorites
	ScreenCart
	ScreenProfile
	ScreenMainFlow // contenedor con la barra de navegación inferior
)

// Route devuelve la ruta asociada. Un valor fuera de la enumeración devuelve "".
func (s Screen) Route() string {
	switch s {
	case ScreenWelcome:
		return "welcome_screen"
	case ScreenLogin:
		return "login_screen"
	case ScreenRegisterStep1:
		return "register_step1_screen"
	case ScreenRegisterStep2:
		return "register_step2_screen"
	case ScreenRegisterStep3:
		return "register_step3_screen"
	case ScreenRegisterStep4:
		return "register_step4_screen"
	case ScreenRegisterStep5:
		return "register_step5_screen"
	case ScreenEditProfile:
		return "edit_profile_screen"
	case ScreenHome:
		return "home_screen"
	case ScreenFavorites:
		return "favorites_screen"
	case ScreenCart:
		return "cart_screen"
	case ScreenProfile:
		return "profile_screen"
	case ScreenMainFlow:
		return "main_flow"
	}
	return ""
}

func (s Screen) String() string {
	return s.Route()
}

// Screens devuelve todas las pantallas en orden de declaración.
func Screens() []Screen {
	out := make([]Screen, 0, int(ScreenMainFlow))
	for s := ScreenWelcome; s <= ScreenMainFlow; s++ {
		out = append(out, s)
	}
	return out
}

// ParseRoute busca la pantalla de una ruta.
func ParseRoute(route string) (Screen, bool) {
	for _, s := range Screens() {
		if s.Route() == route {
			return s, true
		}
	}
	return 0, false
}

// BottomNavItem es una pestaña de la barra inferior del flujo principal.
type BottomNavItem struct {
	Title  string
	Screen Screen
}

// Route atajo a Screen.Route.
func (i BottomNavItem) Route() string {
	return i.Screen.Route()
}

// BottomNavItems devuelve las pestañas en orden de aparición.
func BottomNavItems() []BottomNavItem {
	return []BottomNavItem{
		{Title: "Inicio", Screen: ScreenHome},
		{Title: "Favoritos", Screen: ScreenFavorites},
		{Title: "Carrito", Screen: ScreenCart},
		{Title: "Perfil", Screen: ScreenProfile},
	}
}
