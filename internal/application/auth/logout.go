package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/golden-burgers/pkg/dispatch"
	"github.com/jhoicas/golden-burgers/pkg/logger"
)

// LogoutUseCase vacía el carrito y borra la sesión persistida.
type LogoutUseCase struct {
	cart    CartClearer
	session SessionClearer
	exec    dispatch.Executor
	log     *logger.Logger
}

func NewLogoutUseCase(cart CartClearer, session SessionClearer, exec dispatch.Executor, log *logger.Logger) *LogoutUseCase {
	return &LogoutUseCase{cart: cart, session: session, exec: exec, log: log.Component("logout")}
}

// Logout vacía el carrito de inmediato y borra la sesión en segundo plano.
func (uc *LogoutUseCase) Logout(onSuccess func(), onError func(error)) {
	uc.cart.ClearCart()
	uc.exec.Submit(func(ctx context.Context) {
		err := uc.session.ClearUserSession(ctx)
		if err != nil {
			err = fmt.Errorf("logout: %w", err)
			uc.log.Error().Err(err).Msg("no se pudo cerrar la sesión")
		}
		notify(err, onSuccess, onError)
	})
}
