// Package prefs implementa los almacenes de preferencias (sesión y tema) sobre un KV durable.
package prefs

import "context"

// KV es un almacén clave/valor con nombre propio. Get devuelve ok=false si la clave no existe.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
