// Package tokens persists the client's credential material in the local
// sqlite database. It is a small key/value store with a typed façade (Store)
// bound to the well-known credential keys.
package tokens

import "context"

type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
