package repository

import "context"

// Claves usadas en el almacén local.
const (
	KeyDocument             = "almoxarifado"
	KeyLastLowStockNotified = "lastLowStockNotification"
)

// KeyValueStore define el puerto de persistencia local (DIP): un valor opaco por clave.
// Get devuelve domain.ErrNotFound si la clave no existe.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// SeedSource provee el documento inicial cuando aún no hay nada persistido.
type SeedSource interface {
	Seed(ctx context.Context) ([]byte, error)
}
