package repository

// KeyValueStore is the persistence boundary: string values under string keys,
// each key overwritten wholesale on Set
type KeyValueStore interface {
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
	Delete(key string) error
}
