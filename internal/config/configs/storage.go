package configs

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Storage selects the campaign store.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}
