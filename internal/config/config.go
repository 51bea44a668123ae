package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	Database Database `envPrefix:"DATABASE_"`
	Store    Store    `envPrefix:"STORE_"`
	Events   Events   `envPrefix:"EVENTS_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type Database struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"` // sqlite, mysql
	DSN    string `env:"DSN" envDefault:"storefront.db"`
}

type Store struct {
	Name             string   `env:"NAME" envDefault:"OneIndoGaming.ID"`
	WhatsAppNumber   string   `env:"WHATSAPP_NUMBER" envDefault:"6280000000000"`
	PlaceholderImage string   `env:"PLACEHOLDER_IMAGE" envDefault:"https://picsum.photos/seed/new/600/400"`
	AdminIdentities  []string `env:"ADMIN_IDENTITIES" envSeparator:"," envDefault:"admin@example.com"`
	SeedDefaults     bool     `env:"SEED_DEFAULTS" envDefault:"true"`
	MaxImageBytes    int64    `env:"MAX_IMAGE_BYTES" envDefault:"2097152"`

	// Carts idle for CartTTL are forgotten; MaxCarts bounds the live ones.
	CartTTL  time.Duration `env:"CART_TTL" envDefault:"24h"`
	MaxCarts int           `env:"MAX_CARTS" envDefault:"10000"`
}

type Events struct {
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	TopicPrefix  string   `env:"TOPIC_PREFIX" envDefault:"storefront"`
}
