package config

type Config struct {
	Environment Environment
	HTTP        HTTPServer
	Database    Database `envPrefix:"DATABASE_"`
	JWT         JWT      `envPrefix:"JWT_"`

	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"false"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type Database struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"` // sqlite or mysql
	URL    string `env:"URL" envDefault:"storefront.db"`
}

type JWT struct {
	Secret     string `env:"SECRET,required"`
	ExpiryDays int    `env:"EXPIRY_DAYS" envDefault:"30"`
}
