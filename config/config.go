package config

import "github.com/kelseyhightower/envconfig"

type App struct {
	Addr         string `envconfig:"ADDR" default:":9090"`
	DatabaseURL  string `envconfig:"DATABASE_URL" required:"true"`
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	MailRelayURL string `envconfig:"MAIL_RELAY_URL" required:"true"`
	// Keys for the signed pending-booking cookie: 32 and 16 random bytes.
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY" required:"true"`
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY" required:"true"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
