package database

import (
	"net"
	"net/url"
	"strconv"

	"github.com/rickgao/series-data/internal/config"
)

// BuildConnString returns a postgres:// URL for cfg. User info is escaped by
// net/url; an empty ssl_mode falls back to config.DefaultDBSSLMode.
func BuildConnString(cfg config.DBConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = config.DefaultDBSSLMode
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}
