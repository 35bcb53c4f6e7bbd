package config

// Credential environment variables. The MELI_ names take precedence over
// the legacy names, which take precedence over the YAML file.
const (
	EnvAppID        = "MELI_APP_ID"
	EnvClientSecret = "MELI_CLIENT_SECRET"
	EnvRefreshToken = "MELI_REFRESH_TOKEN"
	EnvSellerID     = "MELI_SELLER_ID"
	EnvAdminToken   = "ADMIN_TOKEN"
)

// envOverrides lists, per setting, the variables checked in order.
var envOverrides = []struct {
	names []string
	set   func(*Config, string)
}{
	{
		names: []string{EnvAppID, "APP_ID", "CLIENT_ID"},
		set:   func(c *Config, v string) { c.MercadoLibre.AppID = v },
	},
	{
		names: []string{EnvClientSecret, "MELI_SECRET", "CLIENT_SECRET", "SECRET"},
		set:   func(c *Config, v string) { c.MercadoLibre.ClientSecret = v },
	},
	{
		names: []string{EnvRefreshToken, "REFRESH_TOKEN"},
		set:   func(c *Config, v string) { c.MercadoLibre.RefreshToken = v },
	},
	{
		names: []string{EnvSellerID, "SELLER_ID", "USER_ID"},
		set:   func(c *Config, v string) { c.MercadoLibre.SellerID = v },
	},
	{
		names: []string{EnvAdminToken},
		set:   func(c *Config, v string) { c.Server.AdminToken = v },
	},
}

// applyEnv overwrites settings with the first non-empty variable of each
// override list.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	for _, o := range envOverrides {
		for _, name := range o.names {
			if v, ok := lookup(name); ok && v != "" {
				o.set(cfg, v)
				break
			}
		}
	}
}
