package modem

const (
	credUsername = "username"
	credPassword = "password"
)

// Credentials is a key-value store for authentication fields where a key
// that was never set and a key explicitly cleared both read back as the
// empty string. Callers never have to distinguish missing from empty.
type Credentials struct {
	values map[string]string
}

func NewCredentials() *Credentials {
	return &Credentials{values: make(map[string]string)}
}

// Get returns the stored value, or "" when the key is not set.
func (c *Credentials) Get(key string) string {
	return c.values[key]
}

// Set stores value under key. Setting the empty string removes the key, so
// Get keeps returning the default for it.
func (c *Credentials) Set(key string, value string) {
	if value == "" {
		delete(c.values, key)
		return
	}
	c.values[key] = value
}
