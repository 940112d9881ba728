package output

type ConfigPort interface {
	Get(key string) string
	GetWithDefault(key, defaultValue string) string
	GetBool(key string, defaultValue bool) bool
	GetInt(key string, defaultValue int) int
}
