package config

import "os"

// Config agrupa la configuración del servicio tomada de variables de entorno
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr          string
	EventChannelPrefix string

	PrometheusEnabled bool
}

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// Load construye la configuración desde el entorno con valores por defecto
// pensados para desarrollo local
func Load() Config {
	return Config{
		Port: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "sales_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		EventChannelPrefix: getEnv("EVENT_CHANNEL_PREFIX", "sales.events"),

		PrometheusEnabled: getEnv("PROMETHEUS_ENABLED", "false") == "true",
	}
}

// ConnString arma la cadena de conexión de PostgreSQL
func (c Config) ConnString() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword +
		"@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName +
		"?sslmode=" + c.DBSSLMode
}
