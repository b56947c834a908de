package config

import "os"

// Config reúne tudo que a API lê do ambiente.
// O .env (quando existe) é carregado no main antes de Load ser chamado.
type Config struct {
	Port         string
	DatabasePath string
}

// Load monta a configuração a partir das variáveis de ambiente, com defaults
// que permitem subir a API localmente sem configurar nada.
func Load() Config {
	return Config{
		Port:         getenv("APP_PORT", "4000"),
		DatabasePath: getenv("DATABASE_PATH", "./boardcamp.db"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
