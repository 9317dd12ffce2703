package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	Port     string
	// Telegram
	BotToken string
	// Portfolio storage
	Storage     string
	DataFile    string
	DatabaseURL string
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	// Upstream pages
	FetchTimeout time.Duration
	GoldURL      string
	GoldTypesURL string
	CurrencyURL  string
	StocksURL    string
	CryptoURL    string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:          getEnv("ENV", "local"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnv("PORT", "8080"),
		BotToken:     getEnv("BOT_TOKEN", ""),
		Storage:      getEnv("STORAGE", "file"),
		DataFile:     getEnv("DATA_FILE_PATH", "/tmp/finbot_portfolios.json"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:      atoiDef(getEnv("REDIS_DB", "0"), 0),
		FetchTimeout: time.Duration(atoiDef(getEnv("FETCH_TIMEOUT_MS", "10000"), 10000)) * time.Millisecond,
		GoldURL:      getEnv("GOLD_URL", "https://altin.doviz.com/gram-altin"),
		GoldTypesURL: getEnv("GOLD_TYPES_URL", "https://altin.doviz.com/"),
		CurrencyURL:  getEnv("CURRENCY_URL", "https://kur.doviz.com/"),
		StocksURL:    getEnv("STOCKS_URL", "https://borsa.doviz.com/"),
		CryptoURL:    getEnv("CRYPTO_URL", "https://www.doviz.com/kripto-paralar"),
	}
}
