package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string
	MaxUploadMB  int

	// product catalog
	CatalogPath    string
	CatalogIDCol   string
	CatalogNameCol string

	// OCR
	VisionCredentialsPath string
	DownloadTimeoutSec    int
	MaxDownloadMB         int
}

func Load() Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getenv("PORT", "8008"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "64"))
	dlTimeout, _ := strconv.Atoi(getenv("DOWNLOAD_TIMEOUT_SEC", "15"))
	dlMB, _ := strconv.Atoi(getenv("MAX_DOWNLOAD_MB", "64"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:         getenv("HOST", "0.0.0.0"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFile:      getenv("LOG_FILE", "logs/invoice-agent.log"),
		MaxUploadMB:  mb,

		CatalogPath:    getenv("CATALOG_PATH", "products_list.csv"),
		CatalogIDCol:   getenv("CATALOG_ID_COL", "品號"),
		CatalogNameCol: getenv("CATALOG_NAME_COL", "品名"),

		VisionCredentialsPath: getenv("GOOGLE_APPLICATION_CREDENTIALS", "config/vision-credentials.json"),
		DownloadTimeoutSec:    dlTimeout,
		MaxDownloadMB:         dlMB,
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
