package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI    string
	DBName      string
	Collection  string
	InboundDir  string // Directory scanned for ERP JSON drops
	OutboundDir string // Directory receiving exported work order files
	RunMode     string // "once" runs the pipeline and exits, "serve" keeps the admin API up
	Port        string
	Schedule    string // Cron expression driving periodic runs in serve mode
	Environment string
	AppId       string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	return &Config{
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "tracos"),
		Collection:  getEnv("COLLECTION", "workorders"),
		InboundDir:  getEnv("INBOUND_DIR", "./data/inbound"),
		OutboundDir: getEnv("OUTBOUND_DIR", "./data/outbound"),
		RunMode:     getEnv("RUN_MODE", "once"),
		Port:        getEnv("PORT", "8080"),
		Schedule:    getEnv("SYNC_SCHEDULE", "@every 5m"),
		Environment: getEnv("ENVIRONMENT", "development"),
		AppId:       getEnv("APP_ID", "go-worksync"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
