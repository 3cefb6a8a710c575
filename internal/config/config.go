package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Qdrant QdrantConfig
	Neo4j  Neo4jConfig
	Peers  PeerConfig
	Nats   NatsConfig
}

type AppConfig struct {
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	CatalogPort        string
	ProfilePort        string
	CheckerPort        string
}

type MongoConfig struct {
	URI             string
	CatalogDatabase string
	ProfileDatabase string
}

type RedisConfig struct {
	URL string
}

type QdrantConfig struct {
	Host string
	Port int
}

type Neo4jConfig struct {
	URI      string
	Username string
	Password string
}

// PeerConfig holds the base URLs the services use to reach each other.
type PeerConfig struct {
	UserProfileServiceURL    string
	ProductCatalogServiceURL string
}

type NatsConfig struct {
	URL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			CatalogPort:        getEnv("PRODUCT_CATALOG_SERVICE_PORT", "8002"),
			ProfilePort:        getEnv("USER_PROFILE_SERVICE_PORT", "8001"),
			CheckerPort:        getEnv("ALLERGY_CHECKER_SERVICE_PORT", "8003"),
		},
		Mongo: MongoConfig{
			URI:             getEnv("MONGO_URI", "mongodb://localhost:27017"),
			CatalogDatabase: getEnv("MONGO_CATALOG_DB", "openfoods"),
			ProfileDatabase: getEnv("MONGO_PROFILE_DB", "yoloeats_user_profile"),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Qdrant: QdrantConfig{
			Host: getEnv("QDRANT_HOST", "localhost"),
			Port: getEnvAsInt("QDRANT_GRPC_PORT", 6334),
		},
		Neo4j: Neo4jConfig{
			URI:      getEnv("NEO4J_URI", "neo4j://localhost:7687"),
			Username: getEnv("NEO4J_USERNAME", "neo4j"),
			Password: getEnv("NEO4J_PASSWORD", ""),
		},
		Peers: PeerConfig{
			UserProfileServiceURL:    getEnv("USER_PROFILE_SERVICE_URL", "http://localhost:8001"),
			ProductCatalogServiceURL: getEnv("PRODUCT_CATALOG_SERVICE_URL", "http://localhost:8002"),
		},
		Nats: NatsConfig{
			URL: getEnv("NATS_URL", "nats://localhost:4222"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
