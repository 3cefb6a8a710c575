package database

import (
	"github.com/qdrant/go-client/qdrant"
)

type QdrantConfig struct {
	Host string
	Port int
}

func NewQdrantClient(cfg QdrantConfig) (*qdrant.Client, error) {
	return qdrant.NewClient(&qdrant.Config{
		Host: cfg.Host,
		Port: cfg.Port,
	})
}
