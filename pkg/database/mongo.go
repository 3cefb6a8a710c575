package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoConfig struct {
	URI string
}

func configureClientOptions(cfg MongoConfig) *options.ClientOptions {
	opts := options.Client().ApplyURI(cfg.URI)

	// SetMaxPoolSize caps concurrent sockets per server.
	opts.SetMaxPoolSize(100)

	// SetMinPoolSize keeps warm connections for request bursts.
	opts.SetMinPoolSize(5)

	// SetMaxConnIdleTime recycles connections that sat idle too long.
	opts.SetMaxConnIdleTime(time.Hour)

	return opts
}

func NewMongoClient(ctx context.Context, cfg MongoConfig) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, configureClientOptions(cfg))
	if err != nil {
		return nil, err
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	defer cancelPing()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client, nil
}
