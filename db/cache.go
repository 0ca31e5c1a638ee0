package db

import (
	"context"
	"os"
	"time"

	"github.com/Benbecker69/dashboard-ilias-benharrat-eemi/utils"

	"github.com/redis/go-redis/v9"
)

// Cache client Redis optionnel pour les statistiques du tableau de bord.
// Nil quand REDIS_URL n'est pas configurée.
var Cache *redis.Client

func InitCache() {
	rawURL := os.Getenv("REDIS_URL")
	if rawURL == "" {
		utils.LogInfo("REDIS_URL non définie, cache des statistiques désactivé")
		return
	}

	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		utils.LogError(err, "REDIS_URL invalide, cache des statistiques désactivé")
		return
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		utils.LogError(err, "Redis injoignable, cache des statistiques désactivé")
		return
	}

	Cache = client
	utils.LogSuccess("Redis connection successful")
}
