package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Minimal bundle shape, enough to validate without importing the server
type bundleData struct {
	StorageFormatVersion int                        `json:"storageFormatVersion"`
	PlayerLoadouts       map[string]json.RawMessage `json:"playerLoadouts"`
}

const (
	legacyPrefix   = "loadouts:1.0.0:"
	currentVersion = "1.1.0"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for legacy loadout bundles...")

	iter := client.Scan(ctx, 0, legacyPrefix+"*", 0).Iterator()

	var migratable []string
	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var bundle bundleData
		if err := json.Unmarshal([]byte(data), &bundle); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}
		if bundle.PlayerLoadouts == nil {
			fmt.Printf("✗ Missing loadout map in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		migratable = append(migratable, key)
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d legacy keys: %d migratable, %d corrupted\n",
		checkedCount, len(migratable), len(corruptedKeys))

	if len(migratable) == 0 && len(corruptedKeys) == 0 {
		fmt.Println("Nothing to do!")
		return
	}

	for _, key := range migratable {
		fmt.Printf("  migrate: %s\n", key)
	}
	for _, key := range corruptedKeys {
		fmt.Printf("  corrupt: %s\n", key)
	}

	fmt.Print("\nMigrate legacy bundles and DELETE corrupted ones? (yes/no): ")
	var response string
	fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range migratable {
		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Failed to re-read %s: %v\n", key, err)
			continue
		}

		// loadouts:<version>:<faction>:<identity> → same key at the
		// current version. The server also does this lazily on load;
		// the script just front-loads the work.
		newKey := "loadouts:" + currentVersion + ":" + strings.TrimPrefix(key, legacyPrefix)
		if err := client.Set(ctx, newKey, data, 0).Err(); err != nil {
			fmt.Printf("Failed to write %s: %v\n", newKey, err)
			continue
		}
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
			continue
		}
		fmt.Printf("Migrated %s -> %s\n", key, newKey)
	}

	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}

	fmt.Println("\nMigration complete!")
}
