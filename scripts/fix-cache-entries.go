package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dexboard/internal/pkg/clock"
	"github.com/KirkDiggler/dexboard/internal/repositories/apicache"
)

// cacheEntry mirrors the stored layout of an API cache entry
type cacheEntry struct {
	Body     []byte `json:"body"`
	StoredAt string `json:"stored_at"`
}

func main() {
	purgeAll := flag.Bool("all", false, "Delete every cached API response")
	flag.Parse()

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

	if *purgeAll {
		cache, err := apicache.NewRedisRepository(&apicache.Config{
			Client: client,
			Clock:  clock.New(),
		})
		if err != nil {
			log.Fatal("Failed to create cache repository:", err)
		}
		out, err := cache.Purge(ctx, apicache.PurgeInput{})
		if err != nil {
			log.Fatal("Failed to purge cache:", err)
		}
		fmt.Printf("Deleted %d cached responses\n", out.Deleted)
		return
	}

	fmt.Println("Scanning for unreadable cache entries...")

	iter := client.Scan(ctx, 0, "dexboard:api:*", 0).Iterator()

	var corruptedKeys []string
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var entry cacheEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			fmt.Printf("✗ Corrupted entry in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		// A cached body is the raw API response and must itself be JSON
		if !json.Valid(entry.Body) {
			fmt.Printf("✗ Body is not JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted entries\n", checkedCount, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted entries found!")
		return
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}
