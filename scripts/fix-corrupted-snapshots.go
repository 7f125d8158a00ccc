// Command fix-corrupted-snapshots scans Redis for snapshot records that no
// longer load and offers to delete them.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/repositories/snapshots"
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
	fmt.Println("Scanning for corrupted snapshots...")

	iter := client.Scan(ctx, 0, "snapshot:*", 0).Iterator()

	var corruptedKeys []string
	var checkedCount int
	now := time.Now().UTC()

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		if reason := inspect(data, now); reason != "" {
			fmt.Printf("✗ %s: %s\n", key, reason)
			corruptedKeys = append(corruptedKeys, key)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d keys, found %d corrupted entries\n", checkedCount, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted snapshots found!")
		return
	}

	fmt.Print("\nDo you want to DELETE these snapshots? (yes/no): ")
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

// inspect returns why a stored snapshot cannot be restored, or "" when it can
func inspect(data []byte, now time.Time) string {
	var snap snapshots.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return "corrupted JSON"
	}

	if !snap.ExpiresAt.IsZero() && !now.Before(snap.ExpiresAt) {
		return fmt.Sprintf("expired at %s", snap.ExpiresAt.Format(time.RFC3339))
	}

	if err := snap.Settings.Validate(); err != nil {
		return err.Error()
	}
	if err := entities.NewInventory(&snap.Settings).Restore(snap.Items); err != nil {
		return err.Error()
	}
	if err := entities.NewRegistry().Restore(snap.Dungeons); err != nil {
		return err.Error()
	}
	if err := entities.NewLocations(&snap.Settings).Restore(snap.Opened); err != nil {
		return err.Error()
	}
	return ""
}
