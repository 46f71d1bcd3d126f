package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/combat-companion/internal/entities/ddb"
	redisclient "github.com/KirkDiggler/combat-companion/internal/redis"
	"github.com/KirkDiggler/combat-companion/internal/repositories/session"
)

// finding is a session hash that needs repair
type finding struct {
	key       string
	badSheet  bool
	noExpiry  bool
	sheetNote string
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	client, err := redisclient.NewFromURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning session hashes...")

	iter := client.Scan(ctx, 0, "combat_session:*", 0).Iterator()

	var findings []finding
	var checkedCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		f := finding{key: key}

		raw, err := client.HGet(ctx, key, string(session.KeyCharacter)).Result()
		switch {
		case err == redis.Nil:
		case err != nil:
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		default:
			var doc ddb.Document
			if err := json.Unmarshal([]byte(raw), &doc); err != nil {
				f.badSheet, f.sheetNote = true, "character is not valid JSON"
			} else if doc.Character.Name == "" {
				f.badSheet, f.sheetNote = true, "character has no name"
			}
		}

		ttl, err := client.TTL(ctx, key).Result()
		if err == nil && ttl < 0 {
			f.noExpiry = true
		}

		if f.badSheet || f.noExpiry {
			findings = append(findings, f)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d sessions, found %d needing repair\n", checkedCount, len(findings))

	if len(findings) == 0 {
		fmt.Println("Nothing to fix!")
		return
	}

	for _, f := range findings {
		if f.badSheet {
			fmt.Printf("  - %s: %s\n", f.key, f.sheetNote)
		}
		if f.noExpiry {
			fmt.Printf("  - %s: no expiry set\n", f.key)
		}
	}

	fmt.Printf("\nDrop broken characters and set a %s expiry on these sessions? (yes/no): ", session.DefaultTTL)
	var response string
	fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, f := range findings {
		if f.badSheet {
			if err := client.HDel(ctx, f.key, string(session.KeyCharacter), string(session.KeyMaxHP)).Err(); err != nil {
				fmt.Printf("Failed to clear character in %s: %v\n", f.key, err)
				continue
			}
			fmt.Printf("Cleared character in %s\n", f.key)
		}
		if f.noExpiry {
			if err := client.Expire(ctx, f.key, session.DefaultTTL).Err(); err != nil {
				fmt.Printf("Failed to set expiry on %s: %v\n", f.key, err)
				continue
			}
			fmt.Printf("Set expiry on %s\n", f.key)
		}
	}
	fmt.Println("\nRepair complete!")
}
