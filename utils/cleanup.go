package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// Retry configuration
const maxRetries = 3
const retryDelay = 2 * time.Minute

// CleanupExpiredFiles removes a file once it is older than the TTL
func CleanupExpiredFiles(filePath string, ttl time.Duration) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error checking file: %w", err)
	}

	if time.Since(info.ModTime()) > ttl {
		if err := os.Remove(filePath); err != nil {
			return fmt.Errorf("error deleting expired file: %w", err)
		}
		log.Printf("expired file %s deleted", filePath)
	}
	return nil
}

// CleanupExpiredDir sweeps a directory and removes entries past the TTL
func CleanupExpiredDir(dir string, ttl time.Duration) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if err := CleanupExpiredFiles(filepath.Join(dir, file.Name()), ttl); err != nil {
			log.Println("error cleaning up file:", err)
		}
	}
	return nil
}

// CleanupEndedSessionState removes quiz-state keys in Redis that belong to
// sessions whose TTL Redis has not reaped yet.
func CleanupEndedSessionState(ctx context.Context, redisClient *redis.Client) error {
	iter := redisClient.Scan(ctx, 0, "quiz_state:*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		ttl, err := redisClient.TTL(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("failed to read TTL for %s: %w", key, err)
		}
		// Keys written without an expiry are stragglers from ended sessions
		if ttl == -1 {
			if err := redisClient.Del(ctx, key).Err(); err != nil {
				return fmt.Errorf("failed to delete key %s: %w", key, err)
			}
		}
	}
	return iter.Err()
}

// CleanupAllExpired sweeps worksheet uploads, dashboard exports and stale
// Redis session state.
func CleanupAllExpired(fileTTL time.Duration, redisClient *redis.Client) error {
	if err := CleanupExpiredDir("./uploads", fileTTL); err != nil {
		return err
	}
	if err := CleanupExpiredDir(ExportDir, fileTTL); err != nil {
		return err
	}
	if err := CleanupEndedSessionState(context.Background(), redisClient); err != nil {
		return fmt.Errorf("error cleaning up session state: %w", err)
	}
	return nil
}

// RunScheduledCleanup runs cleanup tasks daily at 1 AM with retries and
// emails the operator when all attempts fail
func RunScheduledCleanup(redisClient *redis.Client) {
	c := cron.New()

	c.AddFunc("0 1 * * *", func() {
		log.Println("running scheduled cleanup task...")

		var retries int
		var cleanupSuccess bool

		for retries < maxRetries {
			log.Printf("attempt %d to clean up...", retries+1)
			err := CleanupAllExpired(24*time.Hour, redisClient)
			if err == nil {
				log.Println("cleanup successful!")
				cleanupSuccess = true
				break
			}
			log.Printf("cleanup failed: %v", err)
			retries++
			time.Sleep(retryDelay)
		}

		if !cleanupSuccess {
			log.Printf("cleanup task failed after %d retries. please check the system.", retries)

			adminEmail := os.Getenv("ADMIN_EMAIL")
			if adminEmail != "" {
				SendEmail(
					adminEmail,
					"Cleanup Task Failed",
					"The scheduled cleanup task failed after multiple attempts.",
				)
			}
		}
	})

	c.Start()
}
