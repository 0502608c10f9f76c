package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Clears the persisted session record so the next process start comes up
// logged out. Handy when a stale identity blocks local testing.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	path := os.Getenv("SESSION_FILE")
	if path == "" {
		path = ".nexus_session.json"
	}

	// 2. Show who is currently logged in, if anyone
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("No session file at %s, nothing to reset", path)
		return
	}

	var rec struct {
		User *struct {
			Username string `json:"username"`
			Email    string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(data, &rec); err == nil && rec.User != nil {
		log.Printf("Current session: %s (%s)", rec.User.Username, rec.User.Email)
	}

	// 3. Remove it
	if err := os.Remove(path); err != nil {
		log.Fatalf("Failed to remove session file: %v", err)
	}
	log.Printf("Session file %s removed", path)
}
