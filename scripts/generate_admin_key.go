package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/generate_admin_key.go <operator-key>")
	}

	key := os.Args[1]
	cost := 12

	hash, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		log.Fatal("Error generating hash:", err)
	}

	fmt.Printf("Operator key: %s\n", key)
	fmt.Printf("ADMIN_KEY_HASH: %s\n", string(hash))

	err = bcrypt.CompareHashAndPassword(hash, []byte(key))
	if err != nil {
		log.Fatal("Hash verification failed:", err)
	}

	fmt.Println("✅ Hash verified successfully!")
}
