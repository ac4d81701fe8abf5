package main

import (
	"fmt"
	"log"

	"github.com/tripora/travel-booking-backend/internal/utils"
)

func main() {
	secret, err := utils.GenerateSecret(32)
	if err != nil {
		log.Fatalf("Failed to generate secret: %v", err)
	}

	fmt.Println("Add this to your .env file:")
	fmt.Println()
	fmt.Printf("JWT_SECRET=%s\n", secret)
	fmt.Println()
	fmt.Println("Keep the secret safe and never commit it to version control.")
}
