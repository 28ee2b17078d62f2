// scripts/gmail-check/main.go
//
// Run this locally to verify the Gmail service-account credentials before
// deploying. It mints an access token for the configured sender address
// and reports whether domain-wide delegation is set up correctly.
//
// Usage:
//   go run scripts/gmail-check/main.go <credentials.json> <from-address>

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatalf("usage: %s <credentials.json> <from-address>", os.Args[0])
	}
	credsPath, from := os.Args[1], os.Args[2]

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.JWTConfigFromJSON(data, gmail.GmailSendScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is a service-account key file.", err, credsPath)
	}
	config.Subject = from

	ctx := context.Background()
	tok, err := config.TokenSource(ctx).Token()
	if err != nil {
		log.Fatalf("Token exchange failed: %v\nCheck that domain-wide delegation grants %s the gmail.send scope.", err, from)
	}

	fmt.Printf("OK: minted access token for %s (expires %s)\n", from, tok.Expiry.Format("15:04:05"))
	fmt.Println("Outbound mail is ready, set mail.enabled: true in config.yaml")
}
