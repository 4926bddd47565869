package utils

import (
	"context"
	"log"

	"weddinghub/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCMClient is the global Firebase messaging client. Nil when pushes are
// disabled (no credentials configured).
var FCMClient *messaging.Client

// FirebaseInit initializes the Firebase app and messaging client. A missing
// credentials file is not fatal: notifications are still persisted, only the
// push delivery is skipped.
func FirebaseInit() {
	credFile := config.AppConfig.FirebaseCredentialsFile
	if credFile == "" {
		log.Println("Firebase credentials not configured, push notifications disabled")
		return
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credFile))
	if err != nil {
		log.Printf("Failed to initialize Firebase app: %v, push notifications disabled", err)
		return
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Printf("Failed to initialize Firebase messaging: %v, push notifications disabled", err)
		return
	}
	FCMClient = client
	log.Println("Firebase messaging initialized")
}
