package env

import (
	"os"
)

const (
	DocstoreBackend   = "DOCSTORE_BACKEND"
	AWSRegion         = "AWS_REGION"
	AWSID             = "AWS_ID"
	AWSSecret         = "AWS_SECRET"
	AWSToken          = "AWS_TOKEN"
	DynamoDBEndpoint  = "DYNAMODB_ENDPOINT"
	FirestoreProject  = "FIRESTORE_PROJECT"
	FirestoreDatabase = "FIRESTORE_DATABASE"
	RedisURL          = "REDIS_URL"
	RedisPass         = "REDIS_PASS"
	AdminSecretKey    = "ADMIN_SECRET"
	WebUrl            = "WEB_URL"
	DevMode           = "DEV_MODE"
)

// Require panics when any of the given variables is unset. Each binary calls
// it from main with the set it actually needs.
func Require(keys ...string) {
	for _, key := range keys {
		if os.Getenv(key) == "" {
			panic("env: required environment variable not set: " + key)
		}
	}
}

func Get(key string) string {
	return os.Getenv(key)
}

func GetOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func MustGet(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic("env: required environment variable not set: " + key)
	}
	return val
}

// IsDevMode reports whether dev-only tooling (seed, reset) may run.
func IsDevMode() bool {
	v := os.Getenv(DevMode)
	return v == "true" || v == "1"
}
