package config

import "os"

type B2 struct {
	KeyID          string
	ApplicationKey string
	S3Endpoint     string
	Region         string
	BucketName     string
	PublicURL      string
}

type Mux struct {
	TokenID     string
	TokenSecret string
	BaseURL     string
}

type Config struct {
	PostgresURI  string
	RedisURI     string
	FrontendURL  string
	B2           B2
	Mux          Mux
	UploadFolder string
	SecretKey    string
	CookieName   string
}

func LoadConfig() *Config {
	return &Config{
		PostgresURI: getEnv("POSTGRES_URI", ""),
		RedisURI:    getEnv("REDIS_URI", ""),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		B2: B2{
			KeyID:          getEnv("B2_KEY_ID", ""),
			ApplicationKey: getEnv("B2_APPLICATION_KEY", ""),
			S3Endpoint:     getEnv("B2_S3_ENDPOINT", ""),
			Region:         getEnv("B2_REGION", "eu-central-003"),
			BucketName:     getEnv("B2_BUCKET_NAME", ""),
			PublicURL:      getEnv("B2_PUBLIC_URL", ""),
		},
		Mux: Mux{
			TokenID:     getEnv("MUX_TOKEN_ID", ""),
			TokenSecret: getEnv("MUX_TOKEN_SECRET", ""),
			BaseURL:     getEnv("MUX_BASE_URL", "https://api.mux.com"),
		},
		UploadFolder: getEnv("UPLOAD_FOLDER", "videos"),
		SecretKey:    getEnv("SECRET_KEY", ""),
		CookieName:   getEnv("COOKIE_NAME", "media_session"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
