package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	AppAuthKey string
	AppEncKey  string
	CSRFKey    string

	DemoMode bool

	AnalyzerBaseURL string
	AnalyzerAPIKey  string

	CompanyName    string
	Currency       string
	WhatsAppNumber string
	OwnerEmail     string

	APP_URL string
	APP_ENV string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:          os.Getenv("DB_HOST"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBPort:          os.Getenv("DB_PORT"),
		Port:            os.Getenv("APP_PORT"),
		AppAuthKey:      os.Getenv("APP_AUTH_KEY"),
		AppEncKey:       os.Getenv("APP_ENC_KEY"),
		CSRFKey:         os.Getenv("CSRF_KEY"),
		DemoMode:        os.Getenv("DEMO_MODE") == "true",
		AnalyzerBaseURL: os.Getenv("ANALYZER_BASE_URL"),
		AnalyzerAPIKey:  os.Getenv("ANALYZER_API_KEY"),
		CompanyName:     os.Getenv("COMPANY_NAME"),
		Currency:        os.Getenv("CURRENCY"),
		WhatsAppNumber:  os.Getenv("WHATSAPP_NUMBER"),
		OwnerEmail:      os.Getenv("OWNER_EMAIL"),
		APP_URL:         os.Getenv("APP_URL"),
		APP_ENV:         os.Getenv("APP_ENV"),
	}

}

// BackendConfigured reports whether a remote database is configured at all;
// without one the app only runs in demo mode.
func (e ENV) BackendConfigured() bool {
	return e.DBHost != "" && e.DBName != ""
}

var LoadENV = LoadEnv()
