package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort     string `yaml:"APP_PORT"`
	AppURL      string `yaml:"APP_URL"`
	LogLevel    string `yaml:"LOG_LEVEL"`
	PageSize    int    `yaml:"PAGE_SIZE"`
	MaxPageSize int    `yaml:"MAX_PAGE_SIZE"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	AWSS3Endpoint string `yaml:"AWS_S3_ENDPOINT"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY"`
}

const (
	defaultConfigPath  = "config.yaml"
	defaultPageSize    = 6
	defaultMaxPageSize = 100
)

var config Config

func LoadConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	if err := ParseConfig(file); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

// ParseConfig replaces the loaded configuration with the YAML document in data.
func ParseConfig(data []byte) error {
	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return err
	}
	if parsed.PageSize <= 0 {
		parsed.PageSize = defaultPageSize
	}
	if parsed.MaxPageSize <= 0 {
		parsed.MaxPageSize = defaultMaxPageSize
	}
	if parsed.AppPort == "" {
		parsed.AppPort = "8000"
	}
	config = parsed
	return nil
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "LOG_LEVEL":
		return config.LogLevel
	case "PAGE_SIZE":
		return strconv.Itoa(config.PageSize)
	case "MAX_PAGE_SIZE":
		return strconv.Itoa(config.MaxPageSize)
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_S3_ENDPOINT":
		return config.AWSS3Endpoint
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}

// GetIntConfig returns the numeric value of key, or fallback when the key is
// unset or not a number.
func GetIntConfig(key string, fallback int) int {
	value, err := strconv.Atoi(GetConfig(key))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
