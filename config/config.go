package config

import (
	"os"
	"strings"
)

var (
	TLS_DOMAINS  = ""               // e.g. "example.com,example2.com"
	MYSQL_DSN    = ""               // MySQL will be used if this is set
	SQLITE_FILE  = "data/shrine.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS = "0.0.0.0:8080"
	UPLOAD_DIR   = "uploads"  // Root directory for stored media files
	FRONTEND_DIR = "frontend" // Static site files served as a fallback
	DEBUG_MODE   = true
	// S3 storage is used instead of the local upload directory when a bucket is configured
	S3_BUCKET   = ""
	S3_REGION   = "us-east-1"
	S3_ENDPOINT = "" // Optional, for S3-compatible services
	S3_AUTH     = "" // "key:secret"
	TMP_DIR     = "/tmp"
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("UPLOAD_DIR", &UPLOAD_DIR)
	readEnvString("FRONTEND_DIR", &FRONTEND_DIR)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_AUTH", &S3_AUTH)
	readEnvString("TMP_DIR", &TMP_DIR)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}
