package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	TLS_DOMAINS    = ""                 // e.g. "example.com,example2.com"
	MYSQL_DSN      = ""                 // MySQL will be used if this is set
	SQLITE_FILE    = "yatube.db"        // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS   = "0.0.0.0:8080"     // host:port to listen on
	MEDIA_DIR      = "media"            // Post images live here when no S3 bucket is configured
	S3_BUCKET      = ""                 // S3 will be used for media if this is set
	S3_PREFIX      = ""                 // Key prefix inside the S3 bucket
	S3_SSE         = ""                 // Optional server-side encryption, e.g. "AES256"
	TMP_DIR        = "/tmp"             // Local scratch space for S3-backed media
	SESSION_KEY    = "change-me-please" // Cookie signing key
	DEBUG_MODE     = true
	POSTS_PER_PAGE = 10 // Feed page size
	CACHE_SECONDS  = 20 // Home page cache TTL
)

func init() {
	// A missing .env is fine, plain environment variables still apply
	_ = godotenv.Load()

	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("MEDIA_DIR", &MEDIA_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_PREFIX", &S3_PREFIX)
	readEnvString("S3_SSE", &S3_SSE)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("POSTS_PER_PAGE", &POSTS_PER_PAGE)
	readEnvInt("CACHE_SECONDS", &CACHE_SECONDS)
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

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
