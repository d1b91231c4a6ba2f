package main

import (
	"crypto/tls"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"salesboard-api/api"
	"salesboard-api/board"
	"salesboard-api/catalog"
	"salesboard-api/workflow"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("dotenv: %v", err)
	}
	if dbg, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && dbg {
		log.SetLevel(log.DebugLevel)
	}

	// Missing proxy key or board id surface as SERVER_MISCONFIGURED on the
	// affected endpoints rather than preventing startup.
	apiKey := os.Getenv("PROXY_API_KEY")
	if apiKey == "" {
		log.Warn("PROXY_API_KEY not set, all requests will be rejected")
	}
	boardID := os.Getenv("BOARD_ID")
	if boardID == "" {
		log.Warn("BOARD_ID not set, board operations will fail")
	}

	baseURL := os.Getenv("BOARD_API_BASE_URL")
	if baseURL == "" {
		baseURL = board.DefaultBaseURL
	}
	httpTimeout := 30 * time.Second
	if v := os.Getenv("BOARD_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			log.Fatalf("invalid BOARD_HTTP_TIMEOUT: %v", err)
		}
		httpTimeout = d
	}
	client := board.NewClient(baseURL, os.Getenv("BOARD_API_KEY"), os.Getenv("BOARD_API_TOKEN"), httpTimeout)

	var reader api.BoardReader = client
	if redisConn := os.Getenv("REDIS_CONNECTION_STRING"); redisConn != "" {
		redisOpts, err := redis.ParseURL(redisConn)
		if err != nil {
			parts := strings.Split(redisConn, ",")
			redisOpts = &redis.Options{Addr: parts[0]}
			for _, p := range parts[1:] {
				kv := strings.SplitN(p, "=", 2)
				if len(kv) != 2 {
					continue
				}
				switch strings.ToLower(kv[0]) {
				case "password":
					redisOpts.Password = kv[1]
				case "ssl":
					if strings.ToLower(kv[1]) == "true" {
						redisOpts.TLSConfig = &tls.Config{}
					}
				}
			}
		}
		ttl := 30 * time.Second
		if v := os.Getenv("DASHBOARD_CACHE_TTL"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil || d <= 0 {
				log.Fatalf("invalid DASHBOARD_CACHE_TTL: %v", err)
			}
			ttl = d
		}
		reader = board.NewCache(client, redis.NewClient(redisOpts), ttl)
	}

	logger := log.New()
	logger.SetLevel(log.GetLevel())

	creator, err := workflow.NewCreator(client, boardID, catalog.NewClassifier(), catalog.NewRegistry(), logger)
	if err != nil {
		log.Fatalf("workflow: %v", err)
	}

	e := echo.New()
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-Api-Key"},
	}))

	api.Register(e, creator, reader, boardID, api.NewAuth(apiKey), logger)

	listenAddr := ":8080"
	if val, ok := os.LookupEnv("PORT"); ok {
		listenAddr = ":" + val
	}

	e.Logger.Fatal(e.Start(listenAddr))
}
