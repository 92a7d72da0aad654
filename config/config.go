package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	PostsAPI   PostsAPIConfig   `yaml:"posts_api"`
	Pagination PaginationConfig `yaml:"pagination"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// PostsAPIConfig 는 업스트림 REST API(게시물/댓글/유저) 접속 설정이다.
type PostsAPIConfig struct {
	BaseURL string `yaml:"base_url"`
	// TimeoutSeconds 가 0 이하면 httpclient 기본값(10초)을 사용한다.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// PaginationConfig 는 목록 화면에서 선택 가능한 페이지 크기 목록이다.
type PaginationConfig struct {
	LimitOptions []int `yaml:"limit_options"`
}

var config *AppConfig

func defaults() AppConfig {
	return AppConfig{
		Logging:    LoggingConfig{Level: "info"},
		Server:     ServerConfig{Addr: ":8080", AllowedOrigins: []string{"*"}},
		PostsAPI:   PostsAPIConfig{BaseURL: "http://localhost:3000/api"},
		Pagination: PaginationConfig{LimitOptions: []int{10, 20, 30}},
	}
}

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c, err := Load(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}
	config = &c
}

// Load 는 주어진 경로의 yaml 설정을 기본값 위에 덮어쓴 뒤 환경변수 오버라이드를 적용한다.
// 파일이 없으면 기본값과 환경변수만 사용한다.
func Load(path string) (AppConfig, error) {
	c := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return AppConfig{}, err
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return AppConfig{}, err
	}

	applyEnv(&c)
	return c, nil
}

func applyEnv(c *AppConfig) {
	if v := os.Getenv("POSTS_API_BASE_URL"); v != "" {
		c.PostsAPI.BaseURL = v
	}
	if v := os.Getenv("ADMIN_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("POSTS_API_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.PostsAPI.TimeoutSeconds = n
		}
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
