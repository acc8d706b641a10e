package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultIntro = "In this blog, I'll be discussing the benefits of clean code, test-driven development (TDD), " +
	"and refactoring for software developers. These practices are essential for building maintainable, scalable, " +
	"and efficient applications, and I'm excited to share my insights and experiences with you."

// AppConfig 汇总运行服务与静态构建所需的基础配置。
type AppConfig struct {
	ListenAddr           string
	Port                 string
	GinMode              string
	LogMode              string
	DatabasePath         string
	ContentDir           string
	OutputDir            string
	MediaURLPath         string
	SiteTitle            string
	SiteHeading          string
	SiteIntro            string
	FooterText           string
	DateFormat           string
	ExcerptLength        int
	HighlightStyle       string
	HighlightLineNumbers bool
	ImageMaxWidth        int
	AdminTokenHash       string
	SocialLinks          string
}

// Load 从环境变量读取应用配置，并为缺失项提供默认值。
// A .env file in the working directory is applied first when present;
// variables already set in the environment win.
func Load() AppConfig {
	_ = godotenv.Load()

	port := envString("PORT", "8080")

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	mediaURLPath := "/" + strings.Trim(envString("MEDIA_URL_PATH", "/media"), "/")
	if mediaURLPath == "/" {
		mediaURLPath = "/media"
	}

	return AppConfig{
		ListenAddr:           listenAddr,
		Port:                 port,
		GinMode:              envString("GIN_MODE", "release"),
		LogMode:              envString("LOG_MODE", "production"),
		DatabasePath:         envString("DATABASE_PATH", "data/blog.db"),
		ContentDir:           envString("CONTENT_DIR", "content/posts"),
		OutputDir:            envString("OUTPUT_DIR", "public"),
		MediaURLPath:         mediaURLPath,
		SiteTitle:            envString("SITE_TITLE", "Jake the dev"),
		SiteHeading:          envString("SITE_HEADING", "Code with Confidence"),
		SiteIntro:            envString("SITE_INTRO", defaultIntro),
		FooterText:           envString("FOOTER_TEXT", "Jake the dev · Code with Confidence"),
		DateFormat:           envString("DATE_FORMAT", "January 2, 2006"),
		ExcerptLength:        envInt("EXCERPT_LENGTH", 140),
		HighlightStyle:       envString("HIGHLIGHT_STYLE", "github"),
		HighlightLineNumbers: envBool("HIGHLIGHT_LINE_NUMBERS", true),
		ImageMaxWidth:        envInt("IMAGE_MAX_WIDTH", 960),
		AdminTokenHash:       strings.TrimSpace(os.Getenv("ADMIN_TOKEN_HASH")),
		SocialLinks:          strings.TrimSpace(os.Getenv("SOCIAL_LINKS")),
	}
}

func envString(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func envBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
