package shared

import (
	"fmt"
	"net/http"
	"os"
	"strings"
)

const (
	versionFileName   = "www/version.txt"
	userAgentTemplate = "Toots-Scheduler/%s (+%s://%s)"
	devVersion        = "0.0.0-dev"
)

type IUserAgent interface {
	AddUserAgent(req *http.Request)
	Value() string
}

type userAgent struct {
	userAgentValue string
}

func NewUserAgent(cfg *Config) IUserAgent {
	return &userAgent{
		userAgentValue: buildUserAgentString(cfg.SiteScheme, cfg.Host),
	}
}

func buildUserAgentString(scheme, host string) string {
	versionBytes, _ := os.ReadFile(versionFileName)
	versionStr := strings.TrimSpace(string(versionBytes))
	versionStr = strings.TrimPrefix(versionStr, "v")
	if versionStr == "" {
		versionStr = devVersion
	}
	return fmt.Sprintf(userAgentTemplate, versionStr, scheme, host)
}

func (ua *userAgent) AddUserAgent(req *http.Request) {
	req.Header.Set("User-Agent", ua.userAgentValue)
}

func (ua *userAgent) Value() string {
	return ua.userAgentValue
}
