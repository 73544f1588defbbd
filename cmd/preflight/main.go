// cmd/preflight/main.go
package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/hamed0406/apiprobe/internal/config"
)

const (
	levelFail = "✖"
	levelWarn = "⚠"
	levelOK   = "✔"
)

type finding struct {
	level string
	msg   string
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, levelFail, err)
		os.Exit(1)
	}

	failed := false
	for _, f := range check(cfg) {
		switch f.level {
		case levelOK:
			fmt.Println(f.level, f.msg)
		case levelFail:
			failed = true
			fallthrough
		default:
			fmt.Fprintln(os.Stderr, f.level, f.msg)
		}
	}
	if failed {
		os.Exit(1)
	}
	fmt.Println(levelOK, "preflight passed")
}

func check(cfg config.Config) []finding {
	var out []finding
	fail := func(msg string) { out = append(out, finding{levelFail, msg}) }
	warn := func(msg string) { out = append(out, finding{levelWarn, msg}) }
	ok := func(msg string) { out = append(out, finding{levelOK, msg}) }

	u, err := url.Parse(cfg.BaseURL)
	switch {
	case err != nil:
		fail("KAIZEN_BASE_URL is not a URL: " + err.Error())
	case u.Scheme != "http" && u.Scheme != "https":
		fail("KAIZEN_BASE_URL must start with http:// or https://")
	case u.Host == "":
		fail("KAIZEN_BASE_URL has no host")
	default:
		ok("KAIZEN_BASE_URL=" + cfg.BaseURL)
	}

	if strings.TrimSpace(cfg.UserWA) == "" || cfg.Password == "" {
		fail("KAIZEN_USER_WA and KAIZEN_USER_PASSWORD are required for login.")
	} else {
		ok("login credentials present")
	}

	if _, err := time.Parse(time.DateOnly, cfg.SampleDate); err != nil {
		warn("KAIZEN_SAMPLE_DATE is not YYYY-MM-DD; date endpoints may return 400.")
	}
	for name, v := range map[string]string{"KAIZEN_SAMPLE_START": cfg.SampleStart, "KAIZEN_SAMPLE_END": cfg.SampleEnd} {
		if _, err := time.Parse(time.RFC3339, v); err != nil {
			warn(name + " is not RFC 3339; time-range endpoints may return 400.")
		}
	}

	if cfg.SlackWebhook == "" {
		warn("KAIZEN_SLACK_WEBHOOK empty; run summaries will not be posted.")
	} else {
		ok("KAIZEN_SLACK_WEBHOOK present")
	}

	if len(cfg.GalleryKeys) == 0 {
		warn("KAIZEN_GALLERY_KEYS empty; gallery routes are open to anyone who can reach " + cfg.GalleryAddr + ".")
	} else {
		ok(fmt.Sprintf("KAIZEN_GALLERY_KEYS has %d key(s)", len(cfg.GalleryKeys)))
	}
	return out
}
