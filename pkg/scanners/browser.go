package scanners

import (
	"fmt"
	"strings"

	"github.com/user/aiscan/pkg/config"
	"github.com/user/aiscan/pkg/engine"
)

// BrowserScanner checks browser automation settings read from the raw
// tree: relay and CDP binding, download directory, profile isolation.
type BrowserScanner struct{}

func (BrowserScanner) Name() string { return "browser" }

func (BrowserScanner) Description() string {
	return "Browser automation security"
}

func (s BrowserScanner) Scan(cfg *config.Config) []engine.Finding {
	var findings []engine.Finding

	browser := rawMap(rawMap(cfg.Raw, "tools"), "browser")
	if len(browser) == 0 {
		return findings
	}

	if bind, ok := rawString(rawMap(browser, "relay"), "bind"); ok {
		if bind != "loopback" && bind != "127.0.0.1" {
			findings = append(findings, engine.NewFinding(
				"browser.relay_public",
				s.Name(),
				engine.SeverityCritical,
				"Browser Relay Bound to Non-Localhost",
				fmt.Sprintf("Browser relay bind is '%s' (not loopback)", bind),
				"Browser automation could be accessed from network",
				"Set browser.relay.bind to 'loopback'",
				"tools.browser.relay.bind",
			))
		}
	}

	cdp := rawMap(browser, "cdp")
	if rawBoolTrue(cdp, "enabled") {
		if bind, ok := rawString(cdp, "bind"); ok && bind != "loopback" && bind != "127.0.0.1" {
			findings = append(findings, engine.NewFinding(
				"browser.cdp_public",
				s.Name(),
				engine.SeverityCritical,
				"Chrome DevTools Protocol Enabled and Exposed",
				"CDP is enabled and may be accessible from network",
				"Remote attackers could control browser",
				"Set browser.cdp.bind to 'loopback' or disable CDP",
				"tools.browser.cdp",
			))
		}
	}

	if dir, ok := rawString(browser, "downloadDir"); ok {
		if dir == "" || dir == "/" || dir == `C:\` {
			findings = append(findings, engine.NewFinding(
				"browser.download_root",
				s.Name(),
				engine.SeverityHigh,
				"Browser Download Directory is Root",
				fmt.Sprintf("Download directory is '%s'", dir),
				"Downloaded files could overwrite system files",
				"Set a specific downloads folder",
				"tools.browser.downloadDir",
			))
		}
	}

	if profile, ok := rawString(browser, "profile"); ok {
		if strings.Contains(profile, "Default") || strings.Contains(profile, "default") {
			findings = append(findings, engine.NewFinding(
				"browser.default_profile",
				s.Name(),
				engine.SeverityMedium,
				"Using Default Browser Profile",
				"Browser uses the default user profile",
				"Could access bookmarks, passwords, cookies",
				"Use a dedicated profile for automation",
				"tools.browser.profile",
			))
		}
	}

	return findings
}
