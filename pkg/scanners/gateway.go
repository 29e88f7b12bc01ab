// Package scanners contains the built-in security rule modules, one file
// per module. Every scanner is a pure function of the parsed config:
// no I/O, no mutation, no dependency on any other scanner's output.
package scanners

import (
	"fmt"

	"github.com/user/aiscan/pkg/config"
	"github.com/user/aiscan/pkg/engine"
)

// GatewayScanner checks gateway authentication and network exposure:
// auth mode, bind address, token strength, Tailscale Funnel, mDNS
// disclosure, Control UI origins and trusted proxies.
type GatewayScanner struct{}

func (GatewayScanner) Name() string { return "gateway" }

func (GatewayScanner) Description() string {
	return "Gateway authentication and authorization security"
}

func (s GatewayScanner) Scan(cfg *config.Config) []engine.Finding {
	var findings []engine.Finding
	gw := cfg.Gateway

	if strEq(gw.AuthMode, "none") {
		findings = append(findings, engine.NewFinding(
			"gateway.auth_none",
			s.Name(),
			engine.SeverityCritical,
			"Gateway Authentication Disabled",
			"Gateway auth mode is set to 'none', allowing unauthenticated access",
			"Anyone can access your gateway without authentication",
			"Set gateway.auth.mode to 'token' or 'password'",
			"gateway.auth.mode",
		).WithCVE("CVE-2026-26322"))
	}

	if strEq(gw.Bind, "0.0.0.0") || strEq(gw.Bind, "0.0.0.0:0") {
		findings = append(findings, engine.NewFinding(
			"gateway.bind_public",
			s.Name(),
			engine.SeverityCritical,
			"Gateway Bound to All Interfaces",
			"Gateway is bound to 0.0.0.0, making it publicly accessible",
			"Anyone on the network can access your gateway",
			"Set gateway.bind to 'loopback' for local-only access",
			"gateway.bind",
		))
	}

	if strEq(gw.Bind, "lan") && gw.Token == nil {
		findings = append(findings, engine.NewFinding(
			"gateway.lan_no_auth",
			s.Name(),
			engine.SeverityCritical,
			"LAN-Bound Gateway Without Authentication",
			"Gateway is accessible on LAN without authentication token",
			"Anyone on your local network can access the gateway",
			"Set gateway.auth.token to a strong token (32+ characters)",
			"gateway.bind",
		))
	}

	if gw.Token != nil && len(*gw.Token) < 32 {
		findings = append(findings, engine.NewFinding(
			"gateway.weak_token",
			s.Name(),
			engine.SeverityHigh,
			"Weak Gateway Token",
			fmt.Sprintf("Gateway token is only %d characters (recommended: 32+)", len(*gw.Token)),
			"Token may be vulnerable to brute force attacks",
			"Use a token with at least 32 random characters",
			"gateway.auth.token",
		))
	}

	if boolTrue(gw.TailscaleFunnel) {
		findings = append(findings, engine.NewFinding(
			"gateway.tailscale_funnel",
			s.Name(),
			engine.SeverityCritical,
			"Tailscale Funnel Enabled",
			"Gateway is exposed via Tailscale Funnel, making it publicly accessible",
			"Your gateway is exposed to the public internet via Tailscale",
			"Disable Tailscale Funnel unless you need public access",
			"gateway.tailscale.funnel",
		).WithCVE("CVE-2026-26322"))
	}

	if strEq(gw.MDNSMode, "full") {
		findings = append(findings, engine.NewFinding(
			"gateway.mdns_full",
			s.Name(),
			engine.SeverityMedium,
			"mDNS Full Mode Enabled",
			"mDNS is in full mode, exposing cliPath and sshPort",
			"Reveals filesystem path and SSH availability to local network",
			"Set discovery.mdns.mode to 'minimal' or 'off'",
			"discovery.mdns.mode",
		))
	}

	if !strEq(gw.Bind, "loopback") && gw.ControlUIOrigins == nil {
		findings = append(findings, engine.NewFinding(
			"gateway.control_ui_no_origins",
			s.Name(),
			engine.SeverityHigh,
			"Control UI Missing allowedOrigins",
			"Non-loopback Control UI requires explicit allowedOrigins",
			"Control UI may be accessible to unauthorized origins",
			"Set gateway.controlUi.allowedOrigins to explicit origin list",
			"gateway.controlUi.allowedOrigins",
		))
	}

	if boolTrue(gw.HTTPNoAuth) {
		findings = append(findings, engine.NewFinding(
			"gateway.http_no_auth",
			s.Name(),
			engine.SeverityCritical,
			"Gateway HTTP APIs Without Auth",
			"Gateway HTTP APIs are reachable without authentication",
			"Unauthenticated access to gateway HTTP endpoints",
			"Set gateway.auth.mode to 'token' or 'password'",
			"gateway.http.noAuth",
		))
	}

	if strEq(gw.Bind, "lan") && gw.TrustedProxies == nil {
		findings = append(findings, engine.NewFinding(
			"gateway.no_trusted_proxies",
			s.Name(),
			engine.SeverityLow,
			"No Trusted Proxies Configured",
			"LAN-bound gateway without trusted proxies may have IP detection issues",
			"Client IP may not be correctly detected behind proxy",
			"Configure gateway.trustedProxies with proxy IPs",
			"gateway.trustedProxies",
		))
	}

	return findings
}

// strEq reports whether an optional string is set to exactly v.
func strEq(s *string, v string) bool {
	return s != nil && *s == v
}

// boolTrue reports whether an optional bool is set and true.
func boolTrue(b *bool) bool {
	return b != nil && *b
}
