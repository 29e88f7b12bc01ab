package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ChannelNames is the fixed set of chat channels the gateway can serve,
// in the order scanners iterate them.
var ChannelNames = []string{"telegram", "discord", "whatsapp", "slack", "imessage", "signal"}

// GatewayConfig holds the projected gateway section. Nil means the field
// is not configured; absence is never an error.
type GatewayConfig struct {
	Mode             *string
	Bind             *string
	Port             *int
	AuthMode         *string
	Token            *string
	TailscaleFunnel  *bool
	MDNSMode         *string
	ControlUIOrigins []string
	TrustedProxies   []string
	HTTPNoAuth       *bool
}

// ToolsConfig holds the projected tools section.
type ToolsConfig struct {
	Profile             *string
	Deny                []string
	ExecHost            *string
	ExecSecurity        *string
	ExecAsk             *string
	ExecSafeBins        []string
	ElevatedEnabled     *bool
	FSWorkspaceOnly     *bool
	WebFetchSSRFPolicy  *string
	WebSearchSSRFPolicy *string
}

// SandboxConfig holds the projected agents.defaults.sandbox section.
type SandboxConfig struct {
	Mode            *string
	WorkspaceAccess *string
	Scope           *string
}

// SessionConfig holds the projected session section.
type SessionConfig struct {
	DMScope *string
}

// ChannelConfig holds one projected channel entry.
type ChannelConfig struct {
	Enabled     *bool
	DMPolicy    *string
	GroupPolicy *string
	AllowFrom   []string
	Groups      map[string]interface{}
}

// Config is the semantic view of a gateway configuration document plus
// the retained raw tree for schema-free sections (browser, nodes,
// plugins, skills, extensions, memory). It is built once per scan and
// read-only afterwards.
type Config struct {
	Gateway  GatewayConfig
	Tools    ToolsConfig
	Sandbox  SandboxConfig
	Session  SessionConfig
	Channels map[string]ChannelConfig
	Raw      map[string]interface{}
}

// Load reads a config file and parses it, trying JSON first and YAML as
// a fallback. Both failing is fatal and the error names both causes.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(content)
}

// Parse decodes a document as JSON, falling back to YAML, and projects
// it into the semantic view.
func Parse(content []byte) (*Config, error) {
	var tree interface{}
	jsonErr := json.Unmarshal(content, &tree)
	if jsonErr != nil {
		if yamlErr := yaml.Unmarshal(content, &tree); yamlErr != nil {
			return nil, fmt.Errorf("failed to parse config as JSON (%v) or YAML (%v)", jsonErr, yamlErr)
		}
	}

	root, _ := tree.(map[string]interface{})
	if root == nil {
		root = map[string]interface{}{}
	}
	return FromTree(root), nil
}

// FromTree projects a decoded generic tree into the semantic view.
// It copies present, correctly-typed values into optional fields; any
// absent or mis-shaped value stays unset. Unknown sections are kept
// verbatim in Raw, unvalidated.
func FromTree(tree map[string]interface{}) *Config {
	cfg := &Config{
		Channels: make(map[string]ChannelConfig),
		Raw:      tree,
	}

	if gw := getMap(tree, "gateway"); gw != nil {
		auth := getMap(gw, "auth")
		cfg.Gateway = GatewayConfig{
			Mode:             getString(gw, "mode"),
			Bind:             getString(gw, "bind"),
			Port:             getInt(gw, "port"),
			AuthMode:         getString(auth, "mode"),
			Token:            getString(auth, "token"),
			TailscaleFunnel:  getBool(getMap(gw, "tailscale"), "funnel"),
			MDNSMode:         getString(getMap(getMap(gw, "discovery"), "mdns"), "mode"),
			ControlUIOrigins: getStringSlice(getMap(gw, "controlUi"), "allowedOrigins"),
			TrustedProxies:   getStringSlice(gw, "trustedProxies"),
			HTTPNoAuth:       getBool(getMap(gw, "http"), "noAuth"),
		}
	}

	if tl := getMap(tree, "tools"); tl != nil {
		exec := getMap(tl, "exec")
		cfg.Tools = ToolsConfig{
			Profile:             getString(tl, "profile"),
			Deny:                getStringSlice(tl, "deny"),
			ExecHost:            getString(exec, "host"),
			ExecSecurity:        getString(exec, "security"),
			ExecAsk:             getString(exec, "ask"),
			ExecSafeBins:        getStringSlice(exec, "safeBins"),
			ElevatedEnabled:     getBool(getMap(tl, "elevated"), "enabled"),
			FSWorkspaceOnly:     getBool(getMap(tl, "fs"), "workspaceOnly"),
			WebFetchSSRFPolicy:  getString(getMap(tl, "webFetch"), "ssrfPolicy"),
			WebSearchSSRFPolicy: getString(getMap(tl, "webSearch"), "ssrfPolicy"),
		}
	}

	if sb := getMap(getMap(getMap(tree, "agents"), "defaults"), "sandbox"); sb != nil {
		cfg.Sandbox = SandboxConfig{
			Mode:            getString(sb, "mode"),
			WorkspaceAccess: getString(sb, "workspaceAccess"),
			Scope:           getString(sb, "scope"),
		}
	}

	if sess := getMap(tree, "session"); sess != nil {
		cfg.Session = SessionConfig{DMScope: getString(sess, "dmScope")}
	}

	channels := getMap(tree, "channels")
	for _, name := range ChannelNames {
		ch := getMap(channels, name)
		if ch == nil {
			continue
		}
		cfg.Channels[name] = ChannelConfig{
			Enabled:     getBool(ch, "enabled"),
			DMPolicy:    getString(ch, "dmPolicy"),
			GroupPolicy: getString(ch, "groupPolicy"),
			AllowFrom:   getStringSlice(ch, "allowFrom"),
			Groups:      getMap(ch, "groups"),
		}
	}

	return cfg
}

// EnabledChannelCount returns how many projected channels are explicitly enabled.
func (c *Config) EnabledChannelCount() int {
	n := 0
	for _, ch := range c.Channels {
		if ch.Enabled != nil && *ch.Enabled {
			n++
		}
	}
	return n
}

// get-or-absent helpers. Every accessor tolerates nil maps and wrong
// types, degrading to "unset" per the permissive schema policy.

func getMap(m map[string]interface{}, key string) map[string]interface{} {
	if m == nil {
		return nil
	}
	child, _ := m[key].(map[string]interface{})
	return child
}

func getString(m map[string]interface{}, key string) *string {
	if m == nil {
		return nil
	}
	if s, ok := m[key].(string); ok {
		return &s
	}
	return nil
}

func getBool(m map[string]interface{}, key string) *bool {
	if m == nil {
		return nil
	}
	if b, ok := m[key].(bool); ok {
		return &b
	}
	return nil
}

func getInt(m map[string]interface{}, key string) *int {
	if m == nil {
		return nil
	}
	switch v := m[key].(type) {
	case float64:
		n := int(v)
		return &n
	case int:
		n := v
		return &n
	}
	return nil
}

// getStringSlice returns a non-nil slice when the key holds an array,
// keeping only string elements. Nil means the key was absent or not an
// array, which callers treat as unset.
func getStringSlice(m map[string]interface{}, key string) []string {
	if m == nil {
		return nil
	}
	arr, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
