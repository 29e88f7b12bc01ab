package config

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// sectionSchema describes the expected shapes of the known sections.
// It is advisory only: the projection stays permissive regardless, and
// violations are surfaced as warnings, never as scan failures.
const sectionSchema = `{
  "type": "object",
  "properties": {
    "gateway": {
      "type": "object",
      "properties": {
        "mode": {"type": "string"},
        "bind": {"type": "string"},
        "port": {"type": "integer"},
        "auth": {
          "type": "object",
          "properties": {
            "mode": {"type": "string"},
            "token": {"type": "string"}
          }
        },
        "tailscale": {
          "type": "object",
          "properties": {"funnel": {"type": "boolean"}}
        },
        "controlUi": {
          "type": "object",
          "properties": {
            "allowedOrigins": {"type": "array", "items": {"type": "string"}}
          }
        },
        "trustedProxies": {"type": "array", "items": {"type": "string"}},
        "http": {
          "type": "object",
          "properties": {"noAuth": {"type": "boolean"}}
        }
      }
    },
    "tools": {
      "type": "object",
      "properties": {
        "profile": {"type": "string"},
        "deny": {"type": "array", "items": {"type": "string"}},
        "exec": {
          "type": "object",
          "properties": {
            "host": {"type": "string"},
            "security": {"type": "string"},
            "ask": {"type": "string"},
            "safeBins": {"type": "array", "items": {"type": "string"}}
          }
        },
        "elevated": {
          "type": "object",
          "properties": {"enabled": {"type": "boolean"}}
        },
        "fs": {
          "type": "object",
          "properties": {"workspaceOnly": {"type": "boolean"}}
        },
        "webFetch": {
          "type": "object",
          "properties": {"ssrfPolicy": {"type": "string"}}
        },
        "webSearch": {
          "type": "object",
          "properties": {"ssrfPolicy": {"type": "string"}}
        }
      }
    },
    "agents": {
      "type": "object",
      "properties": {
        "defaults": {
          "type": "object",
          "properties": {
            "sandbox": {
              "type": "object",
              "properties": {
                "mode": {"type": "string"},
                "workspaceAccess": {"type": "string"},
                "scope": {"type": "string"}
              }
            }
          }
        }
      }
    },
    "session": {
      "type": "object",
      "properties": {"dmScope": {"type": "string"}}
    },
    "channels": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "properties": {
          "enabled": {"type": "boolean"},
          "dmPolicy": {"type": "string"},
          "groupPolicy": {"type": "string"},
          "allowFrom": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

// Lint validates the raw tree against the known-section schema and
// returns one message per violation.
func Lint(tree map[string]interface{}) ([]string, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(sectionSchema),
		gojsonschema.NewGoLoader(tree),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var warnings []string
	for _, desc := range result.Errors() {
		warnings = append(warnings, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return warnings, nil
}
