package scanners

import "github.com/user/aiscan/pkg/engine"

// All returns every registered scanner in execution order.
func All() []engine.Scanner {
	return []engine.Scanner{
		GatewayScanner{},
		SandboxScanner{},
		ToolsScanner{},
		SessionScanner{},
		ChannelScanner{},
		CredentialsScanner{},
		NodeScanner{},
		BrowserScanner{},
		ControlPlaneScanner{},
		MemoryScanner{},
		InjectionScanner{},
		PluginScanner{},
	}
}

// ByName returns the scanner registered under name, or nil.
func ByName(name string) engine.Scanner {
	for _, s := range All() {
		if s.Name() == name {
			return s
		}
	}
	return nil
}
