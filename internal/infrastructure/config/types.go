package config

// DisplayConfig is the root config for display.yaml
type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	WindowTitle  string `yaml:"windowTitle"`
}
