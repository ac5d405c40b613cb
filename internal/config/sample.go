package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# LaunchDash configuration
# Search order (highest priority first):
#   ./.launchdash.yaml
#   ~/.config/launchdash/config.yaml
#   /etc/launchdash/config.yaml
# Environment variables prefixed with LAUNCHDASH_ override file settings,
# e.g. LAUNCHDASH_SERVER_PORT=9000.

version: "1.0"

dataset:
  # CSV with the columns "Launch Site", "Payload Mass (kg)",
  # "Booster Version Category" and "class"
  path: spacex_launch_dash.csv

server:
  host: 127.0.0.1
  port: 8050
  read_timeout: 10s
  write_timeout: 30s
  # Grace period for in-flight requests on shutdown
  shutdown_timeout: 5s

charts:
  width: 640
  height: 420
  # svg or png
  format: svg

output:
  # text, json, markdown, csv or yaml
  default_format: text
  # auto, always or never
  color_mode: auto
  verbose: false

ui:
  # default, high-contrast or minimal
  theme: default
`
}

// MinimalSampleConfig returns a configuration file with only essential settings
func MinimalSampleConfig() string {
	return `version: "1.0"

dataset:
  path: spacex_launch_dash.csv

server:
  host: 127.0.0.1
  port: 8050
`
}
