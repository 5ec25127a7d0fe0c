package config

import (
	"bytes"
	"text/template"
)

var configFileTmpl = template.Must(template.New("config").Parse(`# Radiocarbon configurations

# The name of the workspace.
# This is the name that will be displayed in the UI.
name: "{{ .Name }}"

# Logging configuration.
log:
  # Log format to use. Valid values are "json", "logfmt", and "text".
  format: "{{ .Log.Format }}"
  # Time format for the log "timestamp" field.
  # Should be described in Golang's time format.
  time_format: "{{ .Log.TimeFormat }}"
  # Path to the log file. Leave empty to write to stderr.
  #path: "{{ .Log.Path }}"

# The database configuration.
db:
  # The database driver to use.
  # Valid values are "sqlite" and "postgres".
  driver: "{{ .DB.Driver }}"
  # The database data source name.
  # For example "file:/path/to/radiocarbon.db?_pragma=foreign_keys(1)"
  data_source: "{{ .DB.DataSource }}"

# The login boundary configuration.
auth:
  # The path to the session token signing key.
  key_path: "{{ .Auth.KeyPath }}"

  # The credential table logins are checked against.
  # Passwords are stored as bcrypt hashes.
  credentials:
  {{- range .Auth.Credentials }}
    - email: "{{ .Email }}"
      password_hash: "{{ .PasswordHash }}"
      role: "{{ .Role }}"
  {{- end }}
`))

// newConfigFile returns the YAML rendering of the configuration.
func newConfigFile(cfg *Config) string {
	var b bytes.Buffer
	if err := configFileTmpl.Execute(&b, cfg); err != nil {
		panic(err)
	}
	return b.String()
}
