package config

import _ "embed"

//go:embed defaults.json
var defaultsJSON []byte
