package watch

import _ "embed"

//go:embed viewer.html
var indexHTML string
