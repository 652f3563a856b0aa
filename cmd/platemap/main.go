// cmd/platemap/main.go
package main

import (
	"platemap/internal/app"
	"platemap/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
