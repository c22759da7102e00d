// cmd/main.go
package main

import (
	"go-waitlist-api/app"
)

// @title           ExpertBridge Waitlist API
// @version         1.0
// @description     Landing page and signup API for the ExpertBridge waitlist.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	app.Run()
}
