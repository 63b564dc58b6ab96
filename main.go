package main

import (
	"employee-admin/internal/app"
)

func main() {
	app.Run()
}
