// @title        Employee API
// @version      1.0
// @description  CRUD and lookup endpoints for employees and students.
// @BasePath     /
package main

import (
	"os"

	"github.com/testdriven/employee-api/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
