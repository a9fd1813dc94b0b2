package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/VehanRajintha/vehan-dev/cmd"
)

func main() {
	cmd.Execute()
}
