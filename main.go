package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/ashishmaurya/portfolio/internal/cli"
)

func main() {
	cli.Execute()
}
