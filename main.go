package main

//	@title			OpenCompute Monitor
//	@version		0.1.0
//	@description	Hardware inventory of the OpenCompute miners reporting to Weights & Biases.
//	@termsOfService	https://nunet.io/tos

//	@contact.name	Support
//	@contact.url	https://devexchange.nunet.io/
//	@contact.email	support@nunet.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @host		localhost:9998
// @BasePath	/api/v1

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"

	"gitlab.com/nunet/opencompute-monitor/cmd"
)

func main() {
	// WANDB_API_KEY may live in a .env file next to the binary
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	// Execute command-line interface; should be the last call in main()
	cmd.Execute()
}
