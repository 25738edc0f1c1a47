package main

import (
	"log"

	"goflare.io/marina/config"
)

func main() {

	server, err := InitializeAPIServer()
	if err != nil {
		log.Fatal(err)
		return
	}

	if err = server.Run(config.ServerStartPort); err != nil {
		log.Fatal(err.Error())
	}

}
