package main

import (
	"log"

	"github.com/spigell/hf-uploader/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
