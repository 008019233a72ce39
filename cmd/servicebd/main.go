package main

import (
	"context"
	"log"

	"github.com/NVIDIA/service-b/pkg/api"
)

func main() {
	if err := api.Serve(context.Background(), api.Options{}); err != nil {
		log.Fatal(err)
	}
}
