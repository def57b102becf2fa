// Command corrosim-server serves the simulation API over HTTP.
package main

import (
	"flag"
	"log"

	"github.com/dd0wney/cluso-corrosim/pkg/api"
	"github.com/dd0wney/cluso-corrosim/pkg/metrics"
)

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	flag.Parse()

	server := api.NewServer(*port, metrics.DefaultRegistry())
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
