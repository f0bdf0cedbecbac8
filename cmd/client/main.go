package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"mdb/pkg/client"
	"mdb/pkg/config"
)

const configFile = "config.env"

func main() {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	addr := flag.String("server", cfg.Client.Server, "mdb-lookup server address")
	flag.Parse()

	cli, err := client.Dial(*addr, cfg.Client.DialTimeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cli.Close()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(">> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		key := strings.TrimSpace(input)
		if key == "exit" || key == "quit" {
			break
		}

		results, err := cli.Lookup(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, line := range results {
			fmt.Println(line)
		}
		fmt.Printf("(%d matches)\n", len(results))
	}
}
