package main

import (
	"github.com/starmind/account-relay/api"
)

var envPath string = "."

func main() {
	server := api.NewServer(envPath)
	server.Start()
}
