package main

import "github.com/thereayou/blabla/cmd/server"

func main() {
	s := server.NewServer()
	s.Run()
}
