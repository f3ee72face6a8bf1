package main

import (
	"log"
	"os"
	"parkease/config"
	"parkease/helper"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Migration action is required. Use 'up', 'down', 'drop' or 'step-up'")
	}

	cfg := config.Get()

	var err error
	switch os.Args[1] {
	case "up":
		err = helper.Up(cfg)
	case "down":
		err = helper.Down(cfg)
	case "drop":
		err = helper.Drop(cfg)
	case "step-up":
		err = helper.StepUp(cfg)
	default:
		log.Fatalf("Unknown action %q. Use 'up', 'down', 'drop' or 'step-up'", os.Args[1])
	}
	if err != nil {
		log.Fatal(err)
	}
}
