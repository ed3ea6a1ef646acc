package main

import (
	_ "time/tzdata" // timezone from config must resolve on hosts without zoneinfo

	"github.com/pfrederiksen/campus-events/internal/cli"
)

func main() {
	cli.Execute()
}
