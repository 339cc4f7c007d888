package main

import (
	"fmt"
	"os"

	"github.com/crackvault/crackvault/cmd/cmd"
	"github.com/crackvault/crackvault/internal/env"
)

func main() {
	PrintLogo()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func PrintLogo() {
	fmt.Println("                          _                          _  _")
	fmt.Println("  ___  _ __   __ _   ___ | | ____   __  __ _  _   _ | || |_")
	fmt.Println(" / __|| '__| / _` | / __|| |/ /\\ \\ / / / _` || | | || || __|")
	fmt.Println("| (__ | |   | (_| || (__ |   <  \\ V / | (_| || |_| || || |_")
	fmt.Println(" \\___||_|    \\__,_| \\___||_|\\_\\  \\_/   \\__,_| \\__,_||_| \\__|")
	fmt.Println()
	fmt.Println("Password hash recovery toolkit")
	fmt.Println()
	fmt.Printf("Version:   %s\n", env.Version)
	fmt.Printf("Commit:    %s\n", env.CommitHash)
	fmt.Printf("Build Time: %s\n", env.BuildTime)
	fmt.Println(" ")
}
