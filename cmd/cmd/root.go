package cmd

import (
	"github.com/crackvault/crackvault/internal/env"
	"github.com/spf13/cobra"
)

func Execute() error {
	rootCmd := &cobra.Command{
		Use:   env.AppName,
		Short: env.AppName + " - password hash recovery toolkit",
	}

	rootCmd.AddCommand(
		DefineCrackCommand(),
		DefineGenerateCommand(),
		DefineIdentifyCommand(),
	)

	return rootCmd.Execute()
}
