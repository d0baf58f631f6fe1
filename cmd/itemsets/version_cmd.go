package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in itemsets' version
	VersionMajor = 0
	// VersionMinor is the minor number in itemsets' version
	VersionMinor = 1
	// VersionPatch is the patch number in itemsets' version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of itemsets",
		Long:  `All software has versions. This is itemsets'`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "itemsets v%d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}
