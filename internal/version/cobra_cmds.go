package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSelfCommand creates the 'self' parent command, which adds some of the other
// commands in this file as subcommands.
//
// When adding this as a subcommand to another CLI, use:
//
//	cmd.AddCommand(version.NewSelfCommand())
func NewSelfCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "self",
		Short: "Inspect this ietfsys build",
		Long:  "Show how this ietfsys binary was built, e.g. its version and address storage mode.",
	}

	// Attach 'info' as a subcommand
	cmd.AddCommand(NewPackageInfoCommand())
	// Attach 'version' as a subcommand
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// NewVersionCommand adds a 'version' subcommand, which prints the package's version.
//
// When adding this as a subcommand to another CLI, use:
//
//	cmd.AddCommand(version.NewVersionCommand())
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print CLI's version",
		RunE: func(cmd *cobra.Command, args []string) error {
			pkgInfo := GetPackageInfo()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "package: %s version:%s commit:%s date:%s\n",
				pkgInfo.PackageName,
				pkgInfo.PackageVersion,
				pkgInfo.PackageCommit,
				pkgInfo.PackageReleaseDate,
			)
			return err
		},
	}
}

// NewPackageInfoCommand adds a subcommand 'info' and prints info about the package.
//
// When adding this as a subcommand to another CLI, use:
//
//	cmd.AddCommand(version.NewPackageInfoCommand())
func NewPackageInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show info about the current package",
		RunE:  showPackageInfo,
	}
}
