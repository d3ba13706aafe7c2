package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

func showPackageInfo(cmd *cobra.Command, args []string) error {
	pkgInfo := GetPackageInfo()

	_, err := fmt.Fprintf(cmd.OutOrStdout(),
		"Program: %s\nOwner: %s\nRepository Name: %s\nRepository URL: %s\nVersion: %s\nCommit: %s\nRelease Date: %s\nAddress Mode: %s\n",
		pkgInfo.PackageName,
		pkgInfo.RepoUser,
		pkgInfo.RepoName,
		pkgInfo.RepoUrl,
		pkgInfo.PackageVersion,
		pkgInfo.PackageCommit,
		pkgInfo.PackageReleaseDate,
		pkgInfo.AddressMode,
	)

	return err
}
