package version

import "github.com/redjax/ietfsys/internal/ipaddress"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Change this for new packages
	RepoUser = "redjax"
	RepoName = "ietfsys"
	RepoUrl  = "https://github.com/redjax/ietfsys"
	Package  = "ietfsys"
)

type PackageInfo struct {
	PackageName        string
	RepoUrl            string
	RepoUser           string
	RepoName           string
	PackageVersion     string
	PackageCommit      string
	PackageReleaseDate string
	// "binary" when built with -tags systemd, "text" otherwise
	AddressMode string
}

// GetPackageInfo returns a struct with information about the current package
func GetPackageInfo() PackageInfo {
	return PackageInfo{
		PackageName:        Package,
		RepoUrl:            RepoUrl,
		RepoUser:           RepoUser,
		RepoName:           RepoName,
		PackageVersion:     Version,
		PackageCommit:      Commit,
		PackageReleaseDate: Date,
		AddressMode:        ipaddress.BuildMode.String(),
	}
}
