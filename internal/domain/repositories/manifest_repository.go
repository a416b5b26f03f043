package repositories

// ManifestRepository reads package manifests (package.json) from a working tree.
type ManifestRepository interface {
	// PackageName returns the "name" field of the manifest at path, relative to repoDir.
	PackageName(repoDir, path string) (string, error)
}
