package buildinfo

// versionAbsent is the value the version variables hold when the binary was built without ldflags
const versionAbsent = "undefined"

// appVersion should be populated at build time using ldflags
// Usage examples:
// Linux/macOS:
//
//	go build -v -ldflags="-X github.com/iulianpascalau/app-vitals-monitoring/buildinfo.appVersion=$(git describe --tags)"
var appVersion = versionAbsent

// buildInfoProvider resolves the running application's short version string from the
// build-time metadata
type buildInfoProvider struct {
	version string
}

// NewBuildInfoProvider creates a provider backed by the ldflags-populated build version
func NewBuildInfoProvider() *buildInfoProvider {
	return &buildInfoProvider{
		version: appVersion,
	}
}

// NewBuildInfoProviderWithVersion creates a provider with an explicit version, overriding the
// build-time metadata
func NewBuildInfoProviderWithVersion(version string) *buildInfoProvider {
	return &buildInfoProvider{
		version: version,
	}
}

// AppShortVersion returns the running build's short version string, false when unavailable
func (provider *buildInfoProvider) AppShortVersion() (string, bool) {
	if len(provider.version) == 0 || provider.version == versionAbsent {
		return "", false
	}

	return provider.version, true
}

// IsInterfaceNil returns true if the value under the interface is nil
func (provider *buildInfoProvider) IsInterfaceNil() bool {
	return provider == nil
}
