package testsCommon

// BuildInfoStub -
type BuildInfoStub struct {
	AppShortVersionHandler func() (string, bool)
}

// AppShortVersion -
func (stub *BuildInfoStub) AppShortVersion() (string, bool) {
	if stub.AppShortVersionHandler != nil {
		return stub.AppShortVersionHandler()
	}

	return "", false
}

// IsInterfaceNil -
func (stub *BuildInfoStub) IsInterfaceNil() bool {
	return stub == nil
}
