package registry

import "sync"

// ResetDefaultForTest discards the process-wide registry so the next Default
// call rebuilds it. This is intended for use in test code only and must not
// race with concurrent readers.
func ResetDefaultForTest() {
	defaultRegistryOnce = sync.Once{}
	defaultRegistry = nil
}
