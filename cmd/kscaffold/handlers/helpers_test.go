package handlers

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/imamik/kscaffold/internal/artifact"
	"github.com/imamik/kscaffold/internal/config"
	"github.com/imamik/kscaffold/internal/platform/jenkins"
	"github.com/imamik/kscaffold/internal/platform/openshift"
	"github.com/imamik/kscaffold/internal/platform/s3"
)

// stubFactories replaces every factory variable with a test double and
// restores the originals when the test ends.
func stubFactories(t *testing.T, settings config.Settings) {
	t.Helper()

	origLoadSettings := loadSettings
	origLoadTimeouts := loadTimeouts
	origNewUUID := newUUID
	origPlatformClient := newPlatformClient
	origCIClient := newCIClient
	origObjectClient := newObjectClient
	origStdout := stdout

	t.Cleanup(func() {
		loadSettings = origLoadSettings
		loadTimeouts = origLoadTimeouts
		newUUID = origNewUUID
		newPlatformClient = origPlatformClient
		newCIClient = origCIClient
		newObjectClient = origObjectClient
		stdout = origStdout
	})

	loadSettings = func() (config.Settings, error) { return settings, nil }
	loadTimeouts = func() *config.Timeouts {
		return &config.Timeouts{HTTPRequest: time.Second, Provisioning: time.Minute}
	}
	newUUID = func() string { return "00000000-0000-0000-0000-000000000001" }
	newPlatformClient = func(config.PlatformSettings, time.Duration) (openshift.Client, error) {
		t.Fatal("unexpected platform client")
		return nil, nil
	}
	newCIClient = func(config.CISettings, time.Duration) (jenkins.Client, error) {
		t.Fatal("unexpected CI client")
		return nil, nil
	}
	newObjectClient = func(config.StoreSettings) (artifact.ObjectClient, error) {
		t.Fatal("unexpected object storage client")
		return nil, nil
	}
	stdout = io.Discard
}

// memoryObjects is an in-memory ObjectClient.
type memoryObjects struct {
	objects map[string][]byte
}

func newMemoryObjects() *memoryObjects {
	return &memoryObjects{objects: map[string][]byte{}}
}

func (m *memoryObjects) PutObject(_ context.Context, bucket, key string, data []byte) error {
	m.objects[bucket+"/"+key] = append([]byte(nil), data...)
	return nil
}

func (m *memoryObjects) GetObject(_ context.Context, bucket, key string) ([]byte, error) {
	data, ok := m.objects[bucket+"/"+key]
	if !ok {
		return nil, s3.ErrObjectNotFound
	}
	return data, nil
}
