package provisioning

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockObserver is a test implementation of Observer that records events.
type MockObserver struct {
	mu       sync.Mutex
	events   []Event
	messages []string
	fields   map[string]string
}

func NewMockObserver() *MockObserver {
	return &MockObserver{
		events:   make([]Event, 0),
		messages: make([]string, 0),
		fields:   make(map[string]string),
	}
}

func (m *MockObserver) Printf(format string, _ ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, format)
}

func (m *MockObserver) Event(event Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

func (m *MockObserver) Progress(phase string, _, _ int) {
	m.Event(Event{Type: EventProgress, Phase: phase, Message: "progress"})
}

func (m *MockObserver) WithFields(map[string]string) Observer {
	return m
}

func (m *MockObserver) eventTypes() []EventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]EventType, 0, len(m.events))
	for _, e := range m.events {
		types = append(types, e.Type)
	}
	return types
}

type logLine struct {
	prefix string
	args   string
}

func capturingObserver(verbosity int) (*LogObserver, *[]logLine) {
	var lines []logLine
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, logLine{prefix: prefix, args: args})
	}, funcr.Options{Verbosity: verbosity})
	return NewLogObserver(log), &lines
}

func TestLogObserver_Printf(t *testing.T) {
	observer, lines := capturingObserver(0)

	observer.Printf("Template %s created", "demo")

	require.Len(t, *lines, 1)
	assert.Contains(t, (*lines)[0].args, `"msg"="Template demo created"`)
}

func TestLogObserver_Event(t *testing.T) {
	observer, lines := capturingObserver(0)

	observer.Event(Event{
		Type:     EventResourceCreated,
		Phase:    "int",
		Resource: "demo-int",
		Message:  "service created",
		Fields:   map[string]string{"type": "service"},
	})

	require.Len(t, *lines, 1)
	line := (*lines)[0].args
	assert.Contains(t, line, `"event"="resource.created"`)
	assert.Contains(t, line, `"phase"="int"`)
	assert.Contains(t, line, `"resource"="demo-int"`)
	assert.Contains(t, line, `"type"="service"`)
}

func TestLogObserver_VerboseEvents(t *testing.T) {
	quiet, quietLines := capturingObserver(0)
	quiet.Event(Event{Type: EventResourceCreating, Message: "creating service"})
	quiet.Progress("int", 1, 2)
	assert.Empty(t, *quietLines)

	verbose, verboseLines := capturingObserver(1)
	verbose.Event(Event{Type: EventResourceCreating, Message: "creating service"})
	verbose.Progress("int", 1, 2)
	require.Len(t, *verboseLines, 2)
	assert.Contains(t, (*verboseLines)[1].args, "step 1/2")
}

func TestLogObserver_WithFields(t *testing.T) {
	observer, lines := capturingObserver(0)

	scoped := observer.WithFields(map[string]string{"project": "team"})
	scoped = scoped.WithFields(map[string]string{"app": "demo"})
	scoped.Event(Event{Type: EventPhaseStarted, Phase: "template", Message: "starting"})

	require.Len(t, *lines, 1)
	line := (*lines)[0].args
	assert.Contains(t, line, `"app"="demo"`)
	assert.Contains(t, line, `"project"="team"`)
	// Sorted field order keeps output stable
	assert.Less(t, strings.Index(line, `"app"`), strings.Index(line, `"project"`))

	// The parent observer is unchanged
	observer.Event(Event{Type: EventPhaseStarted, Message: "starting"})
	assert.NotContains(t, (*lines)[1].args, "project")
}

func TestLogObserver_EventFieldsOverrideContext(t *testing.T) {
	observer, lines := capturingObserver(0)

	observer.WithFields(map[string]string{"type": "context"}).Event(Event{
		Type:    EventResourceCreated,
		Message: "created",
		Fields:  map[string]string{"type": "secret"},
	})

	assert.Contains(t, (*lines)[0].args, `"type"="secret"`)
}

func TestEventHelpers(t *testing.T) {
	observer := NewMockObserver()
	err := errors.New("boom")

	LogPhaseStart(observer, "template")
	LogResourceCreating(observer, "int", "service", "demo-int")
	LogResourceCreated(observer, "int", "service", "demo-int")
	LogResourceSkipped(observer, "int", "configmap")
	LogResourceFailed(observer, "int", "deployment", "demo-int", err)
	LogPhaseFailed(observer, "int", err)
	LogPhaseComplete(observer, "template", 1500*time.Millisecond)

	assert.Equal(t, []EventType{
		EventPhaseStarted,
		EventResourceCreating,
		EventResourceCreated,
		EventResourceSkipped,
		EventResourceFailed,
		EventPhaseFailed,
		EventPhaseCompleted,
	}, observer.eventTypes())

	assert.Equal(t, "no configmap declared, skipping", observer.events[3].Message)
	assert.Equal(t, "deployment failed: boom", observer.events[4].Message)
	assert.Equal(t, "completed in 1.5s", observer.events[6].Message)
}
