package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/navbuilder/internal/events"
	"git.home.luguber.info/inful/navbuilder/internal/navigation"
	"git.home.luguber.info/inful/navbuilder/internal/store"
)

type staticSource struct {
	pages map[string]*navigation.Page
	err   error
}

func (s staticSource) DiscoverPages() (map[string]*navigation.Page, error) {
	return s.pages, s.err
}

func collectEvents(bus *events.Bus) *[]string {
	var names []string
	record := func(e events.Event) error {
		names = append(names, e.Name())
		return nil
	}
	bus.Subscribe(events.EventBuildStarted, record)
	bus.Subscribe(events.EventBuildCompleted, record)
	bus.Subscribe(events.EventBuildFailed, record)
	return &names
}

func TestRebuild_StoresTreeAndPublishesLifecycle(t *testing.T) {
	sink := store.NewMemoryStore()
	bus := events.NewBus()
	names := collectEvents(bus)

	var completed events.BuildCompleted
	bus.Subscribe(events.EventBuildCompleted, func(e events.Event) error {
		completed = e.(events.BuildCompleted)
		return nil
	})

	d := New(Options{
		Source: staticSource{pages: map[string]*navigation.Page{
			"index.html":       {Title: "Home"},
			"about/index.html": {Title: "About"},
		}},
		Builder: navigation.NewBuilder(navigation.Options{}, sink, nil),
		Bus:     bus,
	})

	require.NoError(t, d.rebuild(context.Background(), "manual"))

	assert.Equal(t, []string{"BuildStarted", "BuildCompleted"}, *names)
	assert.NotEmpty(t, completed.BuildID)
	assert.Equal(t, 2, completed.Pages)

	data, err := sink.Get(context.Background(), navigation.DefaultMetadataKey)
	require.NoError(t, err)
	var tree []*navigation.Node
	require.NoError(t, json.Unmarshal(data, &tree))
	require.Len(t, tree, 2)
	assert.Equal(t, "Home", tree[0].Title)
}

func TestRebuild_DiscoveryFailurePublishesBuildFailed(t *testing.T) {
	bus := events.NewBus()
	names := collectEvents(bus)

	d := New(Options{
		Source:  staticSource{err: errors.New("content root gone")},
		Builder: navigation.NewBuilder(navigation.Options{}, nil, nil),
		Bus:     bus,
	})

	err := d.rebuild(context.Background(), "watch")
	assert.ErrorContains(t, err, "content root gone")
	assert.Equal(t, []string{"BuildStarted", "BuildFailed"}, *names)
}

func TestRebuild_NilBusIsAllowed(t *testing.T) {
	d := New(Options{
		Source:  staticSource{pages: map[string]*navigation.Page{"index.html": {Title: "Home"}}},
		Builder: navigation.NewBuilder(navigation.Options{}, nil, nil),
	})

	assert.NoError(t, d.rebuild(context.Background(), "manual"))
}
