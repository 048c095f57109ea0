// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package workspace_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/panelkit/internal/entity"
	"github.com/taibuivan/panelkit/internal/platform/apperr"
	"github.com/taibuivan/panelkit/internal/widget"
	"github.com/taibuivan/panelkit/internal/workspace"
)

var desk = workspace.Instance{Session: "session-1", Workspace: "desk"}

type fixture struct {
	service *workspace.Service
	repo    *workspace.MemoryRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	widgets := widget.NewRegistry()
	require.NoError(t, widget.RegisterBuiltins(widgets))
	require.NoError(t, widgets.Derive("WidgetX", widget.ClassPanel, widget.Config{widget.KeyTitle: "Widget X"}))
	require.NoError(t, widgets.Derive("WidgetY", widget.ClassPanel, widget.Config{widget.KeyTitle: "Widget Y"}))

	repo := workspace.NewMemoryRepository()
	service := workspace.NewService(widgets, repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, service.Register(workspace.Options{Name: "desk", DashboardHTML: "<p>hi</p>"}))

	return &fixture{service: service, repo: repo}
}

// itemIDs lists the tab ids of a configured workspace.
func itemIDs(t *testing.T, f *fixture, instance workspace.Instance) []string {
	t.Helper()

	node, err := f.service.Configure(context.Background(), instance)
	require.NoError(t, err)

	ids := make([]string, 0, len(node.Items))
	for _, item := range node.Items {
		ids = append(ids, item.ItemID)
	}
	return ids
}

func load(t *testing.T, f *fixture, name, typeName string) {
	t.Helper()

	_, err := f.service.LoadComponent(context.Background(), desk, name, typeName, nil)
	require.NoError(t, err)
}

/*
TestConfigure_DashboardOnly renders the synthesized dashboard for a fresh instance.
*/
func TestConfigure_DashboardOnly(t *testing.T) {
	f := newFixture(t)

	node, err := f.service.Configure(context.Background(), desk)
	require.NoError(t, err)

	assert.Equal(t, workspace.ClassWorkspace, node.Class)
	assert.Equal(t, false, node.Config[workspace.KeyAlwaysReloadFirstTab])
	require.Len(t, node.Items, 1)

	dashboard := node.Items[0]
	assert.Equal(t, "dashboard", dashboard.ItemID)
	assert.Equal(t, "Dashboard", dashboard.Title)
	assert.Equal(t, "fit", dashboard.Layout)
	assert.False(t, dashboard.Closable)
	require.Len(t, dashboard.Items, 1)
	assert.Equal(t, "<p>hi</p>", dashboard.Items[0].Config[widget.KeyHTML])
}

/*
TestLoadComponent_AppendsToEmptyStore yields [dashboard, cmp0] with a lazy second tab.
*/
func TestLoadComponent_AppendsToEmptyStore(t *testing.T) {
	f := newFixture(t)

	content, err := f.service.LoadComponent(context.Background(), desk, "cmp0", "WidgetX", nil)
	require.NoError(t, err)
	assert.Equal(t, "cmp0", content.ItemID)
	assert.Equal(t, "Widget X", content.Title)

	node, err := f.service.Configure(context.Background(), desk)
	require.NoError(t, err)
	require.Len(t, node.Items, 2)

	tab := node.Items[1]
	assert.Equal(t, "cmp0", tab.ItemID)
	assert.Equal(t, "Widget X", tab.Title)
	assert.True(t, tab.Closable)
	assert.Empty(t, tab.Items)
	assert.NotNil(t, tab.Items)
}

/*
TestLoadComponent_ReplacesInPlace keeps position and count when a name is reused.
*/
func TestLoadComponent_ReplacesInPlace(t *testing.T) {
	f := newFixture(t)

	load(t, f, "cmp0", "WidgetX")
	load(t, f, "cmp1", "WidgetX")
	load(t, f, "cmp0", "WidgetY")

	node, err := f.service.Configure(context.Background(), desk)
	require.NoError(t, err)
	require.Len(t, node.Items, 3)
	assert.Equal(t, "cmp0", node.Items[1].ItemID)
	assert.Equal(t, "Widget Y", node.Items[1].Title)
	assert.Equal(t, "cmp1", node.Items[2].ItemID)

	tabs, _, err := f.repo.Load(context.Background(), desk.Key())
	require.NoError(t, err)
	assert.Equal(t, "WidgetY", tabs[0].ComponentType)
}

/*
TestLoadComponent_InsertsByOrdinal places an unseen lower ordinal between stored tabs.
*/
func TestLoadComponent_InsertsByOrdinal(t *testing.T) {
	f := newFixture(t)

	load(t, f, "cmp0", "WidgetX")
	load(t, f, "cmp5", "WidgetX")
	load(t, f, "cmp2", "WidgetY")

	assert.Equal(t, []string{"dashboard", "cmp0", "cmp2", "cmp5"}, itemIDs(t, f, desk))
}

/*
TestLoadComponent_ConfigOverridesTitle instantiates with the delivered config.
*/
func TestLoadComponent_ConfigOverridesTitle(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.LoadComponent(context.Background(), desk, "cmp0", "WidgetX", widget.Config{widget.KeyTitle: "Pinned"})
	require.NoError(t, err)

	tabs, _, err := f.repo.Load(context.Background(), desk.Key())
	require.NoError(t, err)
	require.Len(t, tabs, 1)
	assert.Equal(t, "Pinned", tabs[0].Title)
	assert.Equal(t, widget.Config{widget.KeyTitle: "Pinned"}, tabs[0].Config)
}

/*
TestLoadComponent_NameAndTypeWin keeps the tab identity when config carries name or type.
*/
func TestLoadComponent_NameAndTypeWin(t *testing.T) {
	f := newFixture(t)

	node, err := f.service.LoadComponent(context.Background(), desk, "cmp0", "WidgetX", widget.Config{
		widget.KeyName: "custom",
		widget.KeyType: "WidgetY",
	})
	require.NoError(t, err)

	assert.Equal(t, "cmp0", node.ItemID)
	assert.Equal(t, "cmp0", node.Config[widget.KeyName])
	assert.Equal(t, "WidgetX", node.Config[widget.KeyType])
	assert.Equal(t, "Widget X", node.Title)
	assert.Equal(t, []string{"dashboard", "cmp0"}, itemIDs(t, f, desk))
}

/*
TestLoadComponent_UnknownType fails and leaves the store unchanged.
*/
func TestLoadComponent_UnknownType(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	load(t, f, "cmp0", "WidgetX")

	_, before, err := f.repo.Load(ctx, desk.Key())
	require.NoError(t, err)

	_, err = f.service.LoadComponent(ctx, desk, "cmp1", "WidgetZ", nil)
	require.Error(t, err)

	var unknown *widget.UnknownComponentError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "WidgetX", unknown.Suggestion)
	assert.Equal(t, apperr.CodeUnknownComponent, apperr.As(err).Code)

	tabs, after, err := f.repo.Load(ctx, desk.Key())
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Len(t, tabs, 1)
}

/*
TestLoadComponent_InvalidName rejects names without a numeric ordinal.
*/
func TestLoadComponent_InvalidName(t *testing.T) {
	for _, name := range []string{"", "tab1", "cmp", "cmp-1", "cmp01", "cmp1x"} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.service.LoadComponent(context.Background(), desk, name, "WidgetX", nil)
			require.Error(t, err)
			assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
		})
	}
}

/*
TestRemoveAllTabs keeps only the dashboard.
*/
func TestRemoveAllTabs(t *testing.T) {
	f := newFixture(t)
	load(t, f, "cmp0", "WidgetX")
	load(t, f, "cmp1", "WidgetY")

	require.NoError(t, f.service.RemoveAllTabs(context.Background(), desk))
	assert.Equal(t, []string{"dashboard"}, itemIDs(t, f, desk))

	// Ordinals restart from an empty store
	load(t, f, "cmp0", "WidgetY")
	assert.Equal(t, []string{"dashboard", "cmp0"}, itemIDs(t, f, desk))
}

/*
TestRemoveTab removes present tabs and ignores absent ones.
*/
func TestRemoveTab(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Absent on an empty store: no error, no write
	require.NoError(t, f.service.RemoveTab(ctx, desk, "cmp0"))
	_, version, err := f.repo.Load(ctx, desk.Key())
	require.NoError(t, err)
	assert.Zero(t, version)

	load(t, f, "cmp0", "WidgetX")
	load(t, f, "cmp1", "WidgetY")

	require.NoError(t, f.service.RemoveTab(ctx, desk, "cmp0"))
	require.NoError(t, f.service.RemoveTab(ctx, desk, "cmp0"))
	assert.Equal(t, []string{"dashboard", "cmp1"}, itemIDs(t, f, desk))

	// The dashboard is never stored, so it cannot be removed
	require.NoError(t, f.service.RemoveTab(ctx, desk, "dashboard"))
	assert.Equal(t, []string{"dashboard", "cmp1"}, itemIDs(t, f, desk))
}

/*
TestTabContent serves lazy tab content without writing.
*/
func TestTabContent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	load(t, f, "cmp0", "WidgetX")
	load(t, f, "cmp1", "WidgetY")

	_, before, err := f.repo.Load(ctx, desk.Key())
	require.NoError(t, err)

	content, err := f.service.TabContent(ctx, desk, "cmp1")
	require.NoError(t, err)
	assert.Equal(t, "cmp1", content.ItemID)
	assert.Equal(t, "Widget Y", content.Title)

	dashboard, err := f.service.TabContent(ctx, desk, "dashboard")
	require.NoError(t, err)
	assert.Equal(t, "dashboard", dashboard.ItemID)

	_, err = f.service.TabContent(ctx, desk, "cmp9")
	assert.Equal(t, apperr.CodeNotFound, apperr.As(err).Code)

	_, after, err := f.repo.Load(ctx, desk.Key())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

/*
TestConfigure_StaleStoredType reports a stored type that is no longer registered.
*/
func TestConfigure_StaleStoredType(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.repo.Save(context.Background(), desk.Key(), []workspace.Descriptor{
		{Name: "cmp0", ComponentType: "Retired", Title: "Retired", Closable: true},
	}, 0))

	_, err := f.service.Configure(context.Background(), desk)

	var configErr *entity.ConfigurationError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, apperr.CodeConfiguration, apperr.As(err).Code)
}

/*
TestInstances_AreIsolated keeps sessions and workspaces apart.
*/
func TestInstances_AreIsolated(t *testing.T) {
	f := newFixture(t)
	load(t, f, "cmp0", "WidgetX")

	other := workspace.Instance{Session: "session-2", Workspace: "desk"}
	assert.Equal(t, []string{"dashboard"}, itemIDs(t, f, other))

	_, err := f.service.Configure(context.Background(), workspace.Instance{Session: "session-1", Workspace: "missing"})
	assert.Equal(t, apperr.CodeNotFound, apperr.As(err).Code)
}

/*
TestExtendItem wraps content eagerly only at position 0.
*/
func TestExtendItem(t *testing.T) {
	panel, err := widget.NewPanel(widget.Config{widget.KeyName: "cmp3", widget.KeyTitle: "Notes"})
	require.NoError(t, err)

	arena := widget.NewArena()
	arena.Put("cmp3", panel)
	raw := panel.Node()

	tests := []struct {
		name         string
		index        int
		wantClosable bool
		wantItems    int
	}{
		{"first", 0, false, 1},
		{"second", 1, true, 0},
		{"later", 4, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := workspace.ExtendItem(arena, raw, tt.index)

			assert.Equal(t, "cmp3", wrapped.ItemID)
			assert.Equal(t, "Notes", wrapped.Title)
			assert.Equal(t, "fit", wrapped.Layout)
			assert.Equal(t, tt.wantClosable, wrapped.Closable)
			assert.Len(t, wrapped.Items, tt.wantItems)
		})
	}

	assert.Empty(t, workspace.ExtendItem(widget.NewArena(), raw, 1).Title)
}

/*
TestOrdinal parses tab names.
*/
func TestOrdinal(t *testing.T) {
	assert.Equal(t, 0, workspace.Ordinal("cmp0"))
	assert.Equal(t, 12, workspace.Ordinal("cmp12"))
	assert.True(t, workspace.IsTabName("cmp12"))
	assert.False(t, workspace.IsTabName("cmp+1"))
}
