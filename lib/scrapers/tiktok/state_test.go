package tiktok

import (
	"context"
	"fmt"
	"testing"

	"tiktok-discover/lib/testutil"

	"github.com/stretchr/testify/require"
)

func pageWithState(state string) string {
	return fmt.Sprintf(
		`<html><head><title>Discover</title></head><body><div id="app"></div><script id="SIGI_STATE" type="application/json">%s</script></body></html>`,
		state,
	)
}

func TestLocateStateMissingScript(t *testing.T) {
	cleanup := testutil.Setup(t, "scrapers/tiktok")
	defer cleanup()

	_, ok := LocateState(`<html><body><p>nothing here</p></body></html>`)
	require.False(t, ok)

	records := NewParser(nil).ParseVideos(context.Background(), `<html></html>`, "travel")
	require.NotNil(t, records)
	require.Empty(t, records)
}

func TestLocateStateEmptyScript(t *testing.T) {
	_, ok := LocateState(pageWithState(""))
	require.False(t, ok)
}

func TestLocateStateMalformedJSON(t *testing.T) {
	_, ok := LocateState(pageWithState(`{"ItemModule": oops`))
	require.False(t, ok)
}

func TestLocateStateNoItems(t *testing.T) {
	state, ok := LocateState(pageWithState(`{"ItemModule": {}}`))
	require.True(t, ok)
	require.False(t, state.HasItems())

	records := NewParser(nil).ExtractRecords(context.Background(), state, "travel")
	require.NotNil(t, records)
	require.Empty(t, records)
}

func TestLocateStateItemTableNotAMapping(t *testing.T) {
	state, ok := LocateState(pageWithState(`{"ItemModule": [1, 2, 3]}`))
	require.True(t, ok)
	require.False(t, state.HasItems())
}

func TestItemOrderFollowsDocument(t *testing.T) {
	state, ok := LocateState(pageWithState(
		`{"ItemModule": {"9": {}, "1": {}, "5": {}}}`,
	))
	require.True(t, ok)
	require.Equal(t, []string{"9", "1", "5"}, state.ItemIDs())
}

func TestItemBodyNotAnObject(t *testing.T) {
	state, ok := LocateState(pageWithState(
		`{"ItemModule": {"1": "garbage", "2": null, "3": {}}}`,
	))
	require.True(t, ok)

	_, err := state.Item("1")
	require.Error(t, err)
	_, err = state.Item("2")
	require.Error(t, err)
	_, err = state.Item("3")
	require.NoError(t, err)
}

func TestMissingMusicAndUserTables(t *testing.T) {
	state, ok := LocateState(pageWithState(`{"ItemModule": {"1": {}}}`))
	require.True(t, ok)

	require.Nil(t, state.Music("anything"))
	require.Nil(t, state.User("anybody"))
	require.Nil(t, state.UserStats("anybody"))
}
