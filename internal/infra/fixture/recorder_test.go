package fixture

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/scalar-labs/relnote/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_SaveAndReplay(t *testing.T) {
	ctx := context.Background()
	live := testutil.NewMockBoardQuerier()
	live.ProjectID = "7"
	live.AddPullRequest("10", "MERGED", []string{"bugfix"}, "## Release notes", "- Fixed a crash.")
	live.AddPullRequest("11", "CLOSED", nil)

	rec := NewRecorder(live)
	id, err := rec.FindProjectID(ctx, "scalar-labs", "ScalarDB", "4.0.0")
	require.NoError(t, err)
	numbers, err := rec.ListItemPullRequests(ctx, id, "scalar-labs", "scalardb")
	require.NoError(t, err)
	for _, n := range numbers {
		_, err := rec.GetState(ctx, n, "scalar-labs", "scalardb")
		require.NoError(t, err)
	}
	_, err = rec.GetLabels(ctx, "10", "scalar-labs", "scalardb")
	require.NoError(t, err)
	_, err = rec.GetBody(ctx, "10", "scalar-labs", "scalardb")
	require.NoError(t, err)

	recorded := rec.File()
	require.Len(t, recorded.Projects, 1)
	assert.Equal(t, "ScalarDB 4.0.0", recorded.Projects[0].Title)
	require.Len(t, recorded.PullRequests, 2)

	path := filepath.Join(t.TempDir(), "recorded.yaml")
	require.NoError(t, rec.Save(path))

	replay, err := Load(path)
	require.NoError(t, err)

	replayID, err := replay.FindProjectID(ctx, "scalar-labs", "ScalarDB", "4.0.0")
	require.NoError(t, err)
	assert.Equal(t, "7", replayID)

	replayNumbers, err := replay.ListItemPullRequests(ctx, replayID, "scalar-labs", "scalardb")
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "11"}, replayNumbers)

	state, err := replay.GetState(ctx, "11", "scalar-labs", "scalardb")
	require.NoError(t, err)
	assert.Equal(t, "CLOSED", state)

	body, err := replay.GetBody(ctx, "10", "scalar-labs", "scalardb")
	require.NoError(t, err)
	assert.Equal(t, []string{"## Release notes", "- Fixed a crash."}, body)
}

func TestRecorder_PropagatesErrors(t *testing.T) {
	live := testutil.NewMockBoardQuerier()
	live.ProjectID = ""
	rec := NewRecorder(live)

	_, err := rec.FindProjectID(context.Background(), "scalar-labs", "ScalarDB", "4.0.0")

	require.Error(t, err)
	assert.Empty(t, rec.File().Projects)
}
