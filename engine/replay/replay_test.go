package replay

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/invaders/engine/core"
	"github.com/1siamBot/invaders/engine/systems"
)

func TestRecordRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := Record{Frame: 1<<40 + 7, Input: core.InputOf(core.ActionFire, core.ActionMoveLeft)}
	require.NoError(t, in.Encode(&buf))
	assert.Equal(t, recordSize, buf.Len())

	var out Record
	require.NoError(t, out.Decode(&buf))
	assert.Equal(t, in, out)
	assert.ErrorIs(t, out.Decode(&buf), io.EOF)
}

func TestRecorderAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.rpl")
	rec, err := NewRecorder(path)
	require.NoError(t, err)

	require.NoError(t, rec.Record(1, core.InputOf(core.ActionFire)))
	require.NoError(t, rec.Record(2, 0))
	require.NoError(t, rec.Record(5, core.InputOf(core.ActionMoveRight)))
	assert.Error(t, rec.Record(5, core.InputOf(core.ActionFire)), "frames must increase")
	require.NoError(t, rec.Close())

	rp, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, rp.Records, 2, "empty input is not stored")
	assert.Equal(t, core.InputOf(core.ActionFire), rp.InputAt(1))
	assert.Equal(t, core.Input(0), rp.InputAt(2))
	assert.Equal(t, core.InputOf(core.ActionMoveRight), rp.InputAt(5))
	assert.Equal(t, uint64(5), rp.LastFrame())
}

func TestLoadTruncated(t *testing.T) {
	var buf bytes.Buffer
	rec := Record{Frame: 3, Input: core.InputOf(core.ActionFire)}
	require.NoError(t, rec.Encode(&buf))
	require.NoError(t, rec.Encode(&buf))

	path := filepath.Join(t.TempDir(), "cut.rpl")
	require.NoError(t, os.WriteFile(path, buf.Bytes()[:recordSize+4], 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = Load(filepath.Join(t.TempDir(), "missing.rpl"))
	assert.Error(t, err)
}

func TestEmptyReplay(t *testing.T) {
	rp, err := Read(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Empty(t, rp.Records)
	assert.Zero(t, rp.LastFrame())
}

func TestPlayReproducesGame(t *testing.T) {
	script := func(frame uint64) core.Input {
		switch {
		case frame%300 < 20:
			return core.InputOf(core.ActionMoveRight)
		case frame%7 == 0:
			return 0
		}
		return core.InputOf(core.ActionFire)
	}

	// live game, recorded in memory
	live := systems.NewStandardWorld(core.DefaultRules())
	liveLoop := core.NewGameLoop(live, 50, nil)
	rec := &Replay{}
	for liveLoop.Frame() < 2000 {
		in := script(liveLoop.Frame() + 1)
		require.NoError(t, rec.Record(liveLoop.Frame()+1, in))
		if !liveLoop.Step(in) {
			break
		}
	}

	var buf bytes.Buffer
	for i := range rec.Records {
		require.NoError(t, rec.Records[i].Encode(&buf))
	}
	rp, err := Read(&buf)
	require.NoError(t, err)

	replayed := systems.NewStandardWorld(core.DefaultRules())
	n := rp.Play(core.NewGameLoop(replayed, 50, nil), liveLoop.Frame())
	assert.Equal(t, liveLoop.Frame(), n)
	assert.Equal(t, live.Score(), replayed.Score())
	assert.Equal(t, live.State(), replayed.State())

	var want, got []core.Rect
	for _, e := range live.Entities() {
		want = append(want, e.Bounds())
	}
	for _, e := range replayed.Entities() {
		got = append(got, e.Bounds())
	}
	assert.Equal(t, want, got)
}
