package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/1siamBot/invaders/engine/core"
)

// Replay records and plays back the per-frame input of a game. Frames with
// no input held are not stored.
type Replay struct {
	Records []Record
	byFrame map[uint64]core.Input
	file    *os.File
	writer  *bufio.Writer
}

// NewRecorder creates a replay file for recording
func NewRecorder(path string) (*Replay, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create replay %s: %w", path, err)
	}
	return &Replay{
		file:   f,
		writer: bufio.NewWriter(f),
	}, nil
}

// Record writes the input of a frame. Frames must be recorded in
// increasing order.
func (r *Replay) Record(frame uint64, in core.Input) error {
	if in == 0 {
		return nil
	}
	if n := len(r.Records); n > 0 && frame <= r.Records[n-1].Frame {
		return fmt.Errorf("replay: frame %d recorded after frame %d", frame, r.Records[n-1].Frame)
	}
	rec := Record{Frame: frame, Input: in}
	r.Records = append(r.Records, rec)
	if r.byFrame != nil {
		r.byFrame[frame] = in
	}
	if r.writer == nil {
		return nil
	}
	return rec.Encode(r.writer)
}

// Close flushes and closes the replay file
func (r *Replay) Close() error {
	var err error
	if r.writer != nil {
		err = r.writer.Flush()
	}
	if r.file != nil {
		if cerr := r.file.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Load loads a replay file
func Load(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay %s: %w", path, err)
	}
	defer f.Close()

	rp, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("read replay %s: %w", path, err)
	}
	return rp, nil
}

// Read decodes records until the end of rd
func Read(rd io.Reader) (*Replay, error) {
	rp := &Replay{byFrame: make(map[uint64]core.Input)}
	for {
		var rec Record
		err := rec.Decode(rd)
		if errors.Is(err, io.EOF) {
			return rp, nil
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(rp.Records), err)
		}
		rp.Records = append(rp.Records, rec)
		rp.byFrame[rec.Frame] = rec.Input
	}
}

// InputAt returns the input held on frame during playback
func (r *Replay) InputAt(frame uint64) core.Input {
	if r.byFrame == nil {
		r.byFrame = make(map[uint64]core.Input, len(r.Records))
		for _, rec := range r.Records {
			r.byFrame[rec.Frame] = rec.Input
		}
	}
	return r.byFrame[frame]
}

// LastFrame returns the frame of the final record, or 0 for an empty replay
func (r *Replay) LastFrame() uint64 {
	if len(r.Records) == 0 {
		return 0
	}
	return r.Records[len(r.Records)-1].Frame
}

// Play steps gl with the recorded input until the game ends or maxFrames
// frames have run. It returns the number of frames stepped.
func (r *Replay) Play(gl *core.GameLoop, maxFrames uint64) uint64 {
	start := gl.Frame()
	for gl.Frame()-start < maxFrames && gl.Step(r.InputAt(gl.Frame()+1)) {
	}
	return gl.Frame() - start
}
