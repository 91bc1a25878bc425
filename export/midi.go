package export

import (
	"fmt"
	"math"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/allostudio/studiodata"
)

const ticksPerBeat = 960

// frequencyParamNames and amplitudeParamNames are the parameter names, in
// preference order, that are interpreted as pitch and loudness when mapping
// a sequence to MIDI. The demo bundles use both spellings of frequency.
var (
	frequencyParamNames = []string{"frequency", "freq"}
	amplitudeParamNames = []string{"amplitude", "amp"}
)

func paramIndex(paramNames []string, candidates []string) int {
	for _, c := range candidates {
		for i, name := range paramNames {
			if name == c {
				return i
			}
		}
	}
	return -1
}

// frequencyToKey maps a frequency in Hz to the nearest MIDI key, clamped to
// the valid range.
func frequencyToKey(freq float64) uint8 {
	if freq <= 0 {
		return 0
	}
	key := int(math.Round(69 + 12*math.Log2(freq/440)))
	if key < 0 {
		key = 0
	}
	if key > 127 {
		key = 127
	}
	return uint8(key)
}

type timedMessage struct {
	tick uint32
	off  bool
	msg  midi.Message
}

// SequenceSMF converts a demo sequence to a single-track standard MIDI file
// at the given tempo. The pitch of each note is taken from the sequence's
// frequency parameter and rounded to the nearest key; the amplitude
// parameter, when present, sets the velocity. Notes are sorted by time for
// the delta encoding, the sequence itself keeps its declaration order.
func SequenceSMF(seq studiodata.SynthSequence, tempoBPM float64) (*smf.SMF, error) {
	if tempoBPM <= 0 {
		return nil, fmt.Errorf("tempo should be > 0, got %v", tempoBPM)
	}
	freqIndex := paramIndex(seq.ParamNames, frequencyParamNames)
	if freqIndex < 0 {
		return nil, fmt.Errorf(`sequence "%v" has no frequency parameter, cannot derive pitch`, seq.Name)
	}
	ampIndex := paramIndex(seq.ParamNames, amplitudeParamNames)
	secondsPerBeat := 60 / tempoBPM
	var events []timedMessage
	for _, note := range seq.Notes {
		if freqIndex >= len(note.Params) {
			return nil, fmt.Errorf(`note at %v in sequence "%v" has only %v params, frequency expected at index %v`, note.Time, seq.Name, len(note.Params), freqIndex)
		}
		key := frequencyToKey(note.Params[freqIndex])
		velocity := uint8(100)
		if ampIndex >= 0 && ampIndex < len(note.Params) {
			v := int(math.Round(note.Params[ampIndex] * 127))
			if v < 1 {
				v = 1
			}
			if v > 127 {
				v = 127
			}
			velocity = uint8(v)
		}
		onTick := uint32(note.Time / secondsPerBeat * ticksPerBeat)
		offTick := uint32(note.EndTime() / secondsPerBeat * ticksPerBeat)
		events = append(events, timedMessage{tick: onTick, msg: midi.NoteOn(0, key, velocity)})
		events = append(events, timedMessage{tick: offTick, off: true, msg: midi.NoteOff(0, key)})
	}
	// note offs sort before note ons on the same tick, so retriggering the
	// same key back to back stays well formed
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].off && !events[j].off
	})
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerBeat)
	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(seq.Name))
	track.Add(0, smf.MetaTempo(tempoBPM))
	var lastTick uint32
	for _, event := range events {
		track.Add(event.tick-lastTick, event.msg)
		lastTick = event.tick
	}
	track.Close(0)
	s.Add(track)
	return s, nil
}
