package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"git.lost.host/meutraa/notefall/internal/config"
	"git.lost.host/meutraa/notefall/internal/game"
	"github.com/google/uuid"
)

type DefaultParser struct{}

const fieldCount = 6

// Chart rows: userPlayed,instrumentName,velocity,pitch,start,end
// velocity is MIDI 0-127 and normalized to [0, 1] here.
func (p *DefaultParser) parseRow(record []string) (*game.Note, error) {
	if len(record) != fieldCount {
		return nil, fmt.Errorf("expected %d fields, got %d", fieldCount, len(record))
	}

	var userPlayed bool
	switch strings.ToLower(strings.TrimSpace(record[0])) {
	case "true":
		userPlayed = true
	case "false":
		userPlayed = false
	default:
		return nil, fmt.Errorf("userPlayed %q is not true/false", record[0])
	}

	velocity, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if nil != err {
		return nil, fmt.Errorf("velocity: %w", err)
	}
	if velocity < 0 || velocity > 127 {
		return nil, fmt.Errorf("velocity %v outside 0-127", velocity)
	}

	pitch, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if nil != err {
		return nil, fmt.Errorf("pitch: %w", err)
	}
	if pitch < 0 || pitch > 127 {
		return nil, fmt.Errorf("pitch %v outside 0-127", pitch)
	}

	start, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if nil != err {
		return nil, fmt.Errorf("start: %w", err)
	}

	end, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
	if nil != err {
		return nil, fmt.Errorf("end: %w", err)
	}
	if end < start {
		return nil, fmt.Errorf("end %v before start %v", end, start)
	}

	note := &game.Note{
		ID:         uuid.New(),
		UserPlayed: userPlayed,
		Instrument: strings.TrimSpace(record[1]),
		Velocity:   velocity / 127,
		Pitch:      pitch,
		Start:      start,
		End:        end,
		Column:     pitch % 4,
	}

	if sustain := (end - start) * 1000; sustain > config.TailMinDuration {
		note.TailMs = sustain
		note.HasTail = true
	}

	return note, nil
}

// ParseReader consumes the whole chart. Any malformed row fails the load,
// with every bad row reported; callers never see a partial note list.
func (p *DefaultParser) ParseReader(r io.Reader) (*game.Chart, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // report short rows ourselves, per row

	records, err := cr.ReadAll()
	if nil != err {
		return nil, fmt.Errorf("unable to read chart: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("chart has no header row")
	}

	chart := &game.Chart{}
	perr := &ParseError{}

	// Skip the header row
	for i, record := range records[1:] {
		note, err := p.parseRow(record)
		if nil != err {
			perr.Rows = append(perr.Rows, RowError{Row: i + 2, Err: err})
			continue
		}
		chart.Notes = append(chart.Notes, note)
		if note.UserPlayed {
			chart.UserCount++
		} else {
			chart.BackgroundCount++
		}
	}

	if len(perr.Rows) > 0 {
		return nil, perr
	}
	return chart, nil
}

func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, fmt.Errorf("unable to open chart: %w", err)
	}
	defer f.Close()
	return p.ParseReader(f)
}
