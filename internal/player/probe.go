package player

import (
	"context"
	"log/slog"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/handiism/greetcard/internal/logging"
	"github.com/handiism/greetcard/internal/model"
)

// Metadata keys read from the MPRIS Metadata map.
const (
	KeyTitle  = "xesam:title"
	KeyAlbum  = "xesam:album"
	KeyArtURL = "mpris:artUrl"
	KeyURL    = "xesam:url"
)

// TrackSource reports the track of the active player, if any.
type TrackSource interface {
	CurrentTrack(ctx context.Context) (model.TrackMetadata, bool)
}

// Probe reads track metadata from the active MPRIS player.
type Probe struct {
	bus    Bus
	logger *slog.Logger
}

// NewProbe creates a Probe on top of bus.
func NewProbe(bus Bus, logger *slog.Logger) *Probe {
	return &Probe{bus: bus, logger: logging.OrNop(logger)}
}

// CurrentTrack returns the metadata of the active player's track.
// Every bus failure is reported as ok == false.
func (p *Probe) CurrentTrack(ctx context.Context) (model.TrackMetadata, bool) {
	name, md, err := p.findActive(ctx)
	if err != nil {
		p.logger.Debug("player probe unavailable", "error", err)
		return model.TrackMetadata{}, false
	}
	if name == "" {
		p.logger.Debug("player probe unavailable", "reason", "no player running")
		return model.TrackMetadata{}, false
	}

	if md == nil {
		md, err = p.bus.Metadata(ctx, name)
		if err != nil {
			p.logger.Debug("player probe unavailable", "player", name, "error", err)
			return model.TrackMetadata{}, false
		}
	}

	track := TrackFromMetadata(md)
	p.logger.Debug("player probe", "player", name, "title", track.Title, "album", track.Album)
	return track, true
}

// findActive returns the bus name of the active player, or "" when no
// player is running. It also hands back the metadata it fetched while
// deciding, so CurrentTrack does not ask the same player twice.
//
// A player whose status cannot be read fails the whole search.
func (p *Probe) findActive(ctx context.Context) (string, map[string]dbus.Variant, error) {
	players, err := p.bus.ListPlayers(ctx)
	if err != nil {
		return "", nil, err
	}
	if len(players) == 0 {
		return "", nil, nil
	}

	var paused, withMetadata string
	var withMetadataMD map[string]dbus.Variant
	for _, name := range players {
		status, err := p.bus.PlaybackStatus(ctx, name)
		if err != nil {
			return "", nil, err
		}
		switch status {
		case StatusPlaying:
			return name, nil, nil
		case StatusPaused:
			if paused == "" {
				paused = name
			}
		}

		if paused == "" && withMetadata == "" {
			md, err := p.bus.Metadata(ctx, name)
			if err == nil && len(md) > 0 {
				withMetadata, withMetadataMD = name, md
			}
		}
	}

	switch {
	case paused != "":
		return paused, nil, nil
	case withMetadata != "":
		return withMetadata, withMetadataMD, nil
	default:
		return players[0], nil, nil
	}
}

// TrackFromMetadata converts an MPRIS Metadata map. Values with an
// unexpected type are treated as absent.
func TrackFromMetadata(md map[string]dbus.Variant) model.TrackMetadata {
	var track model.TrackMetadata
	track.Title, track.HasTitle = stringValue(md, KeyTitle)
	track.Album, _ = stringValue(md, KeyAlbum)
	track.ArtURL, _ = stringValue(md, KeyArtURL)
	track.URL, _ = stringValue(md, KeyURL)
	return track
}

func stringValue(md map[string]dbus.Variant, key string) (string, bool) {
	v, ok := md[key]
	if !ok {
		return "", false
	}
	switch s := v.Value().(type) {
	case string:
		return s, true
	case dbus.ObjectPath:
		return string(s), true
	default:
		return "", false
	}
}

type memoized struct {
	source TrackSource

	once  sync.Once
	track model.TrackMetadata
	ok    bool
}

// Memoize wraps source so it is queried at most once; later calls
// return the first answer.
func Memoize(source TrackSource) TrackSource {
	return &memoized{source: source}
}

func (m *memoized) CurrentTrack(ctx context.Context) (model.TrackMetadata, bool) {
	m.once.Do(func() {
		m.track, m.ok = m.source.CurrentTrack(ctx)
	})
	return m.track, m.ok
}
