package player

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	// BusNamePrefix is the well-known name prefix every MPRIS player owns.
	BusNamePrefix = "org.mpris.MediaPlayer2."

	objectPath      = dbus.ObjectPath("/org/mpris/MediaPlayer2")
	playerInterface = "org.mpris.MediaPlayer2.Player"
)

// Playback statuses defined by MPRIS.
const (
	StatusPlaying = "Playing"
	StatusPaused  = "Paused"
)

// Bus is the subset of the session bus the probe needs.
type Bus interface {
	// ListPlayers returns the bus names of all MPRIS players, in bus order.
	ListPlayers(ctx context.Context) ([]string, error)

	// PlaybackStatus returns the PlaybackStatus property of a player.
	PlaybackStatus(ctx context.Context, name string) (string, error)

	// Metadata returns the Metadata property of a player.
	Metadata(ctx context.Context, name string) (map[string]dbus.Variant, error)
}

// SessionBus talks to the user's D-Bus session bus. The connection is
// opened on first use.
type SessionBus struct {
	once    sync.Once
	conn    *dbus.Conn
	connErr error
}

// NewSessionBus returns a SessionBus that has not connected yet.
func NewSessionBus() *SessionBus {
	return &SessionBus{}
}

func (b *SessionBus) connect() (*dbus.Conn, error) {
	b.once.Do(func() {
		b.conn, b.connErr = dbus.ConnectSessionBus()
		if b.connErr != nil {
			b.connErr = fmt.Errorf("connect session bus: %w", b.connErr)
		}
	})
	return b.conn, b.connErr
}

// ListPlayers implements Bus.
func (b *SessionBus) ListPlayers(ctx context.Context) ([]string, error) {
	conn, err := b.connect()
	if err != nil {
		return nil, err
	}

	var names []string
	call := conn.BusObject().CallWithContext(ctx, "org.freedesktop.DBus.ListNames", 0)
	if err := call.Store(&names); err != nil {
		return nil, fmt.Errorf("list bus names: %w", err)
	}
	return FilterPlayers(names), nil
}

// PlaybackStatus implements Bus.
func (b *SessionBus) PlaybackStatus(ctx context.Context, name string) (string, error) {
	v, err := b.property(ctx, name, "PlaybackStatus")
	if err != nil {
		return "", err
	}
	status, ok := v.Value().(string)
	if !ok {
		return "", fmt.Errorf("%s: PlaybackStatus has type %s", name, v.Signature())
	}
	return status, nil
}

// Metadata implements Bus.
func (b *SessionBus) Metadata(ctx context.Context, name string) (map[string]dbus.Variant, error) {
	v, err := b.property(ctx, name, "Metadata")
	if err != nil {
		return nil, err
	}
	md, ok := v.Value().(map[string]dbus.Variant)
	if !ok {
		return nil, fmt.Errorf("%s: Metadata has type %s", name, v.Signature())
	}
	return md, nil
}

func (b *SessionBus) property(ctx context.Context, name, prop string) (dbus.Variant, error) {
	conn, err := b.connect()
	if err != nil {
		return dbus.Variant{}, err
	}

	var v dbus.Variant
	call := conn.Object(name, objectPath).CallWithContext(ctx,
		"org.freedesktop.DBus.Properties.Get", 0, playerInterface, prop)
	if err := call.Store(&v); err != nil {
		return dbus.Variant{}, fmt.Errorf("%s: get %s: %w", name, prop, err)
	}
	return v, nil
}

// Close releases the bus connection, if one was opened.
func (b *SessionBus) Close() error {
	if b.conn == nil {
		return nil
	}
	return b.conn.Close()
}

// FilterPlayers keeps the MPRIS player names from a ListNames reply,
// preserving their order.
func FilterPlayers(names []string) []string {
	players := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, BusNamePrefix) {
			players = append(players, name)
		}
	}
	return players
}
