// Package player finds the media player that is currently in use on the
// D-Bus session bus and reads the metadata of its track.
//
// Players are discovered through the MPRIS well-known name prefix
// org.mpris.MediaPlayer2. The active player is chosen the way most
// MPRIS clients do it: a Playing player wins, then a Paused one, then
// one that publishes metadata, then whichever was found first.
//
//	probe := player.NewProbe(player.NewSessionBus(), nil)
//	track, ok := probe.CurrentTrack(ctx)
package player
