// Package greeter runs one greeting card: pick the image, render it,
// gather the info lines and print both side by side.
//
// # Usage
//
//	settings, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	g := greeter.New(settings, logger)
//	defer g.Close()
//	err = g.Run(ctx, os.Stdout)
//
// # Failure Handling
//
// Only the image renderer can fail a run. Art resolution falls back to
// the default image, and info sources that fail are left out.
package greeter
