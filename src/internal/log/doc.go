// Package log provides leveled logging for the airport directory service.
//
// It exposes global printf-style functions (Debugf, Infof, Warnf, Errorf,
// Fatalf) on top of a shared logrus logger, plus Module and WithField for
// structured entries.
//
// # Example Usage
//
//	log.Infof("Loaded %d airports", n)
//
//	apiLog := log.Module("api")
//	apiLog.WithField("icao", code).Debug("airport deleted")
//
// Enabling verbose mode for debug output:
//
//	log.SetVerbose(true)
//
// Switching to JSON lines for log shippers:
//
//	log.SetFormat("json")
package log
