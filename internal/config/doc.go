// Package config provides configuration parsing for toaster hosts and the
// toaster CLI.
//
// The configuration is stored in toaster.json. Every key is optional; keys
// left out keep the library defaults.
//
// # Configuration File Structure
//
//	{
//	  "expiry": "2500ms",
//	  "exitDuration": "200ms",
//	  "position": "bottom-left",
//	  "level": "info",
//	  "progress": true,
//	  "dismissable": true,
//	  "mode": "stacked",
//	  "log": {
//	    "level": "info",
//	    "format": "text",
//	    "output": "stderr"
//	  }
//	}
//
// "expiry" accepts a Go duration string or "none" for toasts that never
// expire on their own.
//
// # Environment
//
// Environment variables override file values. A .env file in the working
// directory is loaded first when present:
//
//	TOASTER_EXPIRY, TOASTER_EXIT_DURATION, TOASTER_POSITION, TOASTER_LEVEL,
//	TOASTER_PROGRESS, TOASTER_DISMISSABLE, TOASTER_MODE,
//	TOASTER_LOG_LEVEL, TOASTER_LOG_FORMAT, TOASTER_LOG_OUTPUT
//
// # Usage
//
//	cfg, err := config.Resolve("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reg := toaster.New(cfg.ToasterOptions()...)
//	reg.Toast(cfg.Builder("Saved").WithLevel(toast.Success))
package config
