// Package actlog produces human-readable, greppable log lines that
// encode an event name, an optional duration, and an arbitrary set of
// key-value attributes, while delegating emission (level filtering,
// handlers, sinks) to a pluggable backend.
//
// # Design overview
//
//   - Formatter composes the key=value encoder, a fixed template family,
//     and the clock into final message strings and hands them to a
//     Backend at a configured severity. Formatters are immutable after
//     construction; At and With derive copies.
//   - Activities are timed through a start/end protocol: Start returns a
//     Timestamp handle the caller retains and passes back to End, which
//     computes the elapsed seconds to six fractional digits. The core
//     keeps no per-activity state, so nested or concurrent activities
//     under the same name never collide structurally.
//   - Timestamp mode is per-formatter configuration: the default
//     template family embeds an ISO-8601 local timestamp in every line,
//     and OmitTimestamp selects the family without one for backends that
//     already stamp their output.
//   - Backends adapt the formatted lines to real sinks: an io.Writer
//     with severity tags and terminal-aware colour, the standard library
//     log package, zerolog, and logrus.
//
// # Usage
//
//	f := actlog.New(actlog.NewWriterBackend(os.Stdout))
//	t0 := f.Start("ingest", actlog.String("file", path))
//	n, err := ingest(path)
//	f.End("ingest", t0, actlog.Int("records", n))
//
// A standalone event with no duration:
//
//	f.Event("configured", actlog.String("method", "yaml"))
//
// Function instrumentation through the activity wrapper:
//
//	err := f.Activity("rebuild", actlog.String("shard", shard)).Do(func() error {
//		return rebuild(shard)
//	})
//
// The wire format with default separators is
//
//	<name>.begin ; k1=v1,k2=v2
//	<name>.end (1.042007) ; k1=v1,k2=v2
//	<name> ; k1=v1,k2=v2
//
// prefixed with the timestamp unless the formatter omits it.
//
// # Configuration
//
// LoadConfig resolves a YAML file (mandatory for .yaml/.yml paths) or a
// flat key/section file into a Config; ConfigFromMap accepts an already
// deserialised settings object. Config.Formatter builds the described
// backend and formatter pair. Sink lifecycle stays with the caller.
package actlog
