package prosecheck

import "github.com/sirupsen/logrus"

// logger is the package's boundary logger. Core lint and parse functions
// never log - they return errors and let the caller decide what's worth
// surfacing. Logging here is reserved for conditions a caller configuring
// the library from the outside would want to know about even without
// checking a return value: a malformed config file, an unrecognized rule
// name, a dictionary that failed to load.
var logger logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package's boundary logger, for a host that wants
// prosecheck's diagnostics folded into its own structured log output.
func SetLogger(l logrus.FieldLogger) {
	if l != nil {
		logger = l
	}
}

func logConfigParseFailure(err error) {
	logger.WithField("error", err).Warn("prosecheck: failed to parse lint group config")
}

func logUnknownRule(name string) {
	logger.WithField("rule", name).Warn("prosecheck: unknown rule name in config, rejecting config")
}

func logDictionaryLoadFailure(err error) {
	logger.WithField("error", err).Error("prosecheck: failed to load dictionary")
}

func logDictionaryOverlayConflict(word string) {
	logger.WithField("word", word).Warn("prosecheck: dictionary overlay contradicts base metadata")
}
