package de

import (
	"github.com/iotaledger/dynserde/logger"
	"github.com/iotaledger/dynserde/serrors"
)

const loggerName = "dynserde.de"

// violation logs a call made in the wrong adapter state and returns its signal.
func violation(signal serrors.Signal, call string) error {
	logger.NewLogger(loggerName).Debugw("protocol violation", "call", call, "signal", signal.Error())

	return signal
}
