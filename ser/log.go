package ser

import (
	"github.com/iotaledger/dynserde/logger"
	"github.com/iotaledger/dynserde/serrors"
)

const loggerName = "dynserde.ser"

func violation(signal serrors.Signal, call string) error {
	logger.NewLogger(loggerName).Debugw("protocol violation", "call", call, "signal", signal.Error())

	return signal
}
