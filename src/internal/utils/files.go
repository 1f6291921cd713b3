package utils

import (
	"io"

	"github.com/marthasimmons/airports-endpoint/src/internal/log"
)

// CloseOrWarn closes c and logs, rather than returns, any failure.
func CloseOrWarn(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Warnf("Failed to close file: %v", err)
	}
}
