// Package utils provides small helpers shared across the airport directory.
//
//   - GetAbsolutePath resolves paths relative to the config file directory
//   - DataFormat picks the decoder for a seed file from its extension
//   - CloseOrWarn closes files whose close error is not actionable
package utils
