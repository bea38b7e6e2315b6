// Package utils provides small helpers shared by the splitter packages.
//
// It contains:
//   - Great-circle distance between coordinates
//   - Output file name cleaning
//   - GPX timestamp conversion
package utils
