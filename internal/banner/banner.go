// Package banner renders the CLI startup banner.
package banner

import "fmt"

// Banner returns the startup banner for the given version.
func Banner(version string) string {
	return fmt.Sprintf(`     _                       v%s
 ___| |_ ___ ___ ___ ___ ___ _____
|  _|   | .'|  _| . |  _| .'|     |
|___|_|_|__,|_| |_  |_| |__,|_|_|_|
                |___|
character-level bigram language model

`, version)
}
