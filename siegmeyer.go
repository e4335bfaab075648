// Package siegmeyer holds build metadata for the siegmeyer generator.
package siegmeyer

// Version is the current generator version.
const Version = "0.3.0"
