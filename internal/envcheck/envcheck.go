package envcheck

import (
	"fmt"
	"os"
)

// DefaultVariable is the variable X11 clients use to find their display.
const DefaultVariable = "DISPLAY"

type LookupFunc func(key string) (string, bool)

// Describe reports the value of the environment variable name.
func Describe(name string) string {
	return DescribeWith(name, os.LookupEnv)
}

func DescribeWith(name string, lookup LookupFunc) string {
	value, ok := lookup(name)
	if !ok {
		return fmt.Sprintf("%s is not set", name)
	}

	return fmt.Sprintf("%s is set to: %q", name, value)
}
